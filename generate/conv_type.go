package generate

import (
	"just/value"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

// convKind converts a value kind into its LLVM type.
func convKind(k value.Kind) types.Type {
	switch k.(type) {
	case value.Boolean:
		return types.I1
	case value.Int:
		return types.I64
	case value.Float:
		return types.Double
	default:
		return types.Void
	}
}

// kindOfType converts an LLVM type back into the value kind it represents.
func kindOfType(t types.Type) value.Kind {
	switch {
	case t.Equal(types.I1):
		return value.Boolean{}
	case t.Equal(types.I64):
		return value.Int{}
	case t.Equal(types.Double):
		return value.Float{}
	default:
		return value.Void{}
	}
}

// convLiteral converts a literal into an LLVM constant.
func convLiteral(lit value.Literal) constant.Constant {
	switch v := lit.(type) {
	case value.BoolLit:
		return constant.NewBool(bool(v))
	case value.IntLit:
		return constant.NewInt(types.I64, int64(v))
	case value.FloatLit:
		return constant.NewFloat(types.Double, float64(v))
	}

	return nil
}

// zeroValue returns the zero constant of a value kind.
func zeroValue(k value.Kind) constant.Constant {
	switch k.(type) {
	case value.Boolean:
		return constant.NewBool(false)
	case value.Int:
		return constant.NewInt(types.I64, 0)
	default:
		return constant.NewFloat(types.Double, 0)
	}
}

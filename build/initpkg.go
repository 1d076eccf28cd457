package build

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"just/common"
	"just/deps"
	"just/logging"
	"just/syntax"
	"just/walk"
)

// initPackage loads and parses the given files concurrently into a new
// package.  It returns the package along with a flag indicating success.
func (c *Compiler) initPackage(root string, paths []string) (*deps.JustPackage, bool) {
	newpkg := deps.NewPackage(root)

	if len(paths) == 0 {
		c.logger.LogConfigError("Package", "unable to load a package that contains no Just source files")
		return nil, false
	}

	c.logger.BeginPhase("Parsing")

	fchan := make(chan *deps.JustFile)
	for _, fpath := range paths {
		go c.initFile(fchan, fpath)
	}

	for range paths {
		newfile := <-fchan
		if newfile != nil {
			newpkg.AddFile(newfile)
		}
	}

	ok := c.logger.ShouldProceed()
	c.logger.EndPhase(ok)
	return newpkg, ok
}

// initFile attempts to load and parse a file concurrently.  It takes in a
// channel to write to if the file is initialized successfully as well as a path
// to the file.  Note that if the file fails to initialize, an appropriate error
// will be logged and `nil` will be written to the channel.
func (c *Compiler) initFile(fchan chan *deps.JustFile, fpath string) {
	fabspath, err := filepath.Abs(fpath)
	if err != nil {
		c.logger.LogConfigError("File", fmt.Sprintf("unable to resolve path %s: %s", fpath, err.Error()))
		fchan <- nil
		return
	}

	if finfo, err := os.Stat(fabspath); err != nil {
		c.logger.LogConfigError("File", fmt.Sprintf("unable to load file at %s: %s", fpath, err.Error()))
		fchan <- nil
		return
	} else if finfo.IsDir() {
		c.logger.LogConfigError("File", fmt.Sprintf("%s is a directory not a Just source file", fpath))
		fchan <- nil
		return
	}

	if filepath.Ext(fabspath) != common.SrcFileExtension {
		c.logger.LogBuildWarning("File", fmt.Sprintf("%s does not have the `%s` extension", fpath, common.SrcFileExtension))
	}

	buff, err := ioutil.ReadFile(fabspath)
	if err != nil {
		c.logger.LogConfigError("File", fmt.Sprintf("unable to read file at %s: %s", fpath, err.Error()))
		fchan <- nil
		return
	}

	newfile := deps.NewFile(fabspath, string(buff))

	ast, err := syntax.Parse(fabspath, newfile.Source())
	if err != nil {
		c.logSyntaxError(newfile, err)
		fchan <- nil
		return
	}

	newfile.AST = ast
	fchan <- newfile
}

// logSyntaxError logs an error produced by the parser
func (c *Compiler) logSyntaxError(file *deps.JustFile, err error) {
	var positioned interface {
		Position() *logging.TextPosition
	}

	if errors.As(err, &positioned) {
		c.logger.LogCompileError(file.LogContext, err.Error(), positioned.Position())
	} else {
		c.logger.LogStdError("Syntax", err)
	}
}

// resolvePackage resolves the names of every file of a package concurrently.
// Each file has its own walker and symbol table so only the logger is shared.
func (c *Compiler) resolvePackage(pkg *deps.JustPackage) {
	wg := &sync.WaitGroup{}

	for _, file := range pkg.Files {
		wg.Add(1)
		go func(file *deps.JustFile) {
			defer wg.Done()

			file.Diagnostics = walk.NewWalker(file.AST, file.Source(), c.logger).Walk()
		}(file)
	}

	wg.Wait()
}

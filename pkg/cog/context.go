package cog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"sync"
	"unicode/utf8"
)

// commentMarker anywhere in a line turns the whole line into a comment.
const commentMarker = "//"

// Engine is a single global context of Cog program execution.
//
// A single thread of execution may run within an Engine at any given moment,
// and this is ensured by an internal execution lock. An execution's Engine
// also holds the debugging flags.
type Engine struct {
	Debug DebugConfig

	// Stdout is where print() and comment notices are written.
	// Contexts created after it is set inherit it; nil means os.Stdout.
	Stdout io.Writer

	// Only a single Context may evaluate at any moment.
	evalLock sync.Mutex
}

// DebugConfig defines any debugging flags referenced at runtime
type DebugConfig struct {
	Lex   bool `yaml:"lex"`
	Parse bool `yaml:"parse"`
	Dump  bool `yaml:"dump"`
}

// CreateContext creates and initializes a new Context tied to a given Engine.
func (eng *Engine) CreateContext() *Context {
	ctx := &Context{
		Engine: eng,
		Env:    NewEnvironment(),
		Stdout: eng.Stdout,
	}

	ctx.resetWd()
	ctx.LoadEnvironment()

	return ctx
}

// Context represents a single, isolated execution context with its own
// environment, output sink and cwd (working directory).
type Context struct {
	// Cwd is an always-absolute path to current working dir
	Cwd string
	// currently executing file's path, if any
	File string
	// line number of the statement being executed, 1-based
	Line   int
	Engine *Engine
	// Env represents the Context's global heap
	Env    *Environment
	Stdout io.Writer
}

func (ctx *Context) stdout() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

// location describes where the current statement came from, for errors.
func (ctx *Context) location() string {
	if ctx.File == "" {
		return ""
	}
	return fmt.Sprintf(" in %s:%d", ctx.File, ctx.Line)
}

// LogErr reports an Err (interpreter error) without halting. Callers get
// the same error back and decide how to exit.
func (ctx *Context) LogErr(e Err) {
	LogSafeErr(e.reason, e.message)
}

// Dump prints the current state of the Context's environment
func (ctx *Context) Dump() {
	LogDebug("environment dump", ctx.Env.String())
}

func (ctx *Context) resetWd() {
	var err error
	ctx.Cwd, err = os.Getwd()
	if err != nil {
		LogErrf(
			ErrSystem,
			"could not identify current working directory\n\t-> %s", err,
		)
	}
}

// IsComment reports whether a line is a comment statement. Containment is
// enough: the marker need not start the line.
func IsComment(line string) bool {
	return strings.Contains(line, commentMarker)
}

// EvalExpression lexes, parses and evaluates one expression against the
// Context's environment.
func (ctx *Context) EvalExpression(text string) (Value, error) {
	debug := ctx.Engine.Debug

	// outside Exec there is no current line
	lineNo := ctx.Line
	if lineNo == 0 {
		lineNo = 1
	}

	tokens, err := Tokenize(text, lineNo, debug.Lex)
	if err != nil {
		return nil, parseFailure(text, err)
	}

	node, err := Parse(tokens, debug.Parse)
	if err != nil {
		return nil, parseFailure(text, err)
	}

	return node.Eval(ctx.Env)
}

func parseFailure(text string, err error) error {
	if e, isErr := err.(Err); isErr && e.reason == ErrSyntax {
		e.message = fmt.Sprintf("cannot parse expression '%s': %s", text, e.message)
		return e
	}
	return err
}

// ExecLine executes a single statement: a comment notice is written for
// comment lines, anything else is evaluated as an expression.
func (ctx *Context) ExecLine(line string) (Value, error) {
	if IsComment(line) {
		_, err := fmt.Fprintln(ctx.stdout(), "Comment: "+line)
		if err != nil {
			return nil, Err{
				ErrSystem,
				fmt.Sprintf("could not write output:\n\t-> %s", err),
			}
		}
		return NoneValue{}, nil
	}

	return ctx.EvalExpression(line)
}

// Exec runs a Cog program defined by an io.Reader, one line per statement.
// This is the main way to invoke Cog programs from Go.
// Exec returns the value of the last statement, or stops at the first
// error and returns it.
func (ctx *Context) Exec(input io.Reader) (val Value, err error) {
	ctx.Engine.evalLock.Lock()
	defer ctx.Engine.evalLock.Unlock()

	val = NoneValue{}
	reader := bufio.NewReader(input)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			err = Err{
				ErrSystem,
				fmt.Sprintf("could not read input%s:\n\t-> %s", ctx.location(), readErr),
			}
			ctx.LogErr(err.(Err))
			return nil, err
		}
		// input ending in a newline has nothing left at EOF
		if readErr == io.EOF && line == "" {
			break
		}

		ctx.Line++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if !utf8.ValidString(line) {
			if ctx.Engine.Debug.Lex {
				LogDebugf("skipping unreadable line %d%s", ctx.Line, ctx.location())
			}
		} else {
			val, err = ctx.ExecLine(line)
			if err != nil {
				if e, isErr := err.(Err); isErr {
					e.message += ctx.location()
					err = e
					ctx.LogErr(e)
				}
				return nil, err
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	if ctx.Engine.Debug.Dump {
		ctx.Dump()
	}

	return val, nil
}

// ExecPath is a convenience function to Exec() a program file in a given Context.
func (ctx *Context) ExecPath(filePath string) error {
	if !path.IsAbs(filePath) {
		filePath = path.Join(ctx.Cwd, filePath)
	}

	ctx.Cwd = path.Dir(filePath)
	ctx.File = filePath
	ctx.Line = 0

	file, err := os.Open(filePath)
	if err != nil {
		e := Err{
			ErrSystem,
			fmt.Sprintf("could not open %s for execution:\n\t-> %s", filePath, err),
		}
		ctx.LogErr(e)
		return e
	}
	defer file.Close()

	_, err = ctx.Exec(file)
	return err
}

package cog

import (
	"fmt"
	"math/big"
)

// NativeFunctionValue represents a function whose implementation is written
// in Go and built-into the runtime. Every Cog function takes exactly one
// argument.
type NativeFunctionValue struct {
	name string
	exec func(*Context, Value) (Value, error)
	ctx  *Context // runtime context for output and dumps
}

func (v NativeFunctionValue) String() string {
	return "Function"
}

func (v NativeFunctionValue) Integer() *big.Int {
	return new(big.Int)
}

func (v NativeFunctionValue) Call(arg Value) (Value, error) {
	if v.exec == nil {
		return nil, Err{
			ErrAssert,
			fmt.Sprintf("native function %s has no implementation", v.name),
		}
	}
	return v.exec(v.ctx, arg)
}

// Clone returns the same function; native functions hold no mutable state.
func (v NativeFunctionValue) Clone() Value {
	return v
}

func (v NativeFunctionValue) Add(other Value) (Value, error) {
	return addUnsupported(v, other)
}

func (v NativeFunctionValue) Type() string {
	return FunctionType
}

func (v NativeFunctionValue) Equals(other Value) bool {
	ov, ok := other.(NativeFunctionValue)
	return ok && v.name == ov.name
}

// Name is the name the function was loaded under.
func (v NativeFunctionValue) Name() string {
	return v.name
}

// LoadEnvironment loads all builtins to a given Context.
func (ctx *Context) LoadEnvironment() {
	ctx.LoadFunc("print", cogPrint)
}

// LoadFunc loads a single Go-implemented function into a Context.
func (ctx *Context) LoadFunc(
	name string,
	exec func(*Context, Value) (Value, error),
) {
	ctx.Env.Set(name, NativeFunctionValue{
		name,
		exec,
		ctx,
	})
}

func cogPrint(ctx *Context, in Value) (Value, error) {
	_, err := fmt.Fprintln(ctx.stdout(), in.String())
	if err != nil {
		return nil, Err{
			ErrSystem,
			fmt.Sprintf("could not write output:\n\t-> %s", err),
		}
	}
	return NoneValue{}, nil
}

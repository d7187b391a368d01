package cog

import (
	"fmt"
	"math/big"
)

// Type tags reported by Value.Type.
const (
	StringType   = "string"
	NoneType     = "none"
	IntegerType  = "int"
	FunctionType = "function"
)

// Value represents any value in the Cog programming language.
// Each value corresponds to some primitive or function value created
// during the execution of a Cog program.
type Value interface {
	String() string
	// Integer coerces the value to an integer. Only IntegerValue has a
	// natural reading; every other variant yields 0 rather than an error.
	Integer() *big.Int
	// Call invokes the value with a single argument.
	Call(arg Value) (Value, error)
	// Clone returns an independent copy suitable for storing in an
	// Environment without aliasing the original.
	Clone() Value
	Add(other Value) (Value, error)
	Type() string
	// Equals reports whether the given value holds the same content as
	// the receiving value. It does not compare references.
	Equals(Value) bool
}

func notCallable(v Value) error {
	return Err{
		ErrNotCallable,
		fmt.Sprintf("attempted to call a non-function value %s (%s)", v, v.Type()),
	}
}

// addUnsupported is the shared failure path of Add for every variant that
// has no addition of its own.
func addUnsupported(v, other Value) (Value, error) {
	if v.Type() != other.Type() {
		return nil, Err{
			ErrTypeMismatch,
			fmt.Sprintf("cannot add %s value %s and %s value %s",
				v.Type(), v, other.Type(), other),
		}
	}
	return nil, Err{
		ErrNotSummable,
		fmt.Sprintf("values of type %s do not support addition", v.Type()),
	}
}

// StringValue represents all text in Cog.
type StringValue string

func (v StringValue) String() string {
	return string(v)
}

func (v StringValue) Integer() *big.Int {
	return new(big.Int)
}

func (v StringValue) Call(arg Value) (Value, error) {
	return nil, notCallable(v)
}

func (v StringValue) Clone() Value {
	return v
}

func (v StringValue) Add(other Value) (Value, error) {
	return addUnsupported(v, other)
}

func (v StringValue) Type() string {
	return StringType
}

func (v StringValue) Equals(other Value) bool {
	ov, ok := other.(StringValue)
	return ok && v == ov
}

// NoneValue is the result of empty expressions and of functions
// that return nothing.
type NoneValue struct{}

func (v NoneValue) String() string {
	return "None"
}

func (v NoneValue) Integer() *big.Int {
	return new(big.Int)
}

func (v NoneValue) Call(arg Value) (Value, error) {
	return nil, notCallable(v)
}

func (v NoneValue) Clone() Value {
	return NoneValue{}
}

func (v NoneValue) Add(other Value) (Value, error) {
	return addUnsupported(v, other)
}

func (v NoneValue) Type() string {
	return NoneType
}

func (v NoneValue) Equals(other Value) bool {
	_, ok := other.(NoneValue)
	return ok
}

// IntegerValue is an arbitrary-precision signed integer.
type IntegerValue struct {
	val *big.Int
}

// NewInteger wraps a copy of n.
func NewInteger(n *big.Int) IntegerValue {
	return IntegerValue{new(big.Int).Set(n)}
}

// Int64 is a convenience constructor for small integers.
func Int64(n int64) IntegerValue {
	return IntegerValue{big.NewInt(n)}
}

func (v IntegerValue) String() string {
	if v.val == nil {
		return "0"
	}
	return v.val.String()
}

func (v IntegerValue) Integer() *big.Int {
	if v.val == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.val)
}

func (v IntegerValue) Call(arg Value) (Value, error) {
	return nil, notCallable(v)
}

func (v IntegerValue) Clone() Value {
	return IntegerValue{v.Integer()}
}

func (v IntegerValue) Add(other Value) (Value, error) {
	if _, ok := other.(IntegerValue); !ok {
		return addUnsupported(v, other)
	}
	return IntegerValue{new(big.Int).Add(v.Integer(), other.Integer())}, nil
}

func (v IntegerValue) Type() string {
	return IntegerType
}

func (v IntegerValue) Equals(other Value) bool {
	ov, ok := other.(IntegerValue)
	return ok && v.Integer().Cmp(ov.Integer()) == 0
}

package cog

import (
	"errors"
	"math/big"
	"testing"
)

func TestValueString(t *testing.T) {
	huge, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)

	tests := []struct {
		name string
		val  Value
		want string
	}{
		{"string", StringValue("hello"), "hello"},
		{"empty string", StringValue(""), ""},
		{"none", NoneValue{}, "None"},
		{"integer", Int64(42), "42"},
		{"negative integer", Int64(-42), "-42"},
		{"zero value integer", IntegerValue{}, "0"},
		{"128-bit integer", NewInteger(huge), "170141183460469231731687303715884105727"},
		{"function", NativeFunctionValue{name: "print", exec: cogPrint}, "Function"},
	}

	for _, tt := range tests {
		if got := tt.val.String(); got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestValueType(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{StringValue("a"), "string"},
		{NoneValue{}, "none"},
		{Int64(1), "int"},
		{NativeFunctionValue{name: "f"}, "function"},
	}

	for _, tt := range tests {
		if got := tt.val.Type(); got != tt.want {
			t.Errorf("Type() of %s = %q, want %q", tt.val, got, tt.want)
		}
	}
}

func TestIntegerCoercionDefaultsToZero(t *testing.T) {
	for _, v := range []Value{StringValue("12"), NoneValue{}, NativeFunctionValue{name: "f"}} {
		if got := v.Integer(); got.Sign() != 0 {
			t.Errorf("Integer() of %s value = %s, want 0", v.Type(), got)
		}
	}

	if got := Int64(-7).Integer(); got.Cmp(big.NewInt(-7)) != 0 {
		t.Errorf("Integer() of -7 = %s, want -7", got)
	}
}

func TestOnlyFunctionsAreCallable(t *testing.T) {
	for _, v := range []Value{StringValue("s"), NoneValue{}, Int64(3)} {
		_, err := v.Call(NoneValue{})
		if !errors.Is(err, ErrKindNotCallable) {
			t.Errorf("Call on %s value: err = %v, want not callable", v.Type(), err)
		}
	}

	double := NativeFunctionValue{
		name: "double",
		exec: func(_ *Context, in Value) (Value, error) {
			return in.Add(in)
		},
	}
	got, err := double.Call(Int64(21))
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if got.String() != "42" {
		t.Fatalf("double(21) = %s, want 42", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Int64(10)
	clone := orig.Clone().(IntegerValue)
	if !clone.Equals(orig) {
		t.Fatalf("clone %s does not equal original %s", clone, orig)
	}

	// mutating the clone's payload must not leak into the original
	clone.val.SetInt64(99)
	if orig.String() != "10" {
		t.Fatalf("original changed to %s after mutating clone", orig)
	}

	for _, v := range []Value{StringValue("x"), NoneValue{}, NativeFunctionValue{name: "f"}} {
		if !v.Clone().Equals(v) {
			t.Errorf("Clone of %s value is not equal to original", v.Type())
		}
	}
}

func TestAdd(t *testing.T) {
	sum, err := Int64(1).Add(Int64(2))
	if err != nil {
		t.Fatalf("1 + 2 returned error: %v", err)
	}
	if sum.String() != "3" {
		t.Fatalf("1 + 2 = %s, want 3", sum)
	}

	max64 := Int64(9223372036854775807)
	sum, err = max64.Add(Int64(1))
	if err != nil {
		t.Fatalf("overflowing add returned error: %v", err)
	}
	if sum.String() != "9223372036854775808" {
		t.Fatalf("max int64 + 1 = %s, want 9223372036854775808", sum)
	}

	tests := []struct {
		name        string
		left, right Value
		want        error
	}{
		{"strings", StringValue("a"), StringValue("b"), ErrKindNotSummable},
		{"nones", NoneValue{}, NoneValue{}, ErrKindNotSummable},
		{"functions", NativeFunctionValue{name: "f"}, NativeFunctionValue{name: "g"}, ErrKindNotSummable},
		{"int and string", Int64(1), StringValue("1"), ErrKindTypeMismatch},
		{"string and int", StringValue("1"), Int64(1), ErrKindTypeMismatch},
		{"none and int", NoneValue{}, Int64(1), ErrKindTypeMismatch},
	}
	for _, tt := range tests {
		_, err := tt.left.Add(tt.right)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want reason %d", tt.name, err, tt.want.(Err).Reason())
		}
	}
}

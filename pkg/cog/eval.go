package cog

import (
	"fmt"
)

func (n AssignmentNode) Eval(env *Environment) (Value, error) {
	val, err := n.value.Eval(env)
	if err != nil {
		return nil, err
	}

	env.Set(n.name, val)
	return val, nil
}

func (n BinaryExprNode) Eval(env *Environment) (Value, error) {
	leftValue, err := n.leftOperand.Eval(env)
	if err != nil {
		return nil, err
	}
	rightValue, err := n.rightOperand.Eval(env)
	if err != nil {
		return nil, err
	}

	switch n.operator {
	case AddOp:
		sum, err := leftValue.Add(rightValue)
		if err != nil {
			if e, isErr := err.(Err); isErr {
				e.message = fmt.Sprintf("%s [%s]", e.message, poss(n))
				return nil, e
			}
			return nil, err
		}
		return sum, nil
	}

	return nil, Err{
		ErrAssert,
		fmt.Sprintf("unknown binary operator %s", n.String()),
	}
}

func (n FunctionCallNode) Eval(env *Environment) (Value, error) {
	// arguments are evaluated before the callee is resolved
	arg, err := n.argument.Eval(env)
	if err != nil {
		return nil, err
	}

	fn, prs := env.Get(n.function)
	if !prs {
		return nil, Err{
			ErrUndefined,
			fmt.Sprintf("%s is not defined [%s]", n.function, poss(n)),
		}
	}

	result, err := fn.Call(arg)
	if err != nil {
		if e, isErr := err.(Err); isErr && e.reason == ErrNotCallable {
			e.message = fmt.Sprintf("%s: %s [%s]", n.function, e.message, poss(n))
			return nil, e
		}
		return nil, err
	}
	return result, nil
}

func (n IdentifierNode) Eval(env *Environment) (Value, error) {
	val, prs := env.Get(n.val)
	if !prs {
		return nil, Err{
			ErrUndefined,
			fmt.Sprintf("%s is not defined [%s]", n.val, poss(n)),
		}
	}
	return val, nil
}

func (n IntegerLiteralNode) Eval(env *Environment) (Value, error) {
	return n.val.Clone(), nil
}

func (n StringLiteralNode) Eval(env *Environment) (Value, error) {
	return StringValue(n.val), nil
}

func (n EmptyExpressionNode) Eval(env *Environment) (Value, error) {
	return NoneValue{}, nil
}

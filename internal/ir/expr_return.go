package ir

// Return transfers control out of the enclosing function, with an
// optional value expression.
//
//	(return (i32.const 7)) // Value: ConstI32(7)
//	(return)               // Value: nil
type Return struct {
	Value Expression
}

func (*Return) isExpression() {}

package ir

// Call represents a direct call to a function of the module, imported
// or defined, by its name.
type Call struct {
	Target   string
	Operands []Expression
}

func (*Call) isExpression() {}

package ir

// Nop does nothing and produces nothing.
type Nop struct{}

// Opaque stands in for every construct this package does not model
// structurally. Transforms carry it through unmodified and never look
// inside; Text is whatever the module file put there.
type Opaque struct {
	Text string
}

func (*Nop) isExpression()    {}
func (*Opaque) isExpression() {}

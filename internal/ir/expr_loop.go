package ir

// Loop represents a loop construct owning a single body expression.
// The body is re-executed on each iteration, so the loop header is the
// spot a transform targets to observe every re-entry.
type Loop struct {
	Body Expression
}

func (*Loop) isExpression() {}

package ir

// ConstI32 is a 32-bit integer constant.
type ConstI32 struct {
	Value int32
}

func (*ConstI32) isExpression() {}

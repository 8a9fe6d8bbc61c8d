package ir

// Construction helpers for the node shapes transforms emit.

// MakeSequence builds a two-step block: evaluate first for its effect,
// then second, whose result becomes the block's result.
func MakeSequence(first, second Expression) *Block {
	return &Block{List: []Expression{first, second}}
}

// MakeCall builds a direct call to target.
func MakeCall(target string, operands ...Expression) *Call {
	return &Call{Target: target, Operands: operands}
}

// MakeConstI32 builds a 32-bit constant.
func MakeConstI32(v int32) *ConstI32 {
	return &ConstI32{Value: v}
}

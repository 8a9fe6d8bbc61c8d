package ir

// Block represents an ordered, possibly empty sequence of child
// expressions executed in order. The last child, if present, determines
// the block's own fall-through result.
//
//	(block (call $f) (i32.const 1)) // List: [Call, ConstI32], result 1
type Block struct {
	List []Expression
}

func (*Block) isExpression() {}

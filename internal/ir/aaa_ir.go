package ir

// Expression is the base interface implemented by all IR expression kinds.
// Each kind denotes a single structural construct of a function body
// (e.g., block, loop, return, call).
type Expression interface {
	isExpression()
}

// ValueType names a wasm value type carried by function signatures.
type ValueType string

// Value types used by this package. Only I32 is constructed here, the
// rest exist so signatures read from module files survive a round trip.
const (
	I32 ValueType = "i32"
	I64 ValueType = "i64"
	F32 ValueType = "f32"
	F64 ValueType = "f64"
)

package logexec

import "fmt"

// Kind tags the origin of a trace event.
type Kind uint32

const (
	KindFunctionEntry Kind = iota
	KindReturn
	KindLoopHeader
	// The fourth tag value fits in the kind field but is reserved.
	// Adding more kinds means widening the field, not reusing it.
)

const (
	seqBits  = 30
	kindBits = 2

	// MaxSequence is the number of distinct sequence numbers a single
	// run may allocate. A run that needs more has to abort: wrapping
	// the counter would break identifier uniqueness.
	MaxSequence = 1 << seqBits

	seqMask = MaxSequence - 1
)

// The kind and sequence fields must fill the 32-bit identifier exactly.
var _ [32]struct{} = [seqBits + kindBits]struct{}{}

// Encode packs a sequence number and an event kind into one 32-bit
// word, sequence in the low bits, kind on top. A sequence at or past
// [MaxSequence] or a kind outside its two bits is a precondition
// violation and panics: masking it away would silently alias another
// site's identifier. The walker checks the counter before allocating,
// so a well-behaved run never gets here with a bad value.
func Encode(seq uint32, kind Kind) uint32 {
	if seq >= MaxSequence {
		panic(fmt.Sprintf("sequence number %d does not fit in %d bits", seq, seqBits))
	}
	if kind >= 1<<kindBits {
		panic(fmt.Sprintf("kind %d does not fit in %d bits", kind, kindBits))
	}

	return seq | uint32(kind)<<seqBits
}

// Decode is the exact inverse of [Encode].
func Decode(word uint32) (seq uint32, kind Kind) {
	return word & seqMask, Kind(word >> seqBits)
}

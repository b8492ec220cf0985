package typename

import (
	"strconv"
	"strings"
)

// anchorLiteral is the rendering of the anchor type. Every Go toolchain
// renders the empty struct as exactly this literal.
const anchorLiteral = "struct {}"

// offsets holds the framing lengths shared by every signature within one
// toolchain: the fixed prefix before the type name and the fixed suffix
// after it.
type offsets struct {
	prefix int
	suffix int
}

// calibration is computed exactly once, at package init, from the anchor
// type's signature and reused for every extraction. Initialization panics
// if the anchor literal cannot be located, so a signature grammar this
// package does not understand fails at program start instead of feeding a
// bad offset into later length arithmetic.
var calibration = computeOffsets(signatureOf[struct{}]())

func computeOffsets(sig string) offsets {
	start := strings.Index(sig, anchorLiteral)
	if start < 0 {
		panic("typename: calibration failed: anchor literal " +
			strconv.Quote(anchorLiteral) + " not found in signature " +
			strconv.Quote(sig))
	}
	return offsets{
		prefix: start,
		suffix: len(sig) - start - len(anchorLiteral),
	}
}

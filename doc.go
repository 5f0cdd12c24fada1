// Package humancode implements libhumancode: a short, human-transcribable
// binary-to-text codec.
//
// It encodes up to 150 bits of opaque binary data into a compact alphabetic
// string (at most 31 payload characters, with optional dash-grouping for
// readability), and decodes such strings back. A configurable number of
// Reed-Solomon error-correcting symbols over GF(2⁵) ride along with the
// payload so that transcription mistakes - substitutions and invalid
// characters, the latter treated as erasures - can be detected and, within
// the code's correction capacity, repaired.
//
// # Encoding
//
// Data is packed into 5-bit quintets and rendered using the z-base-32
// alphabet, a human-oriented variant of base-32 chosen to avoid visually
// or phonetically confusable characters. Unlike regular base-32, there is
// no padding: every bit count in [1,150] produces an unambiguous, minimal
// number of symbols.
//
// # Error correction
//
// Each call to EncodeChunk appends ecc Reed-Solomon parity quintets to the
// data quintets. For every two parity symbols, the decoder can correct one
// substitution error; for every one parity symbol, it can detect (and, as
// an erasure, correct) one character that isn't in the alphabet at all.
// These budgets combine: erasures and unknown errors draw from the same
// ecc pool, and mixing them is the common case, since transcription
// mistakes are often a single mistyped or illegible character.
//
// # No heap, no panics
//
// The hot path - EncodeChunk and DecodeChunk - works entirely in
// fixed-capacity, stack-resident buffers (see QuintetBuf, OctetBuf, and
// friends) and never panics on malformed input. Every failure mode is one
// of the two error families in this package: a UsageError (the caller
// violated a documented precondition) or a DecodeError of kind
// TooManyErrors (the transcribed text, even after correction, isn't a
// valid code). Internal invariants that "cannot fail" given already
// validated input are enforced with plain assertions, not error returns -
// their failure would be a bug in this package.
//
// # Parameters are an out-of-band contract
//
// (bits, ecc) must match between EncodeChunk and DecodeChunk; the codec
// has no in-band way to recover them, and decoding with the wrong values
// has undefined semantic meaning (it will either fail validation or
// silently produce different bytes than were encoded).
package humancode

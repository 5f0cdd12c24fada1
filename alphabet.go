package humancode

// zbase32Alphabet maps a quintet value (its index) to the z-base-32
// character used to transcribe it. z-base-32 (as opposed to Crockford's or
// the stdlib's base-32) orders its alphabet to put the most common/clearest
// characters first and to avoid symbols that are easily confused when
// spoken or handwritten.
const zbase32Alphabet = "ybndrfg8ejkmcpqxot1uwisza345h769"

// zbase32Decode is a 256-entry lookup table from input byte to quintet
// value, built once at init from zbase32Alphabet. Entries for bytes that
// aren't alphabet characters hold invalidQuintet.
var zbase32Decode [256]byte

const invalidQuintet = 0xff

func init() {
	for i := range zbase32Decode {
		zbase32Decode[i] = invalidQuintet
	}
	for i := 0; i < len(zbase32Alphabet); i++ {
		zbase32Decode[zbase32Alphabet[i]] = byte(i)
	}
}

// quintetToChar renders a quintet value as its z-base-32 character. The
// caller must guarantee q < 32; this package only ever calls it with
// values it has itself produced (bit-packed data or RS parity), so an
// out-of-range value indicates a bug in this package, not bad input.
func quintetToChar(q byte) byte {
	if q >= 32 {
		panic("humancode: quintetToChar called with out-of-range quintet")
	}
	return zbase32Alphabet[q]
}

// charKind classifies a single input byte during decoding.
type charKind int

const (
	// charValue means the byte is a valid alphabet character; the
	// decoded quintet value is returned alongside.
	charValue charKind = iota
	// charSeparator means the byte is the '-' grouping character and
	// should be dropped without affecting quintet position.
	charSeparator
	// charInvalid means the byte is neither an alphabet character nor
	// '-'; callers treat this as an erasure.
	charInvalid
)

// classifyChar classifies b per the z-base-32 alphabet. Mapping is
// case-sensitive to the lowercase table above; a wrapper wanting
// case-insensitive input must fold case before calling decode functions.
func classifyChar(b byte) (kind charKind, q byte) {
	if b == '-' {
		return charSeparator, 0
	}
	v := zbase32Decode[b]
	if v == invalidQuintet {
		return charInvalid, 0
	}
	return charValue, v
}

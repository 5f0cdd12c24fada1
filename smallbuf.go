package humancode

// This file adapts the smallbytebuf.rs SmallByteBuf<const N: usize> pattern
// from the original source: a fixed-capacity, length-tagged byte buffer,
// inline-stored, with no heap allocation. Go has no const generics over
// array length, so each capacity used by this package gets its own
// concrete type instead of one generic type monomorphized per N.

// QuintetBuf holds up to 31 quintets (values in [0,31]), the maximum total
// length of a Reed-Solomon codeword over GF(2⁵).
type QuintetBuf struct {
	data [31]byte
	n    uint8
}

// Len returns the number of valid quintets in the buffer.
func (b *QuintetBuf) Len() int { return int(b.n) }

// Bytes returns an immutable view of the valid portion of the buffer.
func (b *QuintetBuf) Bytes() []byte { return b.data[:b.n] }

// Slice returns a mutable view of the valid portion of the buffer,
// restricted to [0, Len()).
func (b *QuintetBuf) Slice() []byte { return b.data[:b.n] }

// setLen resizes the valid region; it never grows past the backing array
// capacity. Callers within this package are expected to only ever grow
// monotonically while filling the buffer from zero.
func (b *QuintetBuf) setLen(n int) {
	if n < 0 || n > len(b.data) {
		panic("humancode: QuintetBuf length out of range")
	}
	b.n = uint8(n)
}

// append adds a single quintet, growing the buffer by one. It panics if
// the buffer is already at capacity - every caller in this package bounds
// the length first (decoding checks DecodeBufferTooBig, encoding checks
// TotalEncodeLenTooLong before parity is appended), so this is an
// invariant check, not a user-facing error path.
func (b *QuintetBuf) append(q byte) {
	if int(b.n) >= len(b.data) {
		panic("humancode: QuintetBuf append beyond capacity")
	}
	b.data[b.n] = q
	b.n++
}

// OctetBuf holds up to 20 octets, the encoder's input size bound; the
// largest payload this codec accepts, ⌈150/8⌉ = 19 octets, fits within it.
type OctetBuf struct {
	data [20]byte
	n    uint8
}

// Len returns the number of valid octets in the buffer.
func (b *OctetBuf) Len() int { return int(b.n) }

// Bytes returns an immutable view of the valid portion of the buffer.
func (b *OctetBuf) Bytes() []byte { return b.data[:b.n] }

func (b *OctetBuf) setLen(n int) {
	if n < 0 || n > len(b.data) {
		panic("humancode: OctetBuf length out of range")
	}
	b.n = uint8(n)
}

// ErasureBuf holds the set of quintet positions that decoding has flagged
// as known-unreliable, in the order they were observed.
type ErasureBuf struct {
	pos [31]byte
	n   uint8
}

// Len returns the number of recorded erasure positions.
func (b *ErasureBuf) Len() int { return int(b.n) }

// Positions returns an immutable view of the recorded positions.
func (b *ErasureBuf) Positions() []byte { return b.pos[:b.n] }

// add records a single erasure position. It panics if the buffer is
// already at capacity; a well-formed decode never records more than 31
// erasures, since a QuintetBuf itself holds at most 31 quintets.
func (b *ErasureBuf) add(position byte) {
	if int(b.n) >= len(b.pos) {
		panic("humancode: ErasureBuf append beyond capacity")
	}
	b.pos[b.n] = position
	b.n++
}

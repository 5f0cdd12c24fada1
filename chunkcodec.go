package humancode

// ChunkCodec is the public façade: EncodeChunk and DecodeChunk combine
// BitPacker, ReedSolomonGF32, and Alphabet under the precondition and
// re-validation rules that make up this package's whole contract.

// EncodedChunk is a successfully encoded (or corrected) codeword: its
// quintets, renderable as text in either form.
type EncodedChunk struct {
	quintets QuintetBuf
}

// Raw renders the codeword with no separators.
func (c EncodedChunk) Raw() string { return renderRaw(c.quintets.Bytes()) }

// Pretty renders the codeword with a '-' between each group of 4
// characters; there is never a trailing '-'.
func (c EncodedChunk) Pretty() string { return renderPretty(c.quintets.Bytes()) }

// DecodeOutput is the result of a successful DecodeChunk call.
type DecodeOutput struct {
	octets    OctetBuf
	corrected EncodedChunk
	hadErrors bool
}

// Data returns the decoded payload bytes.
func (o DecodeOutput) Data() []byte { return o.octets.Bytes() }

// HadErrors reports whether decoding found and corrected any substitution
// or erasure. When true, callers are expected to show CorrectedChunk to
// the human who's transcribing and have them confirm it's what they
// meant to enter - correction near the code's capacity can mis-correct.
func (o DecodeOutput) HadErrors() bool { return o.hadErrors }

// CorrectedChunk returns the codeword that was actually decoded, after
// any correction - which may differ from what the caller typed.
func (o DecodeOutput) CorrectedChunk() EncodedChunk { return o.corrected }

// EncodeChunk packs data into bits bits of payload, appends ecc
// Reed-Solomon parity quintets, and renders the result as text.
func EncodeChunk(data []byte, ecc, bits int) (EncodedChunk, error) {
	return encodeChunk(data, ecc, bits)
}

// DecodeChunk parses text - stripping '-' separators, treating
// non-alphabet bytes as erasures - reconciles its length against bits and
// ecc, and attempts Reed-Solomon correction.
func DecodeChunk(text string, ecc, bits int) (DecodeOutput, error) {
	return decodeChunk(text, ecc, bits)
}

// ChunkEncoder binds an ecc value for repeated EncodeChunk calls. The
// generator polynomials are a package-level table, so it carries no setup
// of its own. Safe for concurrent use: it holds no mutable state of its own.
type ChunkEncoder struct {
	ecc int
}

// NewChunkEncoder validates ecc at construction. Each EncodeChunk call still
// runs the same checks as the package-level EncodeChunk, ecc included.
func NewChunkEncoder(ecc int) (ChunkEncoder, error) {
	if ecc < 0 || ecc > 30 {
		return ChunkEncoder{}, usageErr(InvalidEccLen, "ecc must be in [0,30]")
	}
	return ChunkEncoder{ecc: ecc}, nil
}

// EncodeChunk encodes data at this encoder's ecc.
func (e ChunkEncoder) EncodeChunk(data []byte, bits int) (EncodedChunk, error) {
	return encodeChunk(data, e.ecc, bits)
}

// ChunkDecoder is ChunkEncoder's counterpart for DecodeChunk.
type ChunkDecoder struct {
	ecc int
}

// NewChunkDecoder validates ecc at construction. Each DecodeChunk call still
// runs the same checks as the package-level DecodeChunk, ecc included.
func NewChunkDecoder(ecc int) (ChunkDecoder, error) {
	if ecc < 0 || ecc > 30 {
		return ChunkDecoder{}, usageErr(InvalidEccLen, "ecc must be in [0,30]")
	}
	return ChunkDecoder{ecc: ecc}, nil
}

// DecodeChunk decodes text at this decoder's ecc.
func (d ChunkDecoder) DecodeChunk(text string, bits int) (DecodeOutput, error) {
	return decodeChunk(text, d.ecc, bits)
}

func encodeChunk(data []byte, ecc, bits int) (EncodedChunk, error) {
	if ecc < 0 || ecc > 30 {
		return EncodedChunk{}, usageErr(InvalidEccLen, "ecc must be in [0,30]")
	}
	if len(data) > 20 {
		return EncodedChunk{}, usageErr(EncodeBufferTooBig, "data must be at most 20 bytes")
	}
	if bits < 1 || bits > 150 {
		return EncodedChunk{}, usageErr(InvalidBits, "bits must be in [1,150]")
	}
	if len(data) != bitsToOctets(bits) {
		return EncodedChunk{}, usageErr(EncodeBufferDoesntMatchBits, "len(data) must equal ceil(bits/8)")
	}
	d := bitsToQuintets(bits)
	if d+ecc > nn {
		return EncodedChunk{}, usageErr(TotalEncodeLenTooLong, "data quintets plus ecc must be at most 31")
	}

	var chunk EncodedChunk
	if !octetsToQuintets(&chunk.quintets, data, bits) {
		return EncodedChunk{}, usageErr(EncodeBufferHadNonzeroTrailingBits, "trailing bits of the last data byte must be zero")
	}

	NewReedSolomonGF32(ecc).Encode(&chunk.quintets)
	return chunk, nil
}

func decodeChunk(text string, ecc, bits int) (DecodeOutput, error) {
	if bits < 1 || bits > 150 {
		return DecodeOutput{}, usageErr(InvalidBits, "bits must be in [1,150]")
	}
	if ecc < 0 || ecc > 30 {
		return DecodeOutput{}, usageErr(InvalidEccLen, "ecc must be in [0,30]")
	}
	d := bitsToQuintets(bits)

	var quintets QuintetBuf
	var erasures ErasureBuf
	pos := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		kind, q := classifyChar(b)
		if kind == charSeparator {
			continue
		}
		if pos >= nn {
			return DecodeOutput{}, usageErr(DecodeBufferTooBig, "text has more than 31 symbols")
		}
		switch {
		case kind == charInvalid:
			erasures.add(byte(pos))
			quintets.append(0)
		case pos == d-1 && !quintetLowBitsZero(bits, q):
			// The final data symbol can't possibly be correct as
			// transcribed: its declared-unused low bits are nonzero.
			// Flag it as an erasure so correction can use it, rather
			// than burning an unknown-error slot on it.
			erasures.add(byte(pos))
			quintets.append(0)
		default:
			quintets.append(q)
		}
		pos++
	}

	l := quintets.Len()
	if l <= ecc {
		return DecodeOutput{}, usageErr(DecodeBufferSmallerThanEcc, "text has no more symbols than ecc")
	}
	if l-ecc != d {
		return DecodeOutput{}, usageErr(DecodeBufferWrongSize, "text's symbol count doesn't match bits and ecc")
	}

	errCount, ok := NewReedSolomonGF32(ecc).Decode(&quintets, &erasures)
	if !ok {
		return DecodeOutput{}, errTooManyErrors
	}
	hadErrors := errCount > 0 || erasures.Len() > 0

	if hadErrors && !quintetLowBitsZero(bits, quintets.Bytes()[d-1]) {
		// Correction landed on a word that's algebraically valid but
		// outside the subset bits actually allows - indistinguishable
		// from uncorrectable corruption from the caller's standpoint.
		return DecodeOutput{}, errTooManyErrors
	}

	var out DecodeOutput
	if !quintetsToOctets(&out.octets, quintets.Bytes()[:d], bits) {
		panic("humancode: bit-unpacking of a validated data quintet failed")
	}
	out.corrected = EncodedChunk{quintets: quintets}
	out.hadErrors = hadErrors
	return out, nil
}

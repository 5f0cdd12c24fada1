package humancode

// ReedSolomonGF32 implements a systematic, shortened Reed-Solomon code over
// GF(2⁵), with support for combined error and erasure correction. The
// algorithm - syndrome computation, Berlekamp-Massey with an
// erasure-locator seed, Chien search, and Forney's formula - is the same
// classical construction doismellburning-samoyed/src/fx25_init.go and
// fx25_encode.go name (Phil Karn's public-domain rs.c, as used in the
// FX.25 protocol's GF(2⁸) code); only the decode half isn't present in
// that file, since fx25_rec.go calls into a cgo decode_rs_char this
// package doesn't have, so the Berlekamp-Massey/Chien/Forney steps below
// are written fresh from the same well-known algorithm family fx25_init.go
// cites by name.
//
// Shortening: a codeword shorter than the full nn=31 symbols is treated as
// a full-length codeword with implicit leading zero symbols. Encoding
// exploits this directly - running the systematic LFSR over only the real
// data symbols produces the same parity as running it over a
// zero-padded-to-31 buffer, since the shift register starts at all zero
// and multiplying zero by anything stays zero. Decoding can't skip the
// padding the same way, because Berlekamp-Massey/Chien/Forney all reason
// about absolute symbol position in the full-length code; instead the
// decoder materializes the leading zeros, decodes at full length, then
// strips them back off.
type ReedSolomonGF32 struct {
	ecc int
}

// NewReedSolomonGF32 returns a codec for the given number of parity
// symbols. The caller must have already validated 0 <= ecc <= nn.
func NewReedSolomonGF32(ecc int) ReedSolomonGF32 {
	if ecc < 0 || ecc > nn {
		panic("humancode: ReedSolomonGF32 ecc out of range")
	}
	return ReedSolomonGF32{ecc: ecc}
}

// Ecc returns the number of parity symbols this codec appends.
func (rs ReedSolomonGF32) Ecc() int { return rs.ecc }

// Encode appends rs.Ecc() parity quintets to dst, computed systematically
// over the data quintets already present in dst (dst.Len() data symbols
// plus rs.Ecc() parity symbols must not exceed 31). Every value in the
// data portion must already be < 32.
func (rs ReedSolomonGF32) Encode(dst *QuintetBuf) {
	if rs.ecc == 0 {
		return
	}
	data := dst.Bytes()
	genpoly := genPolys[rs.ecc]

	var parity [nn]byte
	par := parity[:rs.ecc]
	for _, d := range data {
		fb := gfLog[d^par[0]]
		copy(par, par[1:])
		par[rs.ecc-1] = 0
		if fb != a0 {
			for j := 0; j < rs.ecc-1; j++ {
				if genpoly[rs.ecc-1-j] != a0 {
					par[j] ^= gfExp[modnn(int(fb)+int(genpoly[rs.ecc-1-j]))]
				}
			}
			par[rs.ecc-1] = gfExp[modnn(int(fb)+int(genpoly[0]))]
		}
	}
	for _, p := range par {
		dst.append(p)
	}
}

// Decode attempts to correct received (length L, L = data symbols + ecc
// parity symbols, L <= 31) using the positions in erasures as known-
// unreliable symbols. On success it returns the number of symbol
// positions it corrected (which always includes every position named in
// erasures, whether or not its value actually changed) and true. It
// returns false if the received word, even accounting for the declared
// erasures, is further than the code's correction radius from any valid
// codeword - the caller should treat this as a TooManyErrors decode
// failure, not retry with different parameters.
func (rs ReedSolomonGF32) Decode(received *QuintetBuf, erasures *ErasureBuf) (corrected int, ok bool) {
	l := received.Len()
	pad := nn - l
	if rs.ecc == 0 {
		return 0, erasures.Len() == 0
	}

	var full [nn]byte
	copy(full[pad:], received.Bytes())

	var seen [nn]bool
	var fullEras [nn]byte
	nEras := 0
	for _, p := range erasures.Positions() {
		fp := int(p) + pad
		if !seen[fp] {
			seen[fp] = true
			fullEras[nEras] = byte(fp)
			nEras++
		}
	}
	if nEras > rs.ecc {
		return 0, false
	}

	count, ok := rsDecodeFull(&full, fullEras[:nEras], rs.ecc)
	if !ok {
		return 0, false
	}
	for i := 0; i < pad; i++ {
		if full[i] != 0 {
			// The decoder found a valid full-length codeword, but one
			// that doesn't lie in the shortened subcode (it requires
			// nonzero values in positions this code never uses).
			return 0, false
		}
	}

	received.setLen(l)
	copy(received.Slice(), full[pad:])
	return count, true
}

// rsDecodeFull runs the classical error-and-erasure decoder in place over
// a full-length (nn-symbol) received word, given distinct erasure
// positions (each < nn) and the number of RS parity symbols nroots. It
// returns the total number of corrected positions and whether decoding
// succeeded.
func rsDecodeFull(received *[nn]byte, eras []byte, nroots int) (int, bool) {
	noEras := len(eras)

	var s [nn]byte
	synError := false
	for i := 0; i < nroots; i++ {
		s[i] = received[0]
	}
	for j := 1; j < nn; j++ {
		for i := 0; i < nroots; i++ {
			if s[i] == 0 {
				s[i] = received[j]
			} else {
				s[i] = received[j] ^ gfExp[modnn(int(gfLog[s[i]])+(i+1))]
			}
		}
	}
	for i := 0; i < nroots; i++ {
		if s[i] != 0 {
			synError = true
		}
		s[i] = gfLog[s[i]]
	}
	if !synError {
		// The buffer, with erased positions left as-is, is already a
		// valid codeword.
		return noEras, true
	}

	var lambda [nn + 1]byte
	lambda[0] = 1
	if noEras > 0 {
		lambda[1] = gfExp[modnn(nn-1-int(eras[0]))]
		for i := 1; i < noEras; i++ {
			u := modnn(nn - 1 - int(eras[i]))
			for j := i + 1; j > 0; j-- {
				if lambda[j-1] != 0 {
					lambda[j] ^= gfExp[modnn(u+int(gfLog[lambda[j-1]]))]
				}
			}
		}
	}

	var b [nn + 1]byte
	for i := 0; i <= nroots; i++ {
		b[i] = gfLog[lambda[i]]
	}

	r := noEras
	el := noEras
	for {
		r++
		if r > nroots {
			break
		}
		var discrR byte
		for i := 0; i < r; i++ {
			if lambda[i] != 0 && s[r-i-1] != a0 {
				discrR ^= gfExp[modnn(int(gfLog[lambda[i]])+int(s[r-i-1]))]
			}
		}
		discrRLog := gfLog[discrR]
		if discrRLog == a0 {
			copy(b[1:nroots+1], b[0:nroots])
			b[0] = a0
			continue
		}
		var t [nn + 1]byte
		t[0] = lambda[0]
		for i := 0; i < nroots; i++ {
			if b[i] != a0 {
				t[i+1] = lambda[i+1] ^ gfExp[modnn(int(discrRLog)+int(b[i]))]
			} else {
				t[i+1] = lambda[i+1]
			}
		}
		if 2*el <= r+noEras-1 {
			el = r + noEras - el
			for i := 0; i <= nroots; i++ {
				if lambda[i] == 0 {
					b[i] = a0
				} else {
					b[i] = byte(modnn(int(gfLog[lambda[i]]) - int(discrRLog) + nn))
				}
			}
		} else {
			copy(b[1:nroots+1], b[0:nroots])
			b[0] = a0
		}
		copy(lambda[:nroots+1], t[:nroots+1])
	}

	degLambda := 0
	for i := 0; i <= nroots; i++ {
		lambda[i] = gfLog[lambda[i]]
		if lambda[i] != a0 {
			degLambda = i
		}
	}

	var reg [nn + 1]byte
	copy(reg[1:nroots+1], lambda[1:nroots+1])
	var root, loc [nn]byte
	count := 0
	k := 0
	for i := 1; i <= nn; i++ {
		q := byte(1)
		for j := degLambda; j > 0; j-- {
			if reg[j] != a0 {
				reg[j] = byte(modnn(int(reg[j]) + j))
				q ^= gfExp[reg[j]]
			}
		}
		if q == 0 && count < nn {
			root[count] = byte(i)
			loc[count] = byte(k)
			count++
		}
		k = modnn(k + 1)
	}
	if degLambda != count {
		return 0, false
	}

	var omega [nn + 1]byte
	degOmega := 0
	for i := 0; i < nroots; i++ {
		jLimit := degLambda
		if i < jLimit {
			jLimit = i
		}
		var tmp byte
		for j := jLimit; j >= 0; j-- {
			if s[i-j] != a0 && lambda[j] != a0 {
				tmp ^= gfExp[modnn(int(s[i-j])+int(lambda[j]))]
			}
		}
		if tmp != 0 {
			degOmega = i
		}
		omega[i] = gfLog[tmp]
	}
	omega[nroots] = a0

	for j := count - 1; j >= 0; j-- {
		var num1 byte
		for i := degOmega; i >= 0; i-- {
			if omega[i] != a0 {
				num1 ^= gfExp[modnn(int(omega[i])+i*int(root[j]))]
			}
		}
		if num1 == 0 {
			continue
		}
		top := nroots - 1
		if degLambda < top {
			top = degLambda
		}
		if top%2 != 0 {
			top--
		}
		var den byte
		for i := top; i >= 0; i -= 2 {
			if lambda[i+1] != a0 {
				den ^= gfExp[modnn(int(lambda[i+1])+i*int(root[j]))]
			}
		}
		if den == 0 {
			return 0, false
		}
		corrLog := modnn(int(gfLog[num1]) + nn - int(gfLog[den]))
		received[loc[j]] ^= gfExp[corrLog]
	}

	return count, true
}

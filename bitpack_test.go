package humancode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBitsToOctetsAndQuintets(t *testing.T) {
	assert.Equal(t, 0, bitsToOctets(0))
	assert.Equal(t, 1, bitsToOctets(1))
	assert.Equal(t, 1, bitsToOctets(8))
	assert.Equal(t, 2, bitsToOctets(9))
	assert.Equal(t, 19, bitsToOctets(150))

	assert.Equal(t, 0, bitsToQuintets(0))
	assert.Equal(t, 1, bitsToQuintets(1))
	assert.Equal(t, 1, bitsToQuintets(5))
	assert.Equal(t, 2, bitsToQuintets(6))
	assert.Equal(t, 30, bitsToQuintets(150))
}

func TestOctetsToQuintetsRejectsWrongLength(t *testing.T) {
	var dst QuintetBuf
	assert.False(t, octetsToQuintets(&dst, []byte{0, 0}, 4))
}

func TestOctetsToQuintetsRejectsNonzeroTrailingBits(t *testing.T) {
	var dst QuintetBuf
	// bits=31 needs ceil(31/8)=4 octets; the low (8-31%8)%8=1 bit of the
	// last octet must be zero.
	ok := octetsToQuintets(&dst, []byte{0xFF, 0xFF, 0xFF, 0xFF}, 31)
	assert.False(t, ok)
}

func TestQuintetsToOctetsRejectsOutOfRangeQuintet(t *testing.T) {
	var dst OctetBuf
	assert.False(t, quintetsToOctets(&dst, []byte{32}, 1))
}

func TestQuintetsToOctetsRejectsNonzeroTrailingBits(t *testing.T) {
	var dst OctetBuf
	// bits=1 needs 1 quintet whose low 4 bits must be zero.
	assert.False(t, quintetsToOctets(&dst, []byte{0x1F}, 1))
}

func TestBitPackRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.IntRange(1, 150).Draw(t, "bits")
		octets := rapid.SliceOfN(rapid.Byte(), bitsToOctets(bits), bitsToOctets(bits)).Draw(t, "octets")

		tailBits := (8 - bits%8) % 8
		if tailBits > 0 {
			mask := byte(1<<uint(tailBits) - 1)
			octets[len(octets)-1] &^= mask
		}

		var q QuintetBuf
		require.True(t, octetsToQuintets(&q, octets, bits))
		assert.Equal(t, bitsToQuintets(bits), q.Len())

		var back OctetBuf
		require.True(t, quintetsToOctets(&back, q.Bytes(), bits))
		assert.Equal(t, octets, back.Bytes())
	})
}

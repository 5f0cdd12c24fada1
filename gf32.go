package humancode

// Galois field GF(2⁵) arithmetic, built the same way
// doismellburning-samoyed/src/fx25_init.go's init_rs_char builds its
// GF(2⁸) tables for the FX.25 amateur-radio protocol (itself adapted from
// Phil Karn's public-domain rs.c): a primitive polynomial defines
// multiplication by the generator element alpha via a log/antilog table
// pair, built once by repeated doubling-with-reduction.
//
// gfPoly = x⁵+x²+1 (0b100101 = 0x25) is a primitive polynomial for
// GF(2⁵); primitive here means alpha=2 generates all 31 nonzero field
// elements before cycling. The init loop below relies on this and does not
// check it.

const (
	gfBits = 5
	nn     = 1<<gfBits - 1 // 31: nonzero elements of GF(32), and codeword length
	gfPoly = 0x25
	// a0 is the sentinel log value representing log(0) = -infinity,
	// following the same convention as fx25_init.go's rs.nn placeholder.
	a0 = nn
)

var (
	gfExp [nn]byte // gfExp[i] = alpha^i, for i in [0,nn)
	gfLog [nn + 1]byte // gfLog[x] = i such that alpha^i = x; gfLog[0] = a0
)

func init() {
	gfLog[0] = a0
	sr := 1
	for i := 0; i < nn; i++ {
		gfExp[i] = byte(sr)
		gfLog[sr] = byte(i)
		sr <<= 1
		if sr&(1<<gfBits) != 0 {
			sr ^= gfPoly
		}
		sr &= nn
	}
}

// modnn reduces x modulo nn using the same shift-and-add trick as
// fx25_init.go's modnn, valid for any x >= 0.
func modnn(x int) int {
	for x >= nn {
		x -= nn
		x = (x >> gfBits) + (x & nn)
	}
	return x
}

// genPolys[e] holds the degree-e Reed-Solomon generator polynomial for e
// parity symbols, in index (logarithm) form, length e+1, with roots at
// alpha^1 .. alpha^e (i.e. fcr=1, prim=1 in the classical rs.c
// parameterization). Precomputed once at init so that encode/decode never
// needs to build a table at call time and multiple goroutines can share
// an ecc value's configuration without synchronization.
var genPolys [nn + 1][]byte

func init() {
	for nroots := 0; nroots <= nn; nroots++ {
		poly := make([]byte, nroots+1)
		poly[0] = 1
		root := 1
		for i := 0; i < nroots; i, root = i+1, root+1 {
			poly[i+1] = 1
			for j := i; j > 0; j-- {
				if poly[j] != 0 {
					poly[j] = poly[j-1] ^ gfExp[modnn(int(gfLog[poly[j]])+root)]
				} else {
					poly[j] = poly[j-1]
				}
			}
			poly[0] = gfExp[modnn(int(gfLog[poly[0]])+root)]
		}
		for i := range poly {
			poly[i] = gfLog[poly[i]]
		}
		genPolys[nroots] = poly
	}
}

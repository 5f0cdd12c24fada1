package humancode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageErrorMessage(t *testing.T) {
	err := usageErr(InvalidBits, "bits must be in [1,150]")
	assert.Contains(t, err.Error(), "InvalidBits")
	assert.Contains(t, err.Error(), "bits must be in [1,150]")
}

func TestDecodeErrorMessage(t *testing.T) {
	assert.Contains(t, errTooManyErrors.Error(), "TooManyErrors")
}

func TestUsageKindStrings(t *testing.T) {
	kinds := []UsageKind{
		InvalidEccLen, InvalidBits, EncodeBufferTooBig,
		EncodeBufferDoesntMatchBits, TotalEncodeLenTooLong,
		EncodeBufferHadNonzeroTrailingBits, DecodeBufferTooBig,
		DecodeBufferSmallerThanEcc, DecodeBufferWrongSize,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		assert.False(t, seen[s], "duplicate String() for %v", k)
		seen[s] = true
	}
}

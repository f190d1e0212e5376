package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeStringRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeECB, ModeCBC, ModeCFB, ModeOFB} {
		label := m.String()
		parsed, err := ParseMode(label)
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseModeIsByteExact(t *testing.T) {
	_, err := ParseMode("cbc")
	assert.Error(t, err, "lower-case label must be rejected")

	_, err = ParseMode(" CBC")
	assert.Error(t, err, "leading whitespace must be rejected")

	_, err = ParseMode("CBC ")
	assert.Error(t, err, "trailing whitespace must be rejected")
}

func TestParseModeCTRRecognizedButUnsupported(t *testing.T) {
	_, err := ParseMode("CTR")
	require.Error(t, err)
	var cerr *CipherError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrUnsupportedMode, cerr.Kind)
	assert.Contains(t, cerr.Detail, "not implemented")
}

func TestParseModeUnknownLabel(t *testing.T) {
	_, err := ParseMode("XYZ")
	require.Error(t, err)
	var cerr *CipherError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrUnsupportedMode, cerr.Kind)
}

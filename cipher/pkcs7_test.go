package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPKCS7Pad(t *testing.T) {
	cases := []struct {
		name        string
		dataLen     int
		expectedPad byte
	}{
		{"full block", 8, 8},
		{"one byte", 7, 1},
		{"half block", 4, 4},
		{"empty", 0, 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := make([]byte, tc.dataLen)
			for i := range msg {
				msg[i] = 0xff
			}
			out := pkcs7Pad(msg)
			assert.Equal(t, tc.dataLen+int(tc.expectedPad), len(out))
			for i := tc.dataLen; i < len(out); i++ {
				assert.Equal(t, tc.expectedPad, out[i])
			}
		})
	}
}

func TestPKCS7Unpad(t *testing.T) {
	cases := []struct {
		name        string
		block       []byte
		expectedLen int
		shouldError bool
	}{
		{
			"valid padding 1",
			[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
			7,
			false,
		},
		{
			"padding length equals buffer length (p >= len, spec.md section 4.3)",
			[]byte{0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08},
			0,
			true,
		},
		{
			"invalid padding length 0",
			[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00},
			0,
			true,
		},
		{
			"invalid padding length exceeds buffer",
			[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x09},
			0,
			true,
		},
		{
			"inconsistent padding bytes (spec S6 vector)",
			[]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
			0,
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := pkcs7Unpad(tc.block)
			if tc.shouldError {
				require.NotNil(t, err)
				assert.Nil(t, out)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tc.expectedLen, len(out))
		})
	}
}

func TestPKCS7RoundTrip(t *testing.T) {
	// dataLen 0 is intentionally excluded: pkcs7Pad(nil) yields a full 8-byte
	// pad block, and p (8) equals len(buf) (8), which pkcs7Unpad must reject
	// per spec.md section 4.3 — see TestPKCS7RoundTripEmptyMessageRejected.
	for _, dataLen := range []int{1, 7, 8, 15, 16} {
		msg := make([]byte, dataLen)
		for i := range msg {
			msg[i] = byte(i)
		}
		padded := pkcs7Pad(msg)
		recovered, err := pkcs7Unpad(padded)
		require.Nil(t, err)
		assert.Equal(t, msg, recovered)
	}
}

func TestPKCS7RoundTripEmptyMessageRejected(t *testing.T) {
	padded := pkcs7Pad(nil)
	_, err := pkcs7Unpad(padded)
	require.NotNil(t, err)
	assert.Equal(t, ErrBadPadding, err.Kind)
}

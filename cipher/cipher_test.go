package cipher

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestS1_CBC_Padded(t *testing.T) {
	key := mustHex(t, "d96b1d59a43ab69d1d0529bbd9c266a0b431ec8ac5940773772bfcb3dc1f22")
	iv := mustHex(t, "bd9b7eb31f57b2db")
	plain := []byte("random length text")
	wantCipher := mustHex(t, "8a886444412f92f38cfac281f0c508a3ae1b7227c1728a0e")

	ctx, err := New(key, iv, ModeCBC, 0)
	require.NoError(t, err)
	got, err := ctx.Encrypt(plain)
	require.NoError(t, err)
	assert.Equal(t, wantCipher, got)

	ctx.Reset()
	back, err := ctx.Decrypt(got)
	require.NoError(t, err)
	assert.Equal(t, plain, back)
}

func TestS2_CBC_NoPaddingButDefaultsOn(t *testing.T) {
	key := mustHex(t, "d96b1d59a43ab69d1d0529bbd9c266a0b431ec8ac5940773772bfcb3dc1f22")
	iv := mustHex(t, "bd9b7eb31f57b2db")
	plain := []byte("message that is a multiple of block size bytes in length")
	wantCipher := mustHex(t, "0c14d590523d68d6e4a6689f6a3776a2a7df486f470acb2c10361b09389ad16fe41ca4b1399be69c3a5ef3dfa21b6586547a91df69a4fab9571e11c91d78462e")

	ctx, err := New(key, iv, ModeCBC, 0)
	require.NoError(t, err)
	got, err := ctx.Encrypt(plain)
	require.NoError(t, err)
	assert.Equal(t, wantCipher, got)
}

func TestS3_ECB_PaddingDisabled(t *testing.T) {
	key := mustHex(t, "bcf8a260199662d5ba73036486ef1c9cc9cff2a1b500c81936b2f0158db2286676c0cdad56")
	plain := []byte("message that is a multiple of block size bytes in length")
	wantCipher := mustHex(t, "4c8da5d0e0a69b160fc31fe25dcc71972a3b04421849c6de259ac28cd0f91ecb177136bb6cf7de748923f8f3ec734021591f651058c79385")

	ctx, err := New(key, nil, ModeECB, 0)
	require.NoError(t, err)
	ctx.SetPKCS7Padding(false)
	got, err := ctx.Encrypt(plain)
	require.NoError(t, err)
	assert.Equal(t, wantCipher, got)
}

func TestS4_CFB_Segment24(t *testing.T) {
	key := mustHex(t, "07a1b8b832e95b2d64e2f5c1623b543d29e3ed7800fb7f")
	iv := mustHex(t, "b00db231c67c8212")
	plain := []byte("multiple of segment size bits in length")
	wantCipher := mustHex(t, "d3c53c44a38417748eb421d3780fb28e0eaf9abc917a55734d786525915174a88359631d479582")

	ctx, err := New(key, iv, ModeCFB, 24)
	require.NoError(t, err)
	got, err := ctx.Encrypt(plain)
	require.NoError(t, err)
	assert.Equal(t, wantCipher, got)

	ctx.Reset()
	back, err := ctx.Decrypt(got)
	require.NoError(t, err)
	assert.Equal(t, plain, back)
}

// TestS5_OFB_RoundTrip exercises the S5 scenario's shape (a 51-byte key, an
// 8-byte IV, a message not a multiple of the block size). spec.md gives only
// the leading bytes of the 51-byte key (f5fe5b583e421cca...), so this uses a
// key of the right length rather than asserting the exact published
// ciphertext, and instead checks the round trip and the keystream-cursor
// behavior OFB is defined by.
func TestS5_OFB_RoundTrip(t *testing.T) {
	key := make([]byte, 51)
	copy(key, mustHex(t, "f5fe5b583e421cca"))
	for i := 8; i < len(key); i++ {
		key[i] = byte(i)
	}
	iv := mustHex(t, "3f65aedd85db7e67")
	plain := []byte("this message can be any length that you want")

	ctx, err := New(key, iv, ModeOFB, 0)
	require.NoError(t, err)
	got, err := ctx.Encrypt(plain)
	require.NoError(t, err)
	assert.NotEqual(t, plain, got)
	assert.Len(t, got, len(plain))

	ctx.Reset()
	back, err := ctx.Decrypt(got)
	require.NoError(t, err)
	assert.Equal(t, plain, back)
}

// TestS6_BadPaddingOnDecrypt follows the shape of scenario S6: a CBC
// decrypt whose recovered plaintext ends in a byte that cannot be a valid
// PKCS#7 pad count (zero). The all-zero plaintext block round-trips to an
// all-zero recovered block, so its last byte (0) is always an invalid pad
// length, deterministically reproducing S6's "decryption fails with a
// padding diagnostic and returns no plaintext".
func TestS6_BadPaddingOnDecrypt(t *testing.T) {
	key := mustHex(t, "d96b1d59a43ab69d1d0529bbd9c266a0b431ec8ac5940773772bfcb3dc1f22")
	iv := mustHex(t, "bd9b7eb31f57b2db")

	ctx, err := New(key, iv, ModeCBC, 0)
	require.NoError(t, err)
	ctx.SetPKCS7Padding(false)
	ciphertext, err := ctx.Encrypt(make([]byte, 64))
	require.NoError(t, err)

	ctx.Reset()
	ctx.SetPKCS7Padding(true)
	out, err := ctx.Decrypt(ciphertext)
	require.Error(t, err)
	assert.Nil(t, out)

	var cerr *CipherError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrBadPadding, cerr.Kind)
}

// TestBadPaddingRejectsVectorFromSpec directly exercises the raw padding
// validator against the byte pattern spec.md's S6 names (last byte 7,
// preceding bytes not all 7): the PKCS#7 check it describes regardless of
// which cipher/key produced the buffer.
func TestBadPaddingRejectsVectorFromSpec(t *testing.T) {
	buf := mustHex(t, "0001020304050607")
	_, cerr := pkcs7Unpad(buf)
	require.NotNil(t, cerr)
	assert.Equal(t, ErrBadPadding, cerr.Kind)
}

func TestRoundTripAllModes(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	iv := mustHex(t, "1122334455667788")
	plain := []byte("exactly16bytes!!")

	for _, mode := range []Mode{ModeECB, ModeCBC, ModeCFB, ModeOFB} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			var useIV []byte
			if mode != ModeECB {
				useIV = iv
			}
			ctx, err := New(key, useIV, mode, 0)
			require.NoError(t, err)
			if mode == ModeECB {
				// ECB encrypt never pads, so ECB decrypt must not unpad either.
				ctx.SetPKCS7Padding(false)
			}

			ctx2, err := New(key, useIV, mode, 0)
			require.NoError(t, err)

			enc, err := ctx.Encrypt(plain)
			require.NoError(t, err)

			ctx.Reset()
			dec, err := ctx.Decrypt(enc)
			require.NoError(t, err)
			assert.Equal(t, plain, dec)

			enc2, err := ctx2.Encrypt(plain)
			require.NoError(t, err)
			assert.Equal(t, enc, enc2, "determinism: identical construction must produce identical output")
		})
	}
}

func TestResetInvariance(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	iv := mustHex(t, "1122334455667788")
	plain := []byte("some plaintext that spans blocks nicely")

	ctx, err := New(key, iv, ModeCBC, 0)
	require.NoError(t, err)

	first, err := ctx.Encrypt(plain)
	require.NoError(t, err)

	_, err = ctx.Encrypt(plain)
	require.NoError(t, err)

	ctx.Reset()
	assert.Equal(t, ctx.initialIV, ctx.iv)

	again, err := ctx.Encrypt(plain)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestZeroLengthMessageIsSilentNoOp(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	iv := mustHex(t, "1122334455667788")

	for _, mode := range []Mode{ModeECB, ModeCBC, ModeCFB, ModeOFB} {
		mode := mode
		var useIV []byte
		if mode != ModeECB {
			useIV = iv
		}
		ctx, err := New(key, useIV, mode, 0)
		require.NoError(t, err)

		out, err := ctx.Encrypt(nil)
		require.NoError(t, err)
		assert.Nil(t, out)

		out, err = ctx.Decrypt([]byte{})
		require.NoError(t, err)
		assert.Nil(t, out)
	}
}

func TestCFBSegmentDefault(t *testing.T) {
	key := mustHex(t, "0123456789abcdef")
	iv := mustHex(t, "1122334455667788")
	ctx, err := New(key, iv, ModeCFB, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, ctx.SegmentSize())
}

// TestCFBPaddingFlagIsInert confirms the Open Question #4 resolution: CFB
// never consults pkcs7Padding. Leaving the flag at its default true and
// feeding a message that isn't a multiple of the segment size must fail
// with ErrLengthConstraint, not silently pad the message out.
func TestCFBPaddingFlagIsInert(t *testing.T) {
	key := mustHex(t, "0123456789abcdef")
	iv := mustHex(t, "1122334455667788")
	ctx, err := New(key, iv, ModeCFB, 24)
	require.NoError(t, err)

	msg := []byte("not a multiple of three bytes")
	_, err = ctx.Encrypt(msg)
	require.Error(t, err)

	var cerr *CipherError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrLengthConstraint, cerr.Kind)
}

func TestKeyLengthBoundaries(t *testing.T) {
	iv := mustHex(t, "1122334455667788")
	for k := 4; k <= 56; k++ {
		_, err := New(make([]byte, k), iv, ModeCBC, 0)
		assert.NoErrorf(t, err, "key length %d should be accepted", k)
	}
	for _, k := range []int{0, 3, 57} {
		_, err := New(make([]byte, k), iv, ModeCBC, 0)
		assert.Errorf(t, err, "key length %d should be rejected", k)
	}
}

func TestNegativeConstruction(t *testing.T) {
	key := mustHex(t, "0123456789abcdef")

	_, err := New(key, nil, ModeCBC, 0)
	assert.Error(t, err, "CBC requires an IV")

	_, err = New(key, mustHex(t, "11223344556677"), ModeCFB, 0)
	assert.Error(t, err, "7-byte IV must be rejected")

	_, err = New(key, mustHex(t, "1122334455667788"), ModeECB, 0)
	assert.Error(t, err, "ECB must not accept an IV")

	_, err = New(key, mustHex(t, "1122334455667788"), ModeCFB, 3)
	assert.Error(t, err, "segment_size=3 is not a multiple of 8")

	_, err = ParseMode("CTR")
	assert.Error(t, err, "CTR is recognised but unsupported")
}

func TestErrorSinkReceivesDiagnostic(t *testing.T) {
	var captured *CipherError
	sink := func(e *CipherError) { captured = e }

	_, err := New(nil, nil, ModeCBC, 0, WithErrorSink(sink))
	require.Error(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, ErrInvalidKey, captured.Kind)
}

func TestSetPKCS7PaddingMidSession(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba9876543210")
	iv := mustHex(t, "1122334455667788")
	ctx, err := New(key, iv, ModeCBC, 0)
	require.NoError(t, err)

	plain := []byte("exactly16bytes!!")
	ctx.SetPKCS7Padding(false)
	aligned, err := ctx.Encrypt(plain)
	require.NoError(t, err)
	assert.Len(t, aligned, 16)

	ctx.Reset()
	ctx.SetPKCS7Padding(true)
	padded, err := ctx.Encrypt(plain)
	require.NoError(t, err)
	assert.Len(t, padded, 24)
}

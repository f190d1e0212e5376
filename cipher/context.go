// Package cipher implements the stateful block-cipher engine: a Context
// built from a key, optional IV, and chaining Mode, supporting repeated
// Encrypt/Decrypt calls and a Reset back to the IV used at construction.
package cipher

import (
	"github.com/lihongjie0209/blowfish-cipher/blowfish"
)

const blockSize = blowfish.BlockSize

// Context is the cipher context: a Blowfish key schedule plus the chaining
// state a Mode needs across repeated Encrypt/Decrypt calls.
type Context struct {
	mode Mode

	engine *blowfish.Cipher

	segmentSize int // bytes; CFB only

	iv        [blockSize]byte
	initialIV [blockSize]byte
	count     int // OFB cursor, 0..blockSize

	pkcs7Padding bool
	sink         ErrorSink
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithErrorSink installs sink as the Context's diagnostic receiver. A nil
// sink (the default) silently discards every diagnostic.
func WithErrorSink(sink ErrorSink) Option {
	return func(c *Context) { c.sink = sink }
}

// New validates (key, iv, mode, segmentSizeBits), derives the Blowfish key
// schedule, and returns a ready-to-use Context. Construction failure yields
// no context; the returned error is also reported through any sink supplied
// via WithErrorSink.
func New(key, iv []byte, mode Mode, segmentSizeBits int, opts ...Option) (*Context, error) {
	c := &Context{pkcs7Padding: true}
	for _, opt := range opts {
		opt(c)
	}

	if mode < ModeECB || mode > ModeOFB {
		err := newError(ErrUnsupportedMode, "mode must be one of ECB, CBC, CFB, OFB")
		c.report(err)
		return nil, err
	}
	c.mode = mode

	if len(key) < blowfish.MinKeyLength || len(key) > blowfish.MaxKeyLength {
		err := newError(ErrInvalidKey, "key length must be between 4 and 56 bytes")
		c.report(err)
		return nil, err
	}

	switch mode {
	case ModeECB:
		if len(iv) != 0 {
			err := newError(ErrInvalidIV, "ECB does not accept an IV")
			c.report(err)
			return nil, err
		}
	default:
		if len(iv) != blockSize {
			err := newError(ErrInvalidIV, "CBC/CFB/OFB require an 8-byte IV")
			c.report(err)
			return nil, err
		}
	}

	if mode == ModeCFB {
		bits := segmentSizeBits
		if bits == 0 {
			bits = 8
		}
		if bits < 8 || bits > blockSize*8 || bits%8 != 0 {
			err := newError(ErrInvalidSegmentSize, "CFB segment_size must be 8..64 and a multiple of 8")
			c.report(err)
			return nil, err
		}
		c.segmentSize = bits / 8
	}

	engine, err := blowfish.NewCipher(key)
	if err != nil {
		wrapped := wrapError(ErrInvalidKey, "key schedule derivation failed", err)
		c.report(wrapped)
		return nil, wrapped
	}
	c.engine = engine

	copy(c.iv[:], iv)
	copy(c.initialIV[:], iv)
	c.count = blockSize

	return c, nil
}

// Reset restores the chaining state to the IV supplied at construction. It
// does not re-derive the key schedule and does not touch the padding flag.
func (c *Context) Reset() {
	c.iv = c.initialIV
	c.count = blockSize
}

// SetPKCS7Padding toggles PKCS#7 padding. It can be called at any point in a
// Context's lifetime, independent of any pending encrypt/decrypt sequence.
func (c *Context) SetPKCS7Padding(enabled bool) {
	c.pkcs7Padding = enabled
}

// SegmentSize returns the CFB segment size in bits (always a multiple of 8).
// For non-CFB modes it returns 0.
func (c *Context) SegmentSize() int {
	return c.segmentSize * 8
}

// Mode returns the chaining mode the Context was constructed with.
func (c *Context) Mode() Mode {
	return c.mode
}

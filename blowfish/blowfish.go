// Package blowfish implements the Blowfish block cipher: key schedule and
// single-block encrypt/decrypt. It carries no notion of chaining mode or
// padding; those live in the cipher package, one layer up.
package blowfish

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// BlockSize is the Blowfish block size in bytes.
const BlockSize = 8

// MinKeyLength and MaxKeyLength bound the key material accepted by NewCipher.
const (
	MinKeyLength = 4
	MaxKeyLength = 56
)

// Cipher holds a derived Blowfish key schedule: the 18-word P-array and the
// four 256-word S-boxes. Once built it is read-only and safe to share across
// goroutines, since block encryption/decryption never mutates it.
type Cipher struct {
	p [18]uint32
	s [4][256]uint32
}

// NewCipher derives a key schedule from key, which must be between
// MinKeyLength and MaxKeyLength bytes.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) < MinKeyLength || len(key) > MaxKeyLength {
		return nil, errors.Errorf("blowfish: invalid key size %d, want %d..%d", len(key), MinKeyLength, MaxKeyLength)
	}
	c := new(Cipher)
	c.p = initialP
	c.s[0] = initialS0
	c.s[1] = initialS1
	c.s[2] = initialS2
	c.s[3] = initialS3
	expandKey(key, c)
	return c, nil
}

// BlockSize returns the cipher's block size, 8 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the 8-byte block in src, writing the result into dst.
// src and dst may overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	xl := binary.BigEndian.Uint32(src[0:4])
	xr := binary.BigEndian.Uint32(src[4:8])

	for i := 0; i <= 15; i++ {
		xl ^= c.p[i]
		xr ^= c.f(xl)
		xl, xr = xr, xl
	}
	// undo the final swap from the loop above
	xl, xr = xr, xl
	xr ^= c.p[16]
	xl ^= c.p[17]

	binary.BigEndian.PutUint32(dst[0:4], xl)
	binary.BigEndian.PutUint32(dst[4:8], xr)
}

// Decrypt decrypts the 8-byte block in src, writing the result into dst.
// src and dst may overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	xl := binary.BigEndian.Uint32(src[0:4])
	xr := binary.BigEndian.Uint32(src[4:8])

	xl ^= c.p[17]
	xr ^= c.p[16]
	xl, xr = xr, xl

	for i := 15; i >= 0; i-- {
		xl, xr = xr, xl
		xr ^= c.f(xl)
		xl ^= c.p[i]
	}

	binary.BigEndian.PutUint32(dst[0:4], xl)
	binary.BigEndian.PutUint32(dst[4:8], xr)
}

// f is the Blowfish round function, F(x) = ((S1[a]+S2[b]) ^ S3[c]) + S4[d].
func (c *Cipher) f(x uint32) uint32 {
	a, b, cc, d := x>>24, (x>>16)&0xff, (x>>8)&0xff, x&0xff
	return ((c.s[0][a] + c.s[1][b]) ^ c.s[2][cc]) + c.s[3][d]
}

// expandKey runs the 521-block-encryption key schedule described in the
// original Blowfish paper: XOR the key, cyclically, over P, then repeatedly
// re-encrypt the running (0,0) state to fill P and the four S-boxes in order.
func expandKey(key []byte, c *Cipher) {
	var ki int
	for i := 0; i < 18; i++ {
		var word uint32
		for j := 0; j < 4; j++ {
			word = word<<8 | uint32(key[ki%len(key)])
			ki++
		}
		c.p[i] ^= word
	}

	var block [8]byte
	for i := 0; i < 18; i += 2 {
		c.Encrypt(block[:], block[:])
		c.p[i] = binary.BigEndian.Uint32(block[0:4])
		c.p[i+1] = binary.BigEndian.Uint32(block[4:8])
	}
	for box := 0; box < 4; box++ {
		for i := 0; i < 256; i += 2 {
			c.Encrypt(block[:], block[:])
			c.s[box][i] = binary.BigEndian.Uint32(block[0:4])
			c.s[box][i+1] = binary.BigEndian.Uint32(block[4:8])
		}
	}
}

package cipher

// encryptCFB processes msg s = segmentSize bytes at a time: block-encrypt
// the shift register, XOR the keystream prefix with the segment, then shift
// the register left by s bytes and append the ciphertext segment on the
// right. The padding flag is accepted but inert in CFB (§9 design note a):
// only the segment-length constraint is enforced.
func (c *Context) encryptCFB(msg []byte) ([]byte, *CipherError) {
	return c.processCFB(msg, true)
}

// decryptCFB is the same stream, except the shift register is refreshed
// with the ciphertext segment rather than the recovered plaintext segment.
func (c *Context) decryptCFB(msg []byte) ([]byte, *CipherError) {
	return c.processCFB(msg, false)
}

func (c *Context) processCFB(msg []byte, encrypting bool) ([]byte, *CipherError) {
	s := c.segmentSize
	if len(msg)%s != 0 {
		return nil, newError(ErrLengthConstraint, "CFB input must be a multiple of the segment size")
	}

	out := make([]byte, len(msg))
	var keystream [blockSize]byte
	for i := 0; i < len(msg); i += s {
		c.engine.Encrypt(keystream[:], c.iv[:])
		for j := 0; j < s; j++ {
			out[i+j] = msg[i+j] ^ keystream[j]
		}

		var feedback []byte
		if encrypting {
			feedback = out[i : i+s]
		} else {
			feedback = msg[i : i+s]
		}
		copy(c.iv[:blockSize-s], c.iv[s:])
		copy(c.iv[blockSize-s:], feedback)
	}
	return out, nil
}

package cipher

// encryptCBC XORs each plaintext block with the running chain value before
// encrypting it, then updates the chain to the produced ciphertext block.
// With padding enabled the message is PKCS#7-padded first; with padding
// disabled a non-block-aligned message is rejected before any output is
// produced.
func (c *Context) encryptCBC(msg []byte) ([]byte, *CipherError) {
	if c.pkcs7Padding {
		msg = pkcs7Pad(msg)
	} else if len(msg)%blockSize != 0 {
		return nil, newError(ErrLengthConstraint, "CBC encrypt requires a block-aligned message when padding is disabled")
	}

	out := make([]byte, len(msg))
	chain := c.iv
	var block [blockSize]byte
	for i := 0; i < len(msg); i += blockSize {
		for j := 0; j < blockSize; j++ {
			block[j] = msg[i+j] ^ chain[j]
		}
		c.engine.Encrypt(out[i:i+blockSize], block[:])
		copy(chain[:], out[i:i+blockSize])
	}
	c.iv = chain
	return out, nil
}

// decryptCBC decrypts each ciphertext block and XORs it with the running
// chain value, then advances the chain to the ciphertext block just
// consumed. The chain is committed before the padding check, so a failed
// unpad still leaves the context's chaining state advanced — callers that
// need a clean slate after a failure must call Reset.
func (c *Context) decryptCBC(msg []byte) ([]byte, *CipherError) {
	if len(msg)%blockSize != 0 {
		return nil, newError(ErrLengthConstraint, "CBC decrypt requires a block-aligned message")
	}

	out := make([]byte, len(msg))
	chain := c.iv
	var plain [blockSize]byte
	for i := 0; i < len(msg); i += blockSize {
		c.engine.Decrypt(plain[:], msg[i:i+blockSize])
		for j := 0; j < blockSize; j++ {
			out[i+j] = plain[j] ^ chain[j]
		}
		copy(chain[:], msg[i:i+blockSize])
	}
	c.iv = chain

	if c.pkcs7Padding {
		return pkcs7Unpad(out)
	}
	return out, nil
}

package cipher

// encryptECB block-encrypts msg independently, one block at a time, with no
// chaining. ECB never synthesizes padding on encrypt, regardless of the
// padding flag (§4.3 scopes Pad to CBC only), and a non-block-aligned
// message is always rejected with ErrLengthConstraint.
func (c *Context) encryptECB(msg []byte) ([]byte, *CipherError) {
	if len(msg)%blockSize != 0 {
		return nil, newError(ErrLengthConstraint, "ECB encrypt requires a block-aligned message")
	}
	out := make([]byte, len(msg))
	for i := 0; i < len(msg); i += blockSize {
		c.engine.Encrypt(out[i:i+blockSize], msg[i:i+blockSize])
	}
	return out, nil
}

// decryptECB block-decrypts msg and, if padding is enabled, unpads the
// result. This rewrite follows spec.md's literal §4.2 text ("if padding
// enabled, unpad the final output") even though original_source/src/
// blowfish.c's blowfish_decrypt only calls unpad() in the CBC branch; see
// DESIGN.md for the resolution.
func (c *Context) decryptECB(msg []byte) ([]byte, *CipherError) {
	if len(msg)%blockSize != 0 {
		return nil, newError(ErrLengthConstraint, "ECB decrypt requires a block-aligned message")
	}
	out := make([]byte, len(msg))
	for i := 0; i < len(msg); i += blockSize {
		c.engine.Decrypt(out[i:i+blockSize], msg[i:i+blockSize])
	}
	if c.pkcs7Padding {
		return pkcs7Unpad(out)
	}
	return out, nil
}

package cipher

// encryptOFB and decryptOFB are the same operation: OFB XORs the message
// with a keystream derived by repeatedly re-encrypting the feedback
// register, independent of the message itself, so encryption and decryption
// are identical.
func (c *Context) encryptOFB(msg []byte) ([]byte, *CipherError) {
	return c.processOFB(msg), nil
}

func (c *Context) decryptOFB(msg []byte) ([]byte, *CipherError) {
	return c.processOFB(msg), nil
}

// processOFB consumes keystream bytes from the current block held in c.iv,
// tracked by c.count (0..blockSize), generating a fresh block whenever the
// cursor runs out.
func (c *Context) processOFB(msg []byte) []byte {
	out := make([]byte, len(msg))
	i := 0
	for i < len(msg) {
		remaining := len(msg) - i
		available := blockSize - c.count
		if remaining <= available {
			for j := 0; j < remaining; j++ {
				out[i+j] = msg[i+j] ^ c.iv[c.count+j]
			}
			c.count += remaining
			i += remaining
			continue
		}

		for j := 0; j < available; j++ {
			out[i+j] = msg[i+j] ^ c.iv[c.count+j]
		}
		i += available

		c.engine.Encrypt(c.iv[:], c.iv[:])
		c.count = 0
	}
	return out
}

package cipher

// pkcs7Pad appends p = blockSize - (len(msg) % blockSize) bytes, each equal
// to p, to msg. p is always in 1..blockSize: a block-aligned message still
// gains a full extra block.
func pkcs7Pad(msg []byte) []byte {
	p := blockSize - (len(msg) % blockSize)
	out := make([]byte, len(msg)+p)
	copy(out, msg)
	for i := len(msg); i < len(out); i++ {
		out[i] = byte(p)
	}
	return out
}

// pkcs7Unpad validates and strips PKCS#7 padding from buf. It fails if the
// last byte p is zero or at least len(buf) (p must leave at least one byte
// of message behind), or if any of the trailing p-1 bytes before it differ
// from p. The final byte itself is not re-checked.
func pkcs7Unpad(buf []byte) ([]byte, *CipherError) {
	if len(buf) == 0 {
		return nil, newError(ErrBadPadding, "empty buffer has no padding to remove")
	}
	p := int(buf[len(buf)-1])
	if p == 0 || p >= len(buf) {
		return nil, newError(ErrBadPadding, "padding byte out of range")
	}
	for i := len(buf) - p; i < len(buf)-1; i++ {
		if buf[i] != byte(p) {
			return nil, newError(ErrBadPadding, "inconsistent padding bytes")
		}
	}
	return buf[:len(buf)-p], nil
}

package cipher

// Encrypt transforms msg according to the Context's mode and padding
// setting, advancing the chaining state. A zero-length msg is a silent
// no-op in every mode — it returns (nil, nil) without consulting the
// padding flag, matching original_source/src/blowfish.c's msg_len == 0
// carve-out; no diagnostic is raised and no pad block is synthesized.
func (c *Context) Encrypt(msg []byte) ([]byte, error) {
	if len(msg) == 0 {
		return nil, nil
	}

	var out []byte
	var cerr *CipherError
	switch c.mode {
	case ModeECB:
		out, cerr = c.encryptECB(msg)
	case ModeCBC:
		out, cerr = c.encryptCBC(msg)
	case ModeCFB:
		out, cerr = c.encryptCFB(msg)
	case ModeOFB:
		out, cerr = c.encryptOFB(msg)
	default:
		cerr = newError(ErrUnsupportedMode, "context holds an invalid mode")
	}
	if cerr != nil {
		c.report(cerr)
		return nil, cerr
	}
	return out, nil
}

// Decrypt is the inverse of Encrypt. Like Encrypt, a zero-length msg is a
// silent no-op returning (nil, nil).
func (c *Context) Decrypt(msg []byte) ([]byte, error) {
	if len(msg) == 0 {
		return nil, nil
	}

	var out []byte
	var cerr *CipherError
	switch c.mode {
	case ModeECB:
		out, cerr = c.decryptECB(msg)
	case ModeCBC:
		out, cerr = c.decryptCBC(msg)
	case ModeCFB:
		out, cerr = c.decryptCFB(msg)
	case ModeOFB:
		out, cerr = c.decryptOFB(msg)
	default:
		cerr = newError(ErrUnsupportedMode, "context holds an invalid mode")
	}
	if cerr != nil {
		c.report(cerr)
		return nil, cerr
	}
	return out, nil
}

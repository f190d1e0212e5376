// Package blowfishcipher provides a pure Go implementation of the Blowfish
// block cipher together with ECB, CBC, CFB, and OFB chaining modes and
// optional PKCS#7 padding.
//
// # Installation
//
//	go get github.com/lihongjie0209/blowfish-cipher
//
// # CBC Encryption Example
//
//	import "github.com/lihongjie0209/blowfish-cipher/cipher"
//
//	ctx, err := cipher.New(key, iv, cipher.ModeCBC, 0)
//	if err != nil {
//	    // handle invalid key/iv
//	}
//	ciphertext, err := ctx.Encrypt(plaintext)
//	ctx.Reset()
//	recovered, err := ctx.Decrypt(ciphertext)
//
// # CFB With an Explicit Segment Size
//
//	ctx, err := cipher.New(key, iv, cipher.ModeCFB, 24)
//	ciphertext, err := ctx.Encrypt(plaintext)
//
// # Using the Block Primitive Directly
//
//	import "github.com/lihongjie0209/blowfish-cipher/blowfish"
//
//	engine, err := blowfish.NewCipher(key)
//	dst := make([]byte, blowfish.BlockSize)
//	engine.Encrypt(dst, src)
//
// # Command-Line Driver
//
// The cmd/bfcli package wraps this module with a cobra-based CLI that
// hex-decodes a key/iv pair and a message and prints hex output; see
// `bfcli encrypt --help`.
package blowfishcipher

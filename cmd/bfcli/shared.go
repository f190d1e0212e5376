package main

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	bfcipher "github.com/lihongjie0209/blowfish-cipher/cipher"
)

// commonFlags are the flags shared by encrypt and decrypt: key material,
// mode selection, and the two knobs that change its interpretation.
type commonFlags struct {
	keyHex    string
	ivHex     string
	mode      string
	segment   int
	noPadding bool
}

func addCommonFlags(cmd *cobra.Command, f *commonFlags) {
	cmd.Flags().StringVar(&f.keyHex, "key", "", "hex-encoded key (4..56 bytes)")
	cmd.Flags().StringVar(&f.ivHex, "iv", "", "hex-encoded IV (8 bytes; omit for ECB)")
	cmd.Flags().StringVar(&f.mode, "mode", "CBC", "chaining mode: CBC, CFB, CTR, ECB, OFB")
	cmd.Flags().IntVar(&f.segment, "segment-size", 0, "CFB segment size in bits (8..64, multiple of 8; 0 = default)")
	cmd.Flags().BoolVar(&f.noPadding, "no-padding", false, "disable PKCS#7 padding")
	_ = cmd.MarkFlagRequired("key")
}

// buildContext parses f's hex fields and constructs a cipher.Context ready
// for a single Encrypt or Decrypt call.
func buildContext(f *commonFlags) (*bfcipher.Context, error) {
	key, err := hex.DecodeString(f.keyHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --key hex")
	}

	var iv []byte
	if f.ivHex != "" {
		iv, err = hex.DecodeString(f.ivHex)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --iv hex")
		}
	}

	mode, err := bfcipher.ParseMode(f.mode)
	if err != nil {
		return nil, err
	}

	ctx, err := bfcipher.New(key, iv, mode, f.segment)
	if err != nil {
		return nil, err
	}
	if f.noPadding {
		ctx.SetPKCS7Padding(false)
	}
	return ctx, nil
}

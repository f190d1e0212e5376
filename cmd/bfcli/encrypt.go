package main

import (
	"encoding/hex"

	"github.com/spf13/cobra"
)

var encryptFlags commonFlags

var encryptCmd = &cobra.Command{
	Use:   "encrypt [hex-plaintext]",
	Short: "Encrypt a hex-encoded message and print hex ciphertext",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}

		ctx, err := buildContext(&encryptFlags)
		if err != nil {
			return err
		}

		out, err := ctx.Encrypt(plain)
		if err != nil {
			return err
		}

		cmd.Println(hex.EncodeToString(out))
		return nil
	},
}

func init() {
	addCommonFlags(encryptCmd, &encryptFlags)
}

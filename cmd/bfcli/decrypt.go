package main

import (
	"encoding/hex"

	"github.com/spf13/cobra"
)

var decryptFlags commonFlags

var decryptCmd = &cobra.Command{
	Use:   "decrypt [hex-ciphertext]",
	Short: "Decrypt a hex-encoded message and print hex plaintext",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ciphertext, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}

		ctx, err := buildContext(&decryptFlags)
		if err != nil {
			return err
		}

		out, err := ctx.Decrypt(ciphertext)
		if err != nil {
			return err
		}

		cmd.Println(hex.EncodeToString(out))
		return nil
	},
}

func init() {
	addCommonFlags(decryptCmd, &decryptFlags)
}

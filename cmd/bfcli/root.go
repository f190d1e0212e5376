package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bfcli",
	Short: "Blowfish block cipher command-line driver",
	Long: `bfcli drives the Blowfish cipher engine from the command line: hex-encoded
key/iv and message in, hex-encoded ciphertext/plaintext out. Mode labels are
CBC, CFB, CTR, ECB, OFB; CTR is recognised but rejected.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
}

// Execute runs the root command, printing any error to stderr and setting
// a non-zero exit code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

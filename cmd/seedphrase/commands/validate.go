package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"seedphrase/internal/util/memzero"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [word...]",
		Short: "Check a mnemonic's words and checksum, printing its entropy",
		Long: "Validate decodes a mnemonic given as arguments (or one line on " +
			"stdin) and reports the recovered entropy, or why the mnemonic " +
			"is not valid.",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := readWords(args)
			if err != nil {
				return err
			}

			entropy, err := codec.Decode(words)
			if err != nil {
				return err
			}
			defer memzero.Zero(entropy)

			fmt.Printf("Valid %d-word mnemonic.\nEntropy: %s\n",
				len(words), hex.EncodeToString(entropy))
			return nil
		},
	}
}

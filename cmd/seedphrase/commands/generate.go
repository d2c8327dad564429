package commands

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seedphrase/internal/util/memzero"
)

func generateCmd() *cobra.Command {
	var bits int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh mnemonic from system entropy",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch bits {
			case 128, 160, 192, 224, 256:
			default:
				return fmt.Errorf("--bits must be one of 128, 160, 192, 224, 256")
			}

			entropy := make([]byte, bits/8)
			if _, err := rand.Read(entropy); err != nil {
				return err
			}
			defer memzero.Zero(entropy)

			words, err := codec.Encode(entropy)
			if err != nil {
				return err
			}
			fmt.Println(strings.Join(words, " "))
			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 128, "entropy size in bits")
	return cmd
}

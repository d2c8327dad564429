package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"seedphrase/internal/seed"
	"seedphrase/internal/util/memzero"
)

func seedCmd() *cobra.Command {
	var (
		passphrase string
		ask        bool
		standard   bool
		skipCheck  bool
	)

	cmd := &cobra.Command{
		Use:   "seed [word...]",
		Short: "Derive the 64-byte wallet seed from a mnemonic",
		Long: "Seed stretches a mnemonic and optional passphrase into wallet " +
			"seed material. The default derivation is the iterated " +
			"HMAC-SHA512 stretch used by Wallet32-era software; --standard " +
			"selects the PBKDF2 derivation from the final BIP-39 spec.",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := readWords(args)
			if err != nil {
				return err
			}

			// Derivation itself accepts any words; checksum validation is
			// the codec's job and stays on by default.
			if !skipCheck {
				entropy, err := codec.Decode(words)
				if err != nil {
					return fmt.Errorf("mnemonic check: %w", err)
				}
				memzero.Zero(entropy)
			}

			if ask {
				passphrase, err = readPassphrase()
				if err != nil {
					return err
				}
			}

			var s []byte
			if standard {
				s = seed.Standard(words, passphrase)
			} else {
				s = seed.Derive(words, passphrase)
			}
			defer memzero.Zero(s)

			fmt.Println(hex.EncodeToString(s))
			return nil
		},
	}

	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "seed passphrase")
	cmd.Flags().BoolVar(&ask, "ask", false, "prompt for the passphrase without echo")
	cmd.Flags().BoolVar(&standard, "standard", false, "use the PBKDF2 derivation from final BIP-39")
	cmd.Flags().BoolVar(&skipCheck, "skip-check", false, "derive without validating the mnemonic checksum")
	return cmd
}

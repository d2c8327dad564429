package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seedphrase/internal/wordlist"
)

func wordlistCmd() *cobra.Command {
	var (
		checkPath string
		digest    string
	)

	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Show or verify wordlist integrity",
		Long: "Wordlist prints the size and digest of the built-in English " +
			"list. With --check it loads an external list instead, failing " +
			"if it does not contain exactly 2048 words or does not match " +
			"--digest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := list
			if checkPath != "" {
				f, err := os.Open(checkPath)
				if err != nil {
					return err
				}
				defer f.Close()
				l, err = wordlist.Load(f, digest)
				if err != nil {
					return err
				}
			}
			fmt.Printf("Words:  %d\nDigest: %s\n", l.Len(), l.Digest())
			return nil
		},
	}

	cmd.Flags().StringVar(&checkPath, "check", "", "verify a wordlist file instead of the built-in list")
	cmd.Flags().StringVar(&digest, "digest", "", "expected SHA-256 digest (lowercase hex) for --check")
	return cmd
}

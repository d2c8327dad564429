package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seedphrase/internal/mnemonic"
	"seedphrase/internal/wordlist"
)

var (
	list  *wordlist.List
	codec *mnemonic.Codec
)

func Execute() error {
	root := &cobra.Command{
		Use:           "seedphrase",
		Short:         "BIP-39 mnemonic and wallet seed tool",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			list = wordlist.English()
			codec = mnemonic.New(list)
		},
	}

	root.AddCommand(generateCmd(), validateCmd(), seedCmd(), wordlistCmd())
	return root.Execute()
}

// readWords returns the mnemonic from args, or from one line of stdin when
// no args are given.
func readWords(args []string) ([]string, error) {
	if len(args) > 0 {
		// A single quoted sentence is as good as separate word args.
		return strings.Fields(strings.Join(args, " ")), nil
	}
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("no mnemonic given")
	}
	return strings.Fields(sc.Text()), nil
}

// readPassphrase prompts on stderr and reads without echo.
func readPassphrase() (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("--ask requires a terminal; use --passphrase instead")
	}
	fmt.Fprint(os.Stderr, "Passphrase (empty for none): ")
	p, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(p), nil
}

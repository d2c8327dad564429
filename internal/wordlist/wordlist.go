package wordlist

import (
	"bufio"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Words is the number of entries every valid list must contain. Each word
// encodes 11 bits, so the list length is fixed at 2^11.
const Words = 2048

// EnglishDigest is the SHA-256 of the canonical English list's concatenated
// word bytes (no separators, file order), in lowercase hex.
const EnglishDigest = "ad90bf3beb7b0eb7e5acd74727dc0da96e0a280a258354e7293fb7e211ac03db"

//go:embed english.txt
var englishData string

// ErrIntegrity is returned when a wordlist fails its count or digest check.
// Load never returns a partial list.
var ErrIntegrity = fmt.Errorf("wordlist integrity check failed")

// List is an immutable, ordered catalogue of exactly 2048 words, sorted
// ascending. Once constructed it is read-only and safe for concurrent use.
type List struct {
	words  [Words]string
	digest string
}

// Load reads a wordlist from r, one UTF-8 word per line, accumulating a
// SHA-256 digest over the raw bytes of each word as read (line delimiters
// excluded). It fails with an error wrapping ErrIntegrity if the list does
// not contain exactly 2048 words, or if expectedDigestHex is non-empty and
// does not match the computed lowercase-hex digest.
func Load(r io.Reader, expectedDigestHex string) (*List, error) {
	h := sha256.New()
	l := &List{}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		word := sc.Text()
		if n < Words {
			l.words[n] = word
		}
		h.Write([]byte(word))
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	if n != Words {
		return nil, fmt.Errorf("%w: want %d words, got %d", ErrIntegrity, Words, n)
	}

	l.digest = hex.EncodeToString(h.Sum(nil))
	if expectedDigestHex != "" && l.digest != expectedDigestHex {
		return nil, fmt.Errorf("%w: digest %s does not match expected %s",
			ErrIntegrity, l.digest, expectedDigestHex)
	}
	return l, nil
}

var (
	englishOnce sync.Once
	english     *List
)

// English returns the canonical English list, verified against
// EnglishDigest. The list is embedded in the binary, so failure here means
// the binary itself is corrupt; English panics rather than returning an
// error.
func English() *List {
	englishOnce.Do(func() {
		l, err := Load(strings.NewReader(englishData), EnglishDigest)
		if err != nil {
			panic(fmt.Sprintf("embedded english wordlist: %v", err))
		}
		english = l
	})
	return english
}

// Lookup returns the index of word via binary search. The second return is
// false if word is not in the list. Matching is exact and case-sensitive.
func (l *List) Lookup(word string) (int, bool) {
	i := sort.SearchStrings(l.words[:], word)
	if i < Words && l.words[i] == word {
		return i, true
	}
	return 0, false
}

// WordAt returns the word at index i. i must be in [0, 2047]; anything else
// is a programming error and panics.
func (l *List) WordAt(i int) string {
	return l.words[i]
}

// Digest returns the lowercase-hex SHA-256 identity of the list, computed
// over its concatenated word bytes at load time.
func (l *List) Digest() string { return l.digest }

// Len returns the number of words, always 2048 for a constructed list.
func (l *List) Len() int { return Words }

package mnemonic

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"seedphrase/internal/wordlist"
)

// indexBits is the number of bits encoded by one word.
const indexBits = 11

var (
	// ErrInvalidLength is returned when entropy is not a whole multiple of
	// 32 bits, or a mnemonic is not a whole multiple of 3 words.
	ErrInvalidLength = errors.New("invalid length")

	// ErrChecksumMismatch is returned when a mnemonic's embedded checksum
	// does not match the checksum recomputed from its entropy. The mnemonic
	// is corrupt or mistyped.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// UnknownWordError reports the first mnemonic token that is not in the
// wordlist. Decoding stops at the first unresolved word.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q", e.Word)
}

// Codec converts between entropy and mnemonic sentences over a fixed
// wordlist. Both operations are pure; a Codec holds no mutable state and is
// safe for concurrent use.
type Codec struct {
	list *wordlist.List
}

// New returns a Codec backed by list.
func New(list *wordlist.List) *Codec {
	return &Codec{list: list}
}

// Encode converts entropy to an ordered mnemonic sentence.
//
// The entropy bit length must be a multiple of 32; otherwise Encode fails
// with ErrInvalidLength. The first len(entropy)*8/32 bits of
// SHA-256(entropy) are appended as a checksum, and the concatenation is
// split into 11-bit groups, each indexing the wordlist MSB-first. Word
// order is position-significant.
func (c *Codec) Encode(entropy []byte) ([]string, error) {
	entropyBitLen := len(entropy) * 8
	if entropyBitLen%32 != 0 {
		return nil, fmt.Errorf("%w: entropy is %d bits, want a multiple of 32",
			ErrInvalidLength, entropyBitLen)
	}

	hash := sha256.Sum256(entropy)
	checksumBitLen := entropyBitLen / 32

	concat := appendBits(nil, entropy, entropyBitLen)
	concat = appendBits(concat, hash[:], checksumBitLen)

	words := make([]string, 0, len(concat)/indexBits)
	for i := 0; i+indexBits <= len(concat); i += indexBits {
		ndx := 0
		for _, bit := range concat[i : i+indexBits] {
			ndx <<= 1
			if bit {
				ndx |= 1
			}
		}
		words = append(words, c.list.WordAt(ndx))
	}
	return words, nil
}

// Decode validates a mnemonic and recovers its entropy.
//
// The word count must be a multiple of 3 (ErrInvalidLength). Each word is
// resolved against the wordlist in order; the first miss aborts with an
// *UnknownWordError naming the token. The trailing concatLen/33 bits are
// the checksum (floor division; every count divisible by 3 splits cleanly)
// and must match the first bits of SHA-256 over the recovered entropy, or
// Decode fails with ErrChecksumMismatch.
func (c *Codec) Decode(words []string) ([]byte, error) {
	if len(words)%3 != 0 {
		return nil, fmt.Errorf("%w: mnemonic is %d words, want a multiple of 3",
			ErrInvalidLength, len(words))
	}

	concat := make([]bool, 0, len(words)*indexBits)
	for _, word := range words {
		ndx, ok := c.list.Lookup(word)
		if !ok {
			return nil, &UnknownWordError{Word: word}
		}
		for bit := indexBits - 1; bit >= 0; bit-- {
			concat = append(concat, ndx&(1<<bit) != 0)
		}
	}

	checksumBitLen := len(concat) / 33
	entropyBitLen := len(concat) - checksumBitLen

	entropy := make([]byte, entropyBitLen/8)
	for i, bit := range concat[:entropyBitLen] {
		if bit {
			entropy[i/8] |= 1 << (7 - i%8)
		}
	}

	hash := sha256.Sum256(entropy)
	checksum := appendBits(nil, hash[:], checksumBitLen)
	for i, bit := range concat[entropyBitLen:] {
		if bit != checksum[i] {
			return nil, ErrChecksumMismatch
		}
	}
	return entropy, nil
}

// appendBits appends the first n bits of data to dst, MSB-first per byte.
func appendBits(dst []bool, data []byte, n int) []bool {
	for i := 0; i < n; i++ {
		dst = append(dst, data[i/8]&(1<<(7-i%8)) != 0)
	}
	return dst
}

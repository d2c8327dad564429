package mnemonic_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"seedphrase/internal/mnemonic"
	"seedphrase/internal/wordlist"
)

func newCodec(t *testing.T) *mnemonic.Codec {
	t.Helper()
	return mnemonic.New(wordlist.English())
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// Published BIP-39 vectors for the English list.
var encodeVectors = []struct {
	entropy  string
	mnemonic string
}{
	{
		"00000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	},
	{
		"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		"legal winner thank year wave sausage worth useful legal winner thank yellow",
	},
	{
		"80808080808080808080808080808080",
		"letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
	},
	{
		"ffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
	},
	{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
	},
	{
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote",
	},
	{
		"9e885d952ad362caeb4efe34a8e91bd2",
		"ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic",
	},
}

func TestEncodeVectors(t *testing.T) {
	c := newCodec(t)
	for _, tc := range encodeVectors {
		words, err := c.Encode(mustHex(t, tc.entropy))
		if err != nil {
			t.Errorf("Encode(%s): %v", tc.entropy, err)
			continue
		}
		if got := strings.Join(words, " "); got != tc.mnemonic {
			t.Errorf("Encode(%s) = %q, want %q", tc.entropy, got, tc.mnemonic)
		}
	}
}

func TestDecodeVectors(t *testing.T) {
	c := newCodec(t)
	for _, tc := range encodeVectors {
		entropy, err := c.Decode(strings.Fields(tc.mnemonic))
		if err != nil {
			t.Errorf("Decode(%q): %v", tc.mnemonic, err)
			continue
		}
		if got := hex.EncodeToString(entropy); got != tc.entropy {
			t.Errorf("Decode(%q) = %s, want %s", tc.mnemonic, got, tc.entropy)
		}
	}
}

func TestRoundTripStandardSizes(t *testing.T) {
	c := newCodec(t)
	wantWords := map[int]int{16: 12, 20: 15, 24: 18, 28: 21, 32: 24}

	for size, nWords := range wantWords {
		entropy := make([]byte, size)
		if _, err := rand.Read(entropy); err != nil {
			t.Fatalf("rand: %v", err)
		}
		words, err := c.Encode(entropy)
		if err != nil {
			t.Fatalf("Encode(%d bytes): %v", size, err)
		}
		if len(words) != nWords {
			t.Fatalf("Encode(%d bytes) = %d words, want %d", size, len(words), nWords)
		}
		back, err := c.Decode(words)
		if err != nil {
			t.Fatalf("Decode round-trip (%d bytes): %v", size, err)
		}
		if !bytes.Equal(back, entropy) {
			t.Fatalf("round-trip (%d bytes): entropy changed", size)
		}
	}
}

// Decode's checksum split is permissive: any word count divisible by 3
// splits cleanly at concatLen/33, so non-standard entropy sizes round-trip
// as well.
func TestRoundTripNonStandardSizes(t *testing.T) {
	c := newCodec(t)
	for _, size := range []int{4, 8, 12} {
		entropy := make([]byte, size)
		if _, err := rand.Read(entropy); err != nil {
			t.Fatalf("rand: %v", err)
		}
		words, err := c.Encode(entropy)
		if err != nil {
			t.Fatalf("Encode(%d bytes): %v", size, err)
		}
		if len(words) != size*3/4 {
			t.Fatalf("Encode(%d bytes) = %d words, want %d", size, len(words), size*3/4)
		}
		back, err := c.Decode(words)
		if err != nil {
			t.Fatalf("Decode round-trip (%d bytes): %v", size, err)
		}
		if !bytes.Equal(back, entropy) {
			t.Fatalf("round-trip (%d bytes): entropy changed", size)
		}
	}
}

func TestEncodeRejectsBadEntropyLength(t *testing.T) {
	c := newCodec(t)
	for _, size := range []int{1, 15, 17, 33} {
		_, err := c.Encode(make([]byte, size))
		if !errors.Is(err, mnemonic.ErrInvalidLength) {
			t.Errorf("Encode(%d bytes): err = %v, want ErrInvalidLength", size, err)
		}
	}
}

func TestDecodeRejectsBadWordCount(t *testing.T) {
	c := newCodec(t)
	words := make([]string, 13)
	for i := range words {
		words[i] = "abandon"
	}
	_, err := c.Decode(words)
	if !errors.Is(err, mnemonic.ErrInvalidLength) {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestDecodeReportsFirstUnknownWord(t *testing.T) {
	c := newCodec(t)
	words := strings.Fields(
		"abandon abandon abandon plutonium abandon abandon abandon xylophone abandon abandon abandon about",
	)
	_, err := c.Decode(words)
	var unknown *mnemonic.UnknownWordError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *UnknownWordError", err)
	}
	if unknown.Word != "plutonium" {
		t.Fatalf("reported word %q, want %q (first failure)", unknown.Word, "plutonium")
	}
}

func TestDecodeChecksumSensitivity(t *testing.T) {
	c := newCodec(t)
	base := strings.Fields(
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	)
	// One replacement per position, each chosen to break the checksum (a
	// blindly chosen replacement can collide on the 4 checksum bits).
	replacements := []string{
		"ability", "able", "ability", "ability", "ability", "ability",
		"ability", "ability", "ability", "ability", "ability", "above",
	}
	for i, repl := range replacements {
		words := append([]string(nil), base...)
		words[i] = repl
		_, err := c.Decode(words)
		if !errors.Is(err, mnemonic.ErrChecksumMismatch) {
			t.Errorf("position %d replaced with %q: err = %v, want ErrChecksumMismatch",
				i, repl, err)
		}
	}
}

func TestDecodeRejectsAllAbandon(t *testing.T) {
	c := newCodec(t)
	words := make([]string, 12)
	for i := range words {
		words[i] = "abandon"
	}
	_, err := c.Decode(words)
	if !errors.Is(err, mnemonic.ErrChecksumMismatch) {
		t.Fatalf("err = %v, want ErrChecksumMismatch", err)
	}
}

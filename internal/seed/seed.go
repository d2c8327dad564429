package seed

import (
	"crypto/hmac"
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Rounds is the number of HMAC-SHA512 iterations in the legacy stretch.
	Rounds = 10000

	// Size is the seed length in bytes.
	Size = 64

	// saltPrefix is prepended to the passphrase to form the HMAC key
	// (legacy stretch) or PBKDF2 salt (standard derivation).
	saltPrefix = "mnemonic"

	// standardIterations is the PBKDF2 iteration count fixed by BIP-39.
	standardIterations = 2048
)

// Derive stretches a mnemonic and optional passphrase into a 64-byte seed.
//
// The key is "mnemonic"+passphrase and the initial message is the words
// joined by single ASCII spaces. The message is replaced by
// HMAC-SHA512(key, message) for exactly 10000 rounds; the final 64 bytes
// are the seed. Each round consumes the previous round's full output, so
// the loop is inherently sequential; the call is CPU-bound and should be
// treated as one unit of work.
//
// Derive performs no validation: any word sequence and passphrase produce
// a seed. Callers wanting checksum guarantees validate through the mnemonic
// codec first.
func Derive(words []string, passphrase string) []byte {
	key := []byte(saltPrefix + passphrase)
	msg := []byte(strings.Join(words, " "))

	for i := 0; i < Rounds; i++ {
		mac := hmac.New(sha512.New, key)
		mac.Write(msg)
		msg = mac.Sum(msg[:0])
	}
	return msg
}

// Standard derives the seed defined by published BIP-39:
// PBKDF2-HMAC-SHA512 with 2048 iterations, the sentence as password and
// "mnemonic"+passphrase as salt. Use this for interoperability with wallets
// that follow the final specification; Derive is the stretch used by the
// original Wallet32-era software.
func Standard(words []string, passphrase string) []byte {
	sentence := []byte(strings.Join(words, " "))
	return pbkdf2.Key(sentence, []byte(saltPrefix+passphrase), standardIterations, Size, sha512.New)
}

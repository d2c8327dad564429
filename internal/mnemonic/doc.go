// Package mnemonic implements the BIP-39 conversion between raw entropy and
// mnemonic sentences, including checksum validation on decode.
package mnemonic

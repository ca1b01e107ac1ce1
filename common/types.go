// Package common holds the small, dependency-free value types (addresses,
// hashes) shared by every package in this module.
package common

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the expected length of an Ethereum account address.
const AddressLength = 20

// HashLength is the expected length of an Ethereum hash (block hash,
// transaction hash, storage key, ...).
const HashLength = 32

// Address represents the 20-byte address of an Ethereum account.
type Address [AddressLength]byte

// Hash represents a 32-byte Keccak256 hash.
type Hash [HashLength]byte

// HexToAddress returns Address with byte values of s, left-padded with
// zeroes or truncated from the left if s is too long.
func HexToAddress(s string) Address {
	return BytesToAddress(fromHex(s))
}

// HexToHash returns Hash with byte values of s, left-padded with zeroes or
// truncated from the left if s is too long.
func HexToHash(s string) Hash {
	var h Hash
	b := fromHex(s)
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

func fromHex(s string) []byte {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

// Hex returns an EIP-55-agnostic lowercase 0x-prefixed hex encoding.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (a Address) String() string { return a.Hex() }
func (h Hash) String() string    { return h.Hex() }

// IsZero reports whether the address is the zero address.
func (a Address) IsZero() bool { return a == Address{} }

// Bytes returns the raw address bytes.
func (a Address) Bytes() []byte { return a[:] }

// Bytes returns the raw hash bytes.
func (h Hash) Bytes() []byte { return h[:] }

// BytesToAddress converts b to an Address, left-padding or truncating as
// needed, matching HexToAddress's semantics for raw bytes.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// GoString implements fmt.GoStringer for friendlier test failure output.
func (a Address) GoString() string { return fmt.Sprintf("common.HexToAddress(%q)", a.Hex()) }
func (h Hash) GoString() string    { return fmt.Sprintf("common.HexToHash(%q)", h.Hex()) }

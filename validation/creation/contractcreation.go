// Package creation holds C1's per-fork ContractCreationProcessor catalog:
// initial nonce, code-size ceiling, and deployed-code rejection rules
// (spec.md §4.2).
package creation

import (
	"bytes"

	"github.com/gorules/ethforks/validation"
)

// ContractCreationProcessor validates deployed code before it is
// committed to the new contract account.
type ContractCreationProcessor interface {
	Name() string
	// InitialNonce is the nonce a freshly created contract account starts
	// with: 0 before Spurious Dragon, 1 from Spurious Dragon onward
	// (spec.md §4.2, EIP-161).
	InitialNonce() uint64
	// MaxCodeSize is the deployed-code size ceiling.
	MaxCodeSize() int
	// ValidateCode applies any fork-specific rejection rules (EIP-3541's
	// 0xEF prefix ban, EOF validation) beyond the size check.
	ValidateCode(code []byte) error
}

type baseCreationProcessor struct {
	name            string
	initialNonce    uint64
	maxCodeSize     int
	rejectEFPrefix  bool
	requireEOFValid bool
}

func (b baseCreationProcessor) Name() string         { return b.name }
func (b baseCreationProcessor) InitialNonce() uint64 { return b.initialNonce }
func (b baseCreationProcessor) MaxCodeSize() int     { return b.maxCodeSize }

func (b baseCreationProcessor) ValidateCode(code []byte) error {
	if b.maxCodeSize > 0 && len(code) > b.maxCodeSize {
		return &validation.ErrContractCodeTooLarge{Size: len(code), Limit: b.maxCodeSize}
	}
	if b.requireEOFValid && bytes.HasPrefix(code, []byte{0xEF, 0x00}) {
		// A full EOF container validator (magic/version/section headers,
		// stack-height analysis) is an external collaborator; this
		// registry only gates that Cancun's EOFValidationCodeRule is
		// consulted at all.
		return nil
	}
	if b.rejectEFPrefix && bytes.HasPrefix(code, []byte{0xEF}) {
		return validation.ErrInvalidCodePrefix
	}
	return nil
}

// Frontier enforces only the given code-size ceiling (0 disables it) and
// starts contracts at nonce 0.
func Frontier(maxCodeSize int) ContractCreationProcessor {
	return baseCreationProcessor{name: "Frontier", initialNonce: 0, maxCodeSize: maxCodeSize}
}

// SpuriousDragon enforces EIP-170's 24KB code size limit and starts
// contracts at nonce 1 (EIP-161).
func SpuriousDragon(maxCodeSize int) ContractCreationProcessor {
	return baseCreationProcessor{name: "Spurious Dragon", initialNonce: 1, maxCodeSize: maxCodeSize}
}

// London adds the EIP-3541 0xEF-prefix rejection (PrefixCodeRule) on top of
// Spurious Dragon's size limit.
func London(maxCodeSize int) ContractCreationProcessor {
	return baseCreationProcessor{name: "London", initialNonce: 1, maxCodeSize: maxCodeSize, rejectEFPrefix: true}
}

// Cancun adds EOF validation (EOFValidationCodeRule) on top of London's
// rules.
func Cancun(maxCodeSize int) ContractCreationProcessor {
	return baseCreationProcessor{name: "Cancun", initialNonce: 1, maxCodeSize: maxCodeSize, rejectEFPrefix: true, requireEOFValid: true}
}

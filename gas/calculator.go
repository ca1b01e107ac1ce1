// Package gas holds C1's gas-rule catalog: one named, pure GasCalculator
// per fork. Each fork's type embeds its predecessor's Schedule and
// overrides only the fields spec.md §4.2 lists as changed; opcode dispatch
// itself is an external collaborator (spec.md §1) — this package only
// hands out the cost table.
package gas

// Schedule is the pure-value gas-cost table a GasCalculator exposes.
type Schedule struct {
	TxGas                 uint64
	TxGasContractCreation uint64
	TxDataZeroGas         uint64
	TxDataNonZeroGas      uint64

	CreateGas      uint64
	CreateDataGas  uint64 // per byte of init code executed
	CodeDepositGas uint64 // per byte of deployed code

	SloadGas          uint64
	SstoreSetGas      uint64
	SstoreResetGas    uint64
	SstoreClearRefund uint64
	SstoreNetMetering bool // EIP-1283/2200 semantics active

	CallGas              uint64
	CallValueTransferGas uint64
	CallNewAccountGas    uint64

	ExtcodeSizeGas uint64
	ExtcodeCopyGas uint64
	ExtcodeHashGas uint64
	BalanceGas     uint64

	ColdAccountAccessCost uint64 // EIP-2929
	WarmStorageReadCost   uint64 // EIP-2929
	ColdSloadCost         uint64 // EIP-2929

	AccessListAddressCost    uint64 // EIP-2930
	AccessListStorageKeyCost uint64 // EIP-2930

	InitCodeWordGas uint64 // EIP-3860, Shanghai onward

	ExpGas     uint64
	ExpByteGas uint64
}

// GasCalculator is C1's named factory reference for a fork's gas rules.
type GasCalculator interface {
	Name() string
	Schedule() Schedule

	// CodeDepositCost returns the gas to charge for depositing `size` bytes
	// of contract code, and whether a failed deposit (insufficient
	// remaining gas) aborts contract creation. Frontier tolerates the
	// failure (legacy semantics, spec.md §4.2); Homestead onward aborts.
	CodeDepositCost(size int) (cost uint64, failsOnInsufficientGas bool)
}

// base is embedded by every fork's calculator and implements the parts of
// GasCalculator common to all of them.
type base struct {
	name     string
	schedule Schedule
}

func (b base) Name() string       { return b.name }
func (b base) Schedule() Schedule { return b.schedule }

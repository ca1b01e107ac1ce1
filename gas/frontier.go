package gas

// Frontier is the original mainnet gas schedule.
var Frontier = frontierCalculator{base{
	name: "Frontier",
	schedule: Schedule{
		TxGas:                 21000,
		TxGasContractCreation: 21000,
		TxDataZeroGas:         4,
		TxDataNonZeroGas:      68,
		CreateGas:             32000,
		CreateDataGas:         200,
		CodeDepositGas:        200,
		SloadGas:              50,
		SstoreSetGas:          20000,
		SstoreResetGas:        5000,
		SstoreClearRefund:     15000,
		CallGas:               40,
		CallValueTransferGas:  9000,
		CallNewAccountGas:     25000,
		ExtcodeSizeGas:        20,
		ExtcodeCopyGas:        20,
		BalanceGas:            20,
		ExpGas:                10,
		ExpByteGas:            10,
	},
}}

type frontierCalculator struct{ base }

// CodeDepositCost implements the Frontier legacy bug: a creation
// transaction that runs out of gas while depositing code still succeeds,
// simply leaving the account with no code (spec.md §4.2: "no
// code-deposit-cost-overflow failure").
func (frontierCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * Frontier.schedule.CodeDepositGas, false
}

package gas

// Homestead raises the contract-creation transaction base cost and, per
// spec.md §4.2, makes a code-deposit failure abort the whole creation
// instead of silently leaving an empty account.
var Homestead = homesteadCalculator{base{
	name: "Homestead",
	schedule: func() Schedule {
		s := Frontier.schedule
		s.TxGasContractCreation = 53000
		return s
	}(),
}}

type homesteadCalculator struct{ base }

func (c homesteadCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

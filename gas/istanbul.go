package gas

// Istanbul applies EIP-1884's repricing (SLOAD/BALANCE/EXTCODEHASH) and
// restores SSTORE net metering under EIP-2200's safer gas-stipend rule.
var Istanbul = istanbulCalculator{base{
	name: "Istanbul",
	schedule: func() Schedule {
		s := Petersburg.schedule
		s.SloadGas = 800
		s.BalanceGas = 700
		s.ExtcodeHashGas = 700
		s.SstoreNetMetering = true
		return s
	}(),
}}

type istanbulCalculator struct{ base }

func (c istanbulCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

package gas

// Petersburg reverts EIP-1283's net gas metering (the security issue that
// forced Constantinople's emergency postponement) while keeping every other
// Constantinople change.
var Petersburg = petersburgCalculator{base{
	name: "Petersburg",
	schedule: func() Schedule {
		s := Constantinople.schedule
		s.SstoreNetMetering = false
		return s
	}(),
}}

type petersburgCalculator struct{ base }

func (c petersburgCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

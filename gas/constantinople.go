package gas

// Constantinople enables EIP-1283 SSTORE net gas metering.
var Constantinople = constantinopleCalculator{base{
	name: "Constantinople",
	schedule: func() Schedule {
		s := Byzantium.schedule
		s.SstoreNetMetering = true
		s.SstoreResetGas = 5000
		s.SstoreClearRefund = 15000
		return s
	}(),
}}

type constantinopleCalculator struct{ base }

func (c constantinopleCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

package gas

// London's consensus-relevant gas change is EIP-3529's reduced SSTORE/
// SELFDESTRUCT refunds, expressed here as a lower clear-refund; the rest of
// London's impact (base fee market, EIP-3541) lives in feemarket and
// validation.
var London = londonCalculator{base{
	name: "London",
	schedule: func() Schedule {
		s := Berlin.schedule
		s.SstoreClearRefund = 4800 // EIP-3529
		return s
	}(),
}}

type londonCalculator struct{ base }

func (c londonCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

package gas

// Cancun's gas-calculator delta is entirely the blob-gas dimension
// (EIP-4844); everything below EIP-4844 is unchanged from Shanghai.
// Blob gas itself is priced by feemarket.Cancun, not Schedule,
// since it is a second, independent gas dimension rather than an execution
// gas cost.
var Cancun = cancunCalculator{base{
	name:     "Cancun",
	schedule: Shanghai.schedule,
}}

type cancunCalculator struct{ base }

func (c cancunCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

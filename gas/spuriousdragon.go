package gas

// SpuriousDragon inherits Tangerine Whistle's gas schedule unchanged; its
// deltas (contract size limit, EIP-155/158/160) live in validation and
// precompile, not here.
var SpuriousDragon = spuriousDragonCalculator{base{
	name:     "Spurious Dragon",
	schedule: TangerineWhistle.schedule,
}}

type spuriousDragonCalculator struct{ base }

func (c spuriousDragonCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

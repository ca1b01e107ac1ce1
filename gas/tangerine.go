package gas

// TangerineWhistle applies EIP-150's repricing of I/O-heavy opcodes.
var TangerineWhistle = tangerineCalculator{base{
	name: "Tangerine Whistle",
	schedule: func() Schedule {
		s := Homestead.schedule
		s.SloadGas = 200
		s.CallGas = 700
		s.ExtcodeSizeGas = 700
		s.ExtcodeCopyGas = 700
		s.BalanceGas = 400
		return s
	}(),
}}

type tangerineCalculator struct{ base }

func (c tangerineCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

package gas

// Shanghai meters init code per EIP-3860, charging a per-word surcharge on
// top of the CREATE/CREATE2 base cost for the init code a creation
// transaction or CREATE2 supplies.
var Shanghai = shanghaiCalculator{base{
	name: "Shanghai",
	schedule: func() Schedule {
		s := London.schedule // Paris/Arrow/Gray Glacier left gas untouched
		s.InitCodeWordGas = 2
		return s
	}(),
}}

type shanghaiCalculator struct{ base }

func (c shanghaiCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

package gas

// Berlin introduces EIP-2929 cold/warm state access accounting and
// EIP-2930 access-list transactions.
var Berlin = berlinCalculator{base{
	name: "Berlin",
	schedule: func() Schedule {
		s := Istanbul.schedule
		s.ColdAccountAccessCost = 2600
		s.ColdSloadCost = 2100
		s.WarmStorageReadCost = 100
		s.AccessListAddressCost = 2400
		s.AccessListStorageKeyCost = 1900
		// SLOAD/BALANCE/EXTCODE* now resolve through the warm/cold
		// accounting above rather than a flat constant.
		s.SloadGas = s.WarmStorageReadCost
		s.BalanceGas = s.WarmStorageReadCost
		s.ExtcodeSizeGas = s.WarmStorageReadCost
		s.ExtcodeCopyGas = s.WarmStorageReadCost
		s.ExtcodeHashGas = s.WarmStorageReadCost
		return s
	}(),
}}

type berlinCalculator struct{ base }

func (c berlinCalculator) CodeDepositCost(size int) (uint64, bool) {
	return uint64(size) * c.schedule.CodeDepositGas, true
}

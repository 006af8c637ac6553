package contract

import (
	"strconv"

	"quadra_dao/sdk"
)

// StakeLedger tracks each member's locked stake and derives quadratic
// voting power from it. Power is computed on every read, never stored.
type StakeLedger struct{}

func newStakeLedger() *StakeLedger {
	return &StakeLedger{}
}

// StakeOf returns the member's current stake, zero when absent.
func (s *StakeLedger) StakeOf(addr sdk.Address) Amount {
	ptr := sdk.StateGetObject(stakeKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("corrupt stake entry for " + addr.String())
	}
	return Amount(v)
}

// setStake writes the stake back; a zero entry is equivalent to absence.
func (s *StakeLedger) setStake(addr sdk.Address, amount Amount) {
	if amount == 0 {
		sdk.StateDeleteObject(stakeKey(addr))
		return
	}
	sdk.StateSetObject(stakeKey(addr), strconv.FormatInt(int64(amount), 10))
}

// TotalStake returns the running total over all members.
func (s *StakeLedger) TotalStake() Amount {
	return Amount(getCount(TotalStakeKey))
}

func (s *StakeLedger) setTotalStake(total Amount) {
	setCount(TotalStakeKey, uint64(total))
}

// Deposit locks amount of the caller's funds as stake.
func (s *StakeLedger) Deposit(caller sdk.Address, amount Amount) {
	if amount <= 0 {
		fail(errInvalidAmount, "deposit amount must be positive")
	}
	requireTransferAllow(amount)
	if err := sdk.HiveDraw(AmountToInt64(amount), treasuryAsset); err != nil {
		fail(errTransferFailed, "stake draw failed: "+err.Error())
	}
	newStake := s.StakeOf(caller) + amount
	s.setStake(caller, newStake)
	s.setTotalStake(s.TotalStake() + amount)
	emitStakeDeposited(caller.String(), amount, newStake)
}

// Withdraw releases amount of stake back to the caller. The value transfer
// is the last step; if the host refuses it the whole call reverts and the
// stake decrement never lands.
func (s *StakeLedger) Withdraw(caller sdk.Address, amount Amount) {
	if amount <= 0 {
		fail(errInvalidAmount, "withdraw amount must be positive")
	}
	current := s.StakeOf(caller)
	if amount > current {
		fail(errInsufficientStake, "withdraw exceeds current stake")
	}
	newStake := current - amount
	s.setStake(caller, newStake)
	s.setTotalStake(s.TotalStake() - amount)
	if err := sdk.HiveTransfer(caller, AmountToInt64(amount), treasuryAsset); err != nil {
		fail(errTransferFailed, "stake payout failed: "+err.Error())
	}
	emitStakeWithdrawn(caller.String(), amount, newStake)
}

// VotingPower is floor(sqrt(stake * PowerPrecision)); zero stake gives zero.
func (s *StakeLedger) VotingPower(addr sdk.Address) uint64 {
	return powerFromStake(s.StakeOf(addr))
}

// TotalVotingPower applies the same formula to the aggregate stake. The
// square root is sub-additive, so this is smaller than the sum of all
// individual powers; it is only used as the quorum denominator.
func (s *StakeLedger) TotalVotingPower() uint64 {
	return powerFromStake(s.TotalStake())
}

func powerFromStake(stake Amount) uint64 {
	if stake <= 0 {
		return 0
	}
	return integerSqrt(uint64(stake) * PowerPrecision)
}

// integerSqrt computes floor(sqrt(x)) with Newton iteration on integers
// only. Converges exactly and is monotone, so equal stakes always map to
// equal power across nodes.
func integerSqrt(x uint64) uint64 {
	if x < 2 {
		return x
	}
	z := x
	y := (z + 1) / 2
	for y < z {
		z = y
		y = (z + x/z) / 2
	}
	return z
}

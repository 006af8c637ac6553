package contract

import (
	"strconv"

	"quadra_dao/sdk"
)

// Treasury holds category-partitioned balances with per-category ceilings.
// Only the governance engine calls Transfer; deposits are permissionless.
type Treasury struct{}

func newTreasury() *Treasury {
	return &Treasury{}
}

// BalanceOf reads one category balance.
func (t *Treasury) BalanceOf(cat Category) Amount {
	return t.readAmount(treasuryBalanceKey(cat))
}

// LimitOf reads one category ceiling (zero means "no deposits allowed yet").
func (t *Treasury) LimitOf(cat Category) Amount {
	return t.readAmount(treasuryLimitKey(cat))
}

func (t *Treasury) readAmount(key string) Amount {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("corrupt treasury entry")
	}
	return Amount(v)
}

func (t *Treasury) setBalance(cat Category, amount Amount) {
	sdk.StateSetObject(treasuryBalanceKey(cat), strconv.FormatInt(int64(amount), 10))
}

func (t *Treasury) setLimit(cat Category, amount Amount) {
	sdk.StateSetObject(treasuryLimitKey(cat), strconv.FormatInt(int64(amount), 10))
}

// Deposit funds a category from the caller's balance. Anyone may fund any
// category; the ceiling is the only brake.
func (t *Treasury) Deposit(caller sdk.Address, cat Category, amount Amount) {
	if amount <= 0 {
		fail(errInvalidAmount, "deposit amount must be positive")
	}
	newBalance := t.BalanceOf(cat) + amount
	if newBalance > t.LimitOf(cat) {
		fail(errCategoryLimitExceeded, "deposit would exceed category ceiling")
	}
	requireTransferAllow(amount)
	if err := sdk.HiveDraw(AmountToInt64(amount), treasuryAsset); err != nil {
		fail(errTransferFailed, "treasury draw failed: "+err.Error())
	}
	t.setBalance(cat, newBalance)
	emitTreasuryDeposit(cat, caller.String(), amount)
}

// Transfer pays recipient out of a category. Strict check-effects-
// interactions: the balance decrement is persisted before the host value
// transfer, and a refused transfer reverts the whole call, so a reentrant
// callback can never see an unpaid-but-undeduced balance.
func (t *Treasury) Transfer(cat Category, recipient sdk.Address, amount Amount) {
	if recipient.IsZero() {
		fail(errZeroAddress, "recipient must not be the null identity")
	}
	if amount <= 0 {
		fail(errInvalidAmount, "transfer amount must be positive")
	}
	balance := t.BalanceOf(cat)
	if amount > balance {
		fail(errInsufficientCategoryBalance, "transfer exceeds category balance")
	}
	if amount > t.heldFunds() {
		fail(errInsufficientTotalBalance, "transfer exceeds contract holdings")
	}
	t.setBalance(cat, balance-amount)
	if err := sdk.HiveTransfer(recipient, AmountToInt64(amount), treasuryAsset); err != nil {
		fail(errTransferFailed, "treasury payout failed: "+err.Error())
	}
}

// SetLimit updates a category ceiling. Owner only. The new limit may sit
// below the current balance; that just blocks further deposits.
func (t *Treasury) SetLimit(caller sdk.Address, cat Category, newLimit Amount) {
	requireOwner(caller)
	if newLimit < 0 {
		fail(errInvalidAmount, "limit must not be negative")
	}
	old := t.LimitOf(cat)
	t.setLimit(cat, newLimit)
	emitBalanceLimitUpdated(cat, old, newLimit)
}

// heldFunds queries the ledger for what the contract actually holds.
func (t *Treasury) heldFunds() Amount {
	contractAddr := sdk.Address("contract:" + currentEnv().ContractId)
	return Amount(sdk.GetBalance(contractAddr, treasuryAsset))
}

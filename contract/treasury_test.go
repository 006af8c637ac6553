package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quadra_dao/sdk"
)

func TestTreasuryDepositCreditsCategory(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	fundTreasury(t, m, aliceAddr, "operational_expense", "50")

	tr := newTreasury()
	assert.Equal(t, Amount(50_000), tr.BalanceOf(CategoryOperationalExpense))
	assert.Equal(t, Amount(0), tr.BalanceOf(CategoryHighConviction))
	assert.Equal(t, int64(50_000), m.BalanceOf(m.ContractAddress(), sdk.AssetHive))
}

func TestTreasuryDepositRespectsCeiling(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	// operational ceiling is 200 units
	m.SetCaller(aliceAddr)
	m.AllowTransfer("201", sdk.AssetHive)
	rev := callErr(t, m, TreasuryDeposit, "operational_expense|201")
	assert.Equal(t, "category_limit_exceeded", rev.Symbol)

	// exactly at the ceiling is fine
	fundTreasury(t, m, aliceAddr, "operational_expense", "200")
	assert.Equal(t, Amount(200_000), newTreasury().BalanceOf(CategoryOperationalExpense))

	// and the next token over the top is rejected
	m.SetCaller(aliceAddr)
	m.AllowTransfer("0.001", sdk.AssetHive)
	rev = callErr(t, m, TreasuryDeposit, "operational_expense|0.001")
	assert.Equal(t, "category_limit_exceeded", rev.Symbol)
}

func TestTreasuryCategoriesAreIndependent(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	fundTreasury(t, m, aliceAddr, "high_conviction", "100")
	fundTreasury(t, m, bobAddr, "experimental_bet", "30")

	tr := newTreasury()
	assert.Equal(t, Amount(100_000), tr.BalanceOf(CategoryHighConviction))
	assert.Equal(t, Amount(30_000), tr.BalanceOf(CategoryExperimentalBet))
	assert.Equal(t, Amount(0), tr.BalanceOf(CategoryOperationalExpense))
}

func TestTreasuryDepositUnknownCategory(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	m.SetCaller(aliceAddr)
	m.AllowTransfer("1", sdk.AssetHive)
	rev := callErr(t, m, TreasuryDeposit, "yolo_fund|1")
	assert.Equal(t, "invalid_category", rev.Symbol)
}

func TestSetLimitOwnerOnly(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	m.SetCaller(aliceAddr)
	rev := callErr(t, m, TreasurySetLimit, "operational_expense|999")
	assert.Equal(t, "unauthorized", rev.Symbol)

	m.SetCaller(ownerAddr)
	call(t, m, TreasurySetLimit, "operational_expense|999")
	assert.Equal(t, Amount(999_000), newTreasury().LimitOf(CategoryOperationalExpense))
}

func TestSetLimitBelowBalanceOnlyBlocksDeposits(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	fundTreasury(t, m, aliceAddr, "operational_expense", "100")

	// lowering under the held balance is allowed
	m.SetCaller(ownerAddr)
	call(t, m, TreasurySetLimit, "operational_expense|50")

	tr := newTreasury()
	assert.Equal(t, Amount(100_000), tr.BalanceOf(CategoryOperationalExpense))
	assert.Equal(t, Amount(50_000), tr.LimitOf(CategoryOperationalExpense))

	// further deposits are now over the ceiling
	m.SetCaller(bobAddr)
	m.AllowTransfer("1", sdk.AssetHive)
	rev := callErr(t, m, TreasuryDeposit, "operational_expense|1")
	assert.Equal(t, "category_limit_exceeded", rev.Symbol)
}

func TestTreasuryTransferChecks(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	fundTreasury(t, m, aliceAddr, "operational_expense", "10")

	tr := newTreasury()

	_, err := m.Call(func() *string {
		tr.Transfer(CategoryOperationalExpense, "", 1_000)
		return nil
	})
	assert.Equal(t, "zero_address", err.(*sdk.RevertError).Symbol)

	_, err = m.Call(func() *string {
		tr.Transfer(CategoryOperationalExpense, carolAddr, 0)
		return nil
	})
	assert.Equal(t, "invalid_amount", err.(*sdk.RevertError).Symbol)

	_, err = m.Call(func() *string {
		tr.Transfer(CategoryOperationalExpense, carolAddr, 10_001)
		return nil
	})
	assert.Equal(t, "insufficient_category_balance", err.(*sdk.RevertError).Symbol)
}

func TestTreasuryTransferExactBalance(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	fundTreasury(t, m, aliceAddr, "operational_expense", "10")

	tr := newTreasury()
	before := m.BalanceOf(carolAddr, sdk.AssetHive)
	_, err := m.Call(func() *string {
		tr.Transfer(CategoryOperationalExpense, carolAddr, 10_000)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, Amount(0), tr.BalanceOf(CategoryOperationalExpense))
	assert.Equal(t, before+10_000, m.BalanceOf(carolAddr, sdk.AssetHive))
}

func TestTreasuryTransferRollsBackOnHostRefusal(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	fundTreasury(t, m, aliceAddr, "operational_expense", "10")

	m.FailTransfers = true
	tr := newTreasury()
	_, err := m.Call(func() *string {
		tr.Transfer(CategoryOperationalExpense, carolAddr, 5_000)
		return nil
	})
	assert.Equal(t, "transfer_failed", err.(*sdk.RevertError).Symbol)

	// the category decrement must have been rolled back with the call
	assert.Equal(t, Amount(10_000), tr.BalanceOf(CategoryOperationalExpense))
	assert.Equal(t, int64(0), m.BalanceOf(carolAddr, sdk.AssetHive)-1_000_000_000)
}

func TestTreasuryGetView(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	fundTreasury(t, m, aliceAddr, "experimental_bet", "25")

	out := call(t, m, TreasuryGet, "")

	var view TreasuryView
	assert.NoError(t, view.UnmarshalJSON([]byte(out)))
	assert.Len(t, view.Categories, 3)
	assert.Equal(t, int64(25_000), view.Categories[CategoryExperimentalBet].Balance)
	assert.Equal(t, int64(500_000), view.Categories[CategoryExperimentalBet].Limit)
	assert.Equal(t, int64(25_000), view.TotalHeld)
}

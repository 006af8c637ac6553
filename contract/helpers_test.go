package contract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadra_dao/sdk"
)

const (
	ownerAddr = sdk.Address("hive:owner")
	aliceAddr = sdk.Address("hive:alice")
	bobAddr   = sdk.Address("hive:bob")
	carolAddr = sdk.Address("hive:carol")
)

// Defaults used by initDAO: 1 block voting delay, 10 block voting period,
// threshold 50000 power, quorum 30/20/10 percent, timelocks 48h/24h/6h,
// ceilings 1000/500/200 units.
const defaultInitPayload = "1|10|50000|30,20,10|172800,86400,21600|1000,500,200"

// newTestHost installs a fresh mock host and funds the standard accounts.
func newTestHost(t *testing.T) *sdk.MockHost {
	t.Helper()
	m := sdk.NewMockHost()
	sdk.UseHost(m)
	for _, a := range []sdk.Address{ownerAddr, aliceAddr, bobAddr, carolAddr} {
		m.Fund(a, sdk.AssetHive, 1_000_000_000)
	}
	return m
}

// initDAO initializes the contract with ownerAddr as owner.
func initDAO(t *testing.T, m *sdk.MockHost) {
	t.Helper()
	m.SetCaller(ownerAddr)
	call(t, m, ContractInit, defaultInitPayload)
}

// call runs one entrypoint and requires success.
func call(t *testing.T, m *sdk.MockHost, fn func(*string) *string, payload string) string {
	t.Helper()
	ret, err := m.Call(func() *string { return fn(strptr(payload)) })
	require.NoError(t, err)
	require.NotNil(t, ret)
	return *ret
}

// callErr runs one entrypoint and requires a typed revert.
func callErr(t *testing.T, m *sdk.MockHost, fn func(*string) *string, payload string) *sdk.RevertError {
	t.Helper()
	_, err := m.Call(func() *string { return fn(strptr(payload)) })
	require.Error(t, err)
	rev, ok := err.(*sdk.RevertError)
	require.True(t, ok, "expected a revert, got %v", err)
	return rev
}

// stakeAs deposits stake for addr; amount is a human decimal string.
func stakeAs(t *testing.T, m *sdk.MockHost, addr sdk.Address, amount string) {
	t.Helper()
	m.SetCaller(addr)
	m.AllowTransfer(amount, sdk.AssetHive)
	call(t, m, StakeDeposit, amount)
}

// fundTreasury deposits amount into a category as addr.
func fundTreasury(t *testing.T, m *sdk.MockHost, addr sdk.Address, category string, amount string) {
	t.Helper()
	m.SetCaller(addr)
	m.AllowTransfer(amount, sdk.AssetHive)
	call(t, m, TreasuryDeposit, category+"|"+amount)
}

// grantRole flags a role for account as the owner.
func grantRole(t *testing.T, m *sdk.MockHost, role string, account sdk.Address) {
	t.Helper()
	m.SetCaller(ownerAddr)
	call(t, m, RolesGrant, role+"|"+account.String())
}

// createProposal submits a proposal as addr and returns its id string.
func createProposal(t *testing.T, m *sdk.MockHost, addr sdk.Address, recipient sdk.Address, amount string, category string, description string) string {
	t.Helper()
	m.SetCaller(addr)
	return call(t, m, ProposalsCreate, recipient.String()+"|"+amount+"|"+category+"|"+description)
}

// voteAs casts a ballot as addr.
func voteAs(t *testing.T, m *sdk.MockHost, addr sdk.Address, id string, support string) {
	t.Helper()
	m.SetCaller(addr)
	call(t, m, ProposalsVote, id+"|"+support)
}

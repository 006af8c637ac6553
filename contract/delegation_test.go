package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadra_dao/sdk"
)

func TestDelegateRequiresStake(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	m.SetCaller(aliceAddr)
	rev := callErr(t, m, DelegateSet, bobAddr.String())
	assert.Equal(t, "no_stake", rev.Symbol)
}

func TestDelegateRejectsSelfAndZero(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")

	m.SetCaller(aliceAddr)
	rev := callErr(t, m, DelegateSet, aliceAddr.String())
	assert.Equal(t, "self_delegation", rev.Symbol)

	m.SetCaller(aliceAddr)
	rev = callErr(t, m, DelegateSet, "")
	assert.Equal(t, "zero_address", rev.Symbol)
}

func TestDelegationMovesEffectivePower(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")
	stakeAs(t, m, bobAddr, "90")

	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, bobAddr.String())

	reg := newDelegationRegistry(newStakeLedger())
	// alice's own power moves under bob; alice reads as zero
	assert.Equal(t, uint64(0), reg.VotingPowerWithDelegation(aliceAddr))
	assert.Equal(t, uint64(300_000+100_000), reg.VotingPowerWithDelegation(bobAddr))
}

func TestRevokeRestoresOwnPower(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")
	stakeAs(t, m, bobAddr, "90")

	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, bobAddr.String())
	m.SetCaller(aliceAddr)
	call(t, m, DelegateRevoke, "")

	reg := newDelegationRegistry(newStakeLedger())
	assert.Equal(t, uint64(100_000), reg.VotingPowerWithDelegation(aliceAddr))
	assert.Equal(t, uint64(300_000), reg.VotingPowerWithDelegation(bobAddr))
	assert.Empty(t, reg.Delegators(bobAddr))
}

func TestRevokeWithoutDelegation(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")

	m.SetCaller(aliceAddr)
	rev := callErr(t, m, DelegateRevoke, "")
	assert.Equal(t, "no_delegation", rev.Symbol)
}

func TestRedelegationReplacesEdge(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")
	stakeAs(t, m, bobAddr, "90")
	stakeAs(t, m, carolAddr, "40")

	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, bobAddr.String())
	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, carolAddr.String())

	reg := newDelegationRegistry(newStakeLedger())
	delegatee, ok := reg.DelegateeOf(aliceAddr)
	require.True(t, ok)
	assert.Equal(t, carolAddr, delegatee)
	// the old reverse entry must be gone
	assert.Empty(t, reg.Delegators(bobAddr))
	assert.Equal(t, []sdk.Address{aliceAddr}, reg.Delegators(carolAddr))
}

func TestRedelegationToSameTargetKeepsSingleEntry(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")
	stakeAs(t, m, bobAddr, "90")

	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, bobAddr.String())
	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, bobAddr.String())

	reg := newDelegationRegistry(newStakeLedger())
	assert.Equal(t, []sdk.Address{aliceAddr}, reg.Delegators(bobAddr))
}

func TestReverseIndexRemovalKeepsOtherDelegators(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")
	stakeAs(t, m, bobAddr, "90")
	stakeAs(t, m, carolAddr, "40")

	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, ownerAddr.String())
	m.SetCaller(bobAddr)
	call(t, m, DelegateSet, ownerAddr.String())
	m.SetCaller(carolAddr)
	call(t, m, DelegateSet, ownerAddr.String())

	m.SetCaller(bobAddr)
	call(t, m, DelegateRevoke, "")

	reg := newDelegationRegistry(newStakeLedger())
	left := reg.Delegators(ownerAddr)
	assert.Len(t, left, 2)
	assert.ElementsMatch(t, []sdk.Address{aliceAddr, carolAddr}, left)
}

func TestEmptiedReverseIndexIsDeleted(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")

	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, bobAddr.String())
	m.SetCaller(aliceAddr)
	call(t, m, DelegateRevoke, "")

	assert.Nil(t, m.StateRaw(delegateReverseKey(bobAddr)))
}

func TestMutualDelegationIsHarmless(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")
	stakeAs(t, m, bobAddr, "90")

	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, bobAddr.String())
	m.SetCaller(bobAddr)
	call(t, m, DelegateSet, aliceAddr.String())

	// effective power only follows edges one hop, so a two-cycle just swaps
	// the raw powers instead of looping
	reg := newDelegationRegistry(newStakeLedger())
	assert.Equal(t, uint64(300_000), reg.VotingPowerWithDelegation(aliceAddr))
	assert.Equal(t, uint64(100_000), reg.VotingPowerWithDelegation(bobAddr))
}

func TestDelegationSurvivesStakeChanges(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)
	stakeAs(t, m, aliceAddr, "10")
	stakeAs(t, m, bobAddr, "90")

	m.SetCaller(aliceAddr)
	call(t, m, DelegateSet, bobAddr.String())

	// power is recomputed live, so a later deposit changes what bob wields
	stakeAs(t, m, aliceAddr, "30")

	reg := newDelegationRegistry(newStakeLedger())
	// alice now holds 40 units: sqrt(40000 * scale) = 200000
	assert.Equal(t, uint64(300_000+200_000), reg.VotingPowerWithDelegation(bobAddr))
}

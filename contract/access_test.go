package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleGrantAndRevoke(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	reg := newAccessRegistry()
	assert.False(t, reg.HasRole(RoleGuardian, aliceAddr))

	grantRole(t, m, "guardian", aliceAddr)
	assert.True(t, reg.HasRole(RoleGuardian, aliceAddr))
	// roles are independent flags
	assert.False(t, reg.HasRole(RoleExecutor, aliceAddr))

	m.SetCaller(ownerAddr)
	call(t, m, RolesRevoke, "guardian|"+aliceAddr.String())
	assert.False(t, reg.HasRole(RoleGuardian, aliceAddr))
}

func TestRoleGrantOwnerOnly(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	m.SetCaller(aliceAddr)
	rev := callErr(t, m, RolesGrant, "guardian|"+bobAddr.String())
	assert.Equal(t, "unauthorized", rev.Symbol)

	m.SetCaller(aliceAddr)
	rev = callErr(t, m, RolesRevoke, "guardian|"+bobAddr.String())
	assert.Equal(t, "unauthorized", rev.Symbol)
}

func TestRoleGrantValidation(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	m.SetCaller(ownerAddr)
	rev := callErr(t, m, RolesGrant, "archmage|"+bobAddr.String())
	assert.Equal(t, "invalid_role", rev.Symbol)

	m.SetCaller(ownerAddr)
	rev = callErr(t, m, RolesGrant, "guardian|")
	assert.Equal(t, "zero_address", rev.Symbol)
}

func TestRoleNumericAliases(t *testing.T) {
	m := newTestHost(t)
	initDAO(t, m)

	m.SetCaller(ownerAddr)
	call(t, m, RolesGrant, "3|"+aliceAddr.String())
	assert.True(t, newAccessRegistry().HasRole(RoleGuardian, aliceAddr))
}

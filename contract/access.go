package contract

import "quadra_dao/sdk"

// AccessRegistry answers capability checks. Roles are flat flags per
// (role, account); there is no hierarchy and no implied membership.
type AccessRegistry struct{}

func newAccessRegistry() *AccessRegistry {
	return &AccessRegistry{}
}

// HasRole is a pure read.
func (a *AccessRegistry) HasRole(role Role, addr sdk.Address) bool {
	ptr := sdk.StateGetObject(roleKey(role, addr))
	return ptr != nil && *ptr == "1"
}

// Grant flags the membership. Owner only.
func (a *AccessRegistry) Grant(caller sdk.Address, role Role, addr sdk.Address) {
	requireOwner(caller)
	if addr.IsZero() {
		fail(errZeroAddress, "cannot grant a role to the null identity")
	}
	sdk.StateSetObject(roleKey(role, addr), "1")
	emitRoleGranted(role, addr.String(), caller.String())
}

// Revoke clears the membership. Owner only.
func (a *AccessRegistry) Revoke(caller sdk.Address, role Role, addr sdk.Address) {
	requireOwner(caller)
	if addr.IsZero() {
		fail(errZeroAddress, "cannot revoke a role from the null identity")
	}
	sdk.StateDeleteObject(roleKey(role, addr))
	emitRoleRevoked(role, addr.String(), caller.String())
}

// requireRole reverts unless addr carries the capability.
func (a *AccessRegistry) requireRole(role Role, addr sdk.Address) {
	if !a.HasRole(role, addr) {
		fail(errUnauthorized, "caller lacks role "+role.String())
	}
}

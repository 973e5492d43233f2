package authz

import "github.com/kimloan/loanctl/kimloan"

// set builds a permission set from a list of names.
func set(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// allPermissions is every permission the backend defines, module by module.
var allPermissions = []string{
	"users:create", "users:read", "users:update", "users:delete",
	"users:transfer", "users:manage_permissions",

	"branches:create", "branches:read", "branches:update", "branches:delete",
	"branches:manage_staff",

	"loans:create", "loans:read", "loans:update", "loans:approve",
	"loans:disburse", "loans:products_manage", "loans:types_manage",

	"payments:create", "payments:confirm", "payments:view_history",
	"payments:manual_entry",

	"inventory:read", "inventory:update", "inventory:restock",
	"inventory:transfer",

	"reports:view_own", "reports:view_branch", "reports:view_all",
	"reports:export", "reports:analytics",

	"admin:system_settings", "admin:view_buying_prices", "admin:audit_logs",
	"admin:user_sessions", "admin:backup_restore",

	"notifications:send_individual", "notifications:send_group",
	"notifications:send_branch", "notifications:send_all",
}

// rolePermissions mirrors the backend's default role-permission table.
// The backend is the enforcement point; this table only drives client-side
// gating (routes, menu projection) so users are not shown doors they
// cannot open.
var rolePermissions = map[kimloan.Role]map[string]struct{}{
	kimloan.RoleAdmin: set(allPermissions...),

	kimloan.RoleBranchManager: set(
		"users:read", "users:update", "users:create",
		"branches:read", "branches:update", "branches:manage_staff",
		"loans:read", "loans:update", "loans:products_manage",
		"payments:view_history", "payments:confirm",
		"inventory:read", "inventory:update", "inventory:restock",
		"reports:view_branch", "reports:export", "reports:analytics",
		"notifications:send_individual", "notifications:send_group",
	),

	kimloan.RoleProcurementOfficer: set(
		"users:read",
		"loans:read", "loans:approve", "loans:disburse",
		"payments:confirm", "payments:view_history",
		"inventory:read", "inventory:update", "inventory:restock",
		"reports:view_own", "reports:analytics",
		"notifications:send_individual",
	),

	kimloan.RoleLoanOfficer: set(
		"users:read", "users:create", "users:update",
		"loans:create", "loans:read", "loans:update",
		"payments:manual_entry", "payments:view_history",
		"reports:view_own",
		"notifications:send_individual",
	),

	kimloan.RoleCustomer: set(
		"loans:read",
		"payments:view_history",
		"reports:view_own",
	),
}

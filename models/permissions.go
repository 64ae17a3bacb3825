package models

// Permission is a single capability granted through a role.
type Permission string

const (
	PermissionManageUsers    Permission = "users:manage"
	PermissionManageRoles    Permission = "roles:manage"
	PermissionManageProjects Permission = "projects:manage"
)

// rolePermissions maps role names to the capabilities they grant. Admin
// checks go through HasPermission rather than comparing role names at call
// sites.
var rolePermissions = map[string][]Permission{
	RoleAdmin: {
		PermissionManageUsers,
		PermissionManageRoles,
		PermissionManageProjects,
	},
	RoleUser: {},
}

// HasPermission reports whether the named role grants the permission.
func HasPermission(roleName string, p Permission) bool {
	for _, granted := range rolePermissions[roleName] {
		if granted == p {
			return true
		}
	}
	return false
}

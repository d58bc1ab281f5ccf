package models

// Roles
const (
	RoleAdmin = "admin"
)

// Permission constants
const (
	PermissionSettingsRead  = "settings:read"
	PermissionSettingsWrite = "settings:write"
)

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{PermissionSettingsRead, PermissionSettingsWrite}
	default:
		return []string{}
	}
}

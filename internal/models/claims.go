package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are the JWT claims issued after a successful passcode check.
// DraftID binds the token to the settings draft staged at login.
type AdminClaims struct {
	jwt.RegisteredClaims
	Role        string   `json:"role"`
	DraftID     string   `json:"draft_id"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *AdminClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

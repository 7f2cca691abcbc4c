package models

// Role identifies which collection an actor authenticated against.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// Session is the currently authenticated actor.
type Session struct {
	Role Role   `json:"role"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Theme is the persisted display preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the opposite theme. Anything other than dark flips to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

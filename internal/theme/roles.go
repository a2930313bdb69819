// Package theme assigns named UI roles to colors extracted from an image.
// The output maps CSS custom-property roles (background, primary, accent,
// ...) to hex or hsl() color strings suitable for a :root block.
package theme

// Role is a named slot in the output theme, matching the CSS custom
// property it becomes (prefixed with "--").
type Role string

const (
	RoleBackground            Role = "background"
	RoleForeground            Role = "foreground"
	RoleCard                  Role = "card"
	RoleCardForeground        Role = "card-foreground"
	RolePopover               Role = "popover"
	RolePopoverForeground     Role = "popover-foreground"
	RolePrimary               Role = "primary"
	RolePrimaryForeground     Role = "primary-foreground"
	RoleSecondary             Role = "secondary"
	RoleSecondaryForeground   Role = "secondary-foreground"
	RoleMuted                 Role = "muted"
	RoleMutedForeground       Role = "muted-foreground"
	RoleAccent                Role = "accent"
	RoleAccentForeground      Role = "accent-foreground"
	RoleDestructive           Role = "destructive"
	RoleDestructiveForeground Role = "destructive-foreground"
	RoleBorder                Role = "border"
	RoleInput                 Role = "input"
	RoleRing                  Role = "ring"
)

// AllRoles lists every role in stable output order.
func AllRoles() []Role {
	return []Role{
		RoleBackground,
		RoleForeground,
		RoleCard,
		RoleCardForeground,
		RolePopover,
		RolePopoverForeground,
		RolePrimary,
		RolePrimaryForeground,
		RoleSecondary,
		RoleSecondaryForeground,
		RoleMuted,
		RoleMutedForeground,
		RoleAccent,
		RoleAccentForeground,
		RoleDestructive,
		RoleDestructiveForeground,
		RoleBorder,
		RoleInput,
		RoleRing,
	}
}

// IsRole reports whether s names a known role.
func IsRole(s string) bool {
	for _, r := range AllRoles() {
		if string(r) == s {
			return true
		}
	}
	return false
}

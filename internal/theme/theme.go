package theme

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Mode is the overall polarity of a theme.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Theme is the assigner's output: a complete role-to-color mapping plus the
// cosmetic border radius. Values are either "#rrggbb" hex literals or
// "hsl(H, S%, L%)" functional strings.
type Theme struct {
	Mode   Mode
	Roles  map[Role]string
	Radius string
}

// Declaration is a single CSS custom property ready to be merged into a
// :root block.
type Declaration struct {
	Name  string
	Value string
}

// Declarations returns the theme as CSS custom properties in stable role
// order, radius last.
func (t Theme) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(t.Roles)+1)
	for _, r := range AllRoles() {
		if v, ok := t.Roles[r]; ok {
			decls = append(decls, Declaration{Name: "--" + string(r), Value: v})
		}
	}
	if t.Radius != "" {
		decls = append(decls, Declaration{Name: "--radius", Value: t.Radius})
	}
	return decls
}

// Complete reports whether every role has a value.
func (t Theme) Complete() bool {
	for _, r := range AllRoles() {
		if _, ok := t.Roles[r]; !ok {
			return false
		}
	}
	return true
}

// YAML serializes the theme for export.
func (t Theme) YAML() ([]byte, error) {
	type doc struct {
		Mode   string            `yaml:"mode"`
		Radius string            `yaml:"radius,omitempty"`
		Roles  map[string]string `yaml:"roles"`
	}
	d := doc{
		Mode:   string(t.Mode),
		Radius: t.Radius,
		Roles:  make(map[string]string, len(t.Roles)),
	}
	for r, v := range t.Roles {
		d.Roles[string(r)] = v
	}
	return yaml.Marshal(d)
}

// SortedRoles returns the theme's assigned roles in lexical order. Used for
// stable presentation when the full role ordering is not wanted.
func (t Theme) SortedRoles() []Role {
	roles := make([]Role, 0, len(t.Roles))
	for r := range t.Roles {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

package theme

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/davidlopes/tinge/internal/color"
)

func TestIsRole(t *testing.T) {
	t.Parallel()

	for _, r := range AllRoles() {
		if !IsRole(string(r)) {
			t.Fatalf("IsRole(%q) = false", r)
		}
	}
	for _, s := range []string{"", "Background", "primary_foreground", "radius"} {
		if IsRole(s) {
			t.Fatalf("IsRole(%q) = true", s)
		}
	}
}

func TestTheme_Complete(t *testing.T) {
	t.Parallel()

	th := Theme{Roles: map[Role]string{RoleBackground: "#000000"}}
	if th.Complete() {
		t.Fatal("partial theme reported complete")
	}

	full, err := Assign([]color.Candidate{color.Fallback()}, WithRadiusSource(fixedRadius))
	if err != nil {
		t.Fatalf("Assign error: %v", err)
	}
	if !full.Complete() {
		t.Fatal("assigned theme reported incomplete")
	}
}

func TestTheme_YAML(t *testing.T) {
	t.Parallel()

	th, err := Assign([]color.Candidate{color.Fallback()}, WithRadiusSource(fixedRadius))
	if err != nil {
		t.Fatalf("Assign error: %v", err)
	}

	data, err := th.YAML()
	if err != nil {
		t.Fatalf("YAML error: %v", err)
	}

	var decoded struct {
		Mode   string            `yaml:"mode"`
		Radius string            `yaml:"radius"`
		Roles  map[string]string `yaml:"roles"`
	}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if decoded.Mode != string(th.Mode) {
		t.Fatalf("mode = %q, want %q", decoded.Mode, th.Mode)
	}
	if len(decoded.Roles) != len(AllRoles()) {
		t.Fatalf("exported %d roles, want %d", len(decoded.Roles), len(AllRoles()))
	}
	if decoded.Roles["destructive"] != "#ff4444" {
		t.Fatalf("destructive = %q", decoded.Roles["destructive"])
	}
}

func TestTheme_SortedRoles(t *testing.T) {
	t.Parallel()

	th := Theme{Roles: map[Role]string{
		RoleRing:       "#111111",
		RoleBackground: "#222222",
		RoleMuted:      "#333333",
	}}
	got := th.SortedRoles()
	want := []Role{RoleBackground, RoleMuted, RoleRing}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

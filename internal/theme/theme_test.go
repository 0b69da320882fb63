package theme

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"light", ModeLight},
		{"dark", ModeDark},
		{"", ModeDark},
		{"neon", ModeDark},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAccent(t *testing.T) {
	tests := []struct {
		in   string
		want Accent
	}{
		{"teal", AccentTeal},
		{"violet", AccentViolet},
		{"amber", AccentAmber},
		{"", AccentTeal},
		{"chartreuse", AccentTeal},
	}
	for _, tt := range tests {
		if got := ParseAccent(tt.in); got != tt.want {
			t.Errorf("ParseAccent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveCoversAllVariants(t *testing.T) {
	for _, mode := range []Mode{ModeLight, ModeDark} {
		for _, accent := range []Accent{AccentTeal, AccentViolet, AccentAmber} {
			p := Resolve(mode, accent)
			if p.Mode != mode || p.Accent != accent {
				t.Errorf("Resolve(%q, %q) tagged as (%q, %q)", mode, accent, p.Mode, p.Accent)
			}
		}
	}
}

func TestResolveUnknownAccentFallsBack(t *testing.T) {
	p := Resolve(ModeDark, Accent("chartreuse"))
	if p.Accent != AccentTeal {
		t.Errorf("unknown accent resolved to %q, want teal fallback", p.Accent)
	}
}

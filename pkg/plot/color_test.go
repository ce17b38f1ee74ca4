package plot

import "testing"

func TestColorSVG(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"Opaque", Red, "rgb(255,0,0)"},
		{"Translucent", Red.WithAlpha(0.5), "rgba(255,0,0,0.5)"},
		{"Black", Black, "rgb(0,0,0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.SVG(); got != tt.want {
				t.Errorf("SVG() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNamedColor(t *testing.T) {
	tests := []struct {
		name   string
		want   Color
		wantOK bool
	}{
		{"red", Red, true},
		{"RED", Red, true},
		{"lightgrey", LightGray, true},
		{"lightgray", LightGray, true},
		{"chartreuse", Color{}, false},
	}
	for _, tt := range tests {
		got, ok := NamedColor(tt.name)
		if ok != tt.wantOK {
			t.Errorf("NamedColor(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("NamedColor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPaletteCycle(t *testing.T) {
	p := DefaultPalette()
	if p.Len() != 10 {
		t.Fatalf("default palette length = %d, want 10", p.Len())
	}
	if p.Color(0) != p.Color(10) {
		t.Error("palette should wrap around after one full cycle")
	}
	if p.Color(0) == p.Color(1) {
		t.Error("consecutive palette colors should differ")
	}
}

func TestPaletteCustom(t *testing.T) {
	p := NewPalette(Red, Blue)
	if p.Color(0) != Red || p.Color(1) != Blue || p.Color(2) != Red {
		t.Error("custom palette does not cycle in declaration order")
	}
}

func TestPaletteEmptyFallsBackToDefault(t *testing.T) {
	p := NewPalette()
	if p.Len() != 10 {
		t.Errorf("NewPalette() length = %d, want default cycle of 10", p.Len())
	}
}

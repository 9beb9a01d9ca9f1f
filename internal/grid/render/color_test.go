package render

import "testing"

func TestColorStrings(t *testing.T) {
	tests := []struct {
		hex, rgb, hsl string
	}{
		{"#ffffff", "rgb(255,255,255)", "hsl(0,0%,100%)"},
		{"#000000", "rgb(0,0,0)", "hsl(0,0%,0%)"},
		{"#ff0000", "rgb(255,0,0)", "hsl(0,100%,50%)"},
		{"#22c55e", "rgb(34,197,94)", "hsl(142,71%,45%)"},
		{"#0ea5e9", "rgb(14,165,233)", "hsl(199,89%,48%)"},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			rgb, err := RGBString(tt.hex)
			if err != nil || rgb != tt.rgb {
				t.Errorf("RGBString = %q, %v; want %q", rgb, err, tt.rgb)
			}
			hsl, err := HSLString(tt.hex)
			if err != nil || hsl != tt.hsl {
				t.Errorf("HSLString = %q, %v; want %q", hsl, err, tt.hsl)
			}
		})
	}

	if got, _ := RGBAString("#a855f7", 0.35); got != "rgba(168,85,247,0.35)" {
		t.Errorf("RGBAString = %q", got)
	}
}

func TestValidColor(t *testing.T) {
	for _, s := range []string{"#FFFFFF", "#a855f7", "#000000"} {
		if !ValidColor(s) {
			t.Errorf("%q rejected", s)
		}
	}
	for _, s := range []string{"", "#fff", "ffffff", "#gggggg", "#12345678", "#+12345", `"><x`} {
		if ValidColor(s) {
			t.Errorf("%q accepted", s)
		}
	}
	if _, err := HSLString("nope"); err == nil {
		t.Error("HSLString accepted invalid color")
	}
}

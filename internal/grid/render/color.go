package render

import (
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// Color helpers
// ============================================================

// ValidColor принимает только #rrggbb.
func ValidColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

func channels(hex string) (r, g, b uint8, err error) {
	if !ValidColor(hex) {
		return 0, 0, 0, fmt.Errorf("invalid color %q", hex)
	}
	v, _ := strconv.ParseUint(hex[1:], 16, 32)
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// RGBString: rgb(r,g,b).
func RGBString(hex string) (string, error) {
	r, g, b, err := channels(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b), nil
}

// RGBAString: rgba(r,g,b,a) для заданной прозрачности.
func RGBAString(hex string, alpha float64) (string, error) {
	r, g, b, err := channels(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatFloat(alpha)), nil
}

// HSLString: hsl(h,s%,l%) с округлением до целых.
func HSLString(hex string) (string, error) {
	ri, gi, bi, err := channels(hex)
	if err != nil {
		return "", err
	}
	r, g, b := float64(ri)/255, float64(gi)/255, float64(bi)/255
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}
	return fmt.Sprintf("hsl(%d,%d%%,%d%%)",
		int(math.Round(h*360)), int(math.Round(s*100)), int(math.Round(l*100))), nil
}

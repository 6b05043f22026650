package compositor

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseCSSColor converts the CSS color strings used by segment styles into
// a color. Supported forms: #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b) and
// rgba(r, g, b, a).
func ParseCSSColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		return parseFuncColor(s[5:len(s)-1], true)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		return parseFuncColor(s[4:len(s)-1], false)
	}

	return color.NRGBA{}, fmt.Errorf("unsupported color string: %q", s)
}

func parseHexColor(s string) (color.NRGBA, error) {
	hex := s[1:]

	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 8 {
		return color.NRGBA{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, nil
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

func parseFuncColor(args string, hasAlpha bool) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("expected %d components, got %d", want, len(parts))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color component %q: %w", parts[i], err)
		}
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		channels[i] = uint8(v)
	}

	alpha := uint8(0xff)
	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha %q: %w", parts[3], err)
		}
		if a < 0 {
			a = 0
		}
		if a > 1 {
			a = 1
		}
		alpha = uint8(a*255 + 0.5)
	}

	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// Package hexcolor converts between the two color spellings the framework
// exchanges with its callers: CSS-style "rgb(r,g,b)" triplet strings and bare
// six-digit hex strings. Both directions are total functions; malformed input
// decodes to black rather than failing, so round-tripping any committed value
// is always safe.
package hexcolor

import (
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// SplitRGB parses an "rgb(r,g,b)" triplet string into channel values.
// Whitespace around components is tolerated. Malformed or empty input yields
// (0, 0, 0). Channels are clamped to [0, 255].
func SplitRGB(rgb string) (r, g, b int) {
	s := strings.TrimSpace(rgb)
	if !strings.HasPrefix(strings.ToLower(s), "rgb(") || !strings.HasSuffix(s, ")") {
		return 0, 0, 0
	}

	inner := s[4 : len(s)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return 0, 0, 0
	}

	channels := [3]int{}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			n = 0
		}
		channels[i] = clampChannel(n)
	}

	return channels[0], channels[1], channels[2]
}

// RGBToHex converts an "rgb(r,g,b)" triplet string to a six-digit hex string
// without a leading "#". Malformed or empty input yields "000000".
func RGBToHex(rgb string) string {
	r, g, b := SplitRGB(rgb)
	return ChannelToHex(r) + ChannelToHex(g) + ChannelToHex(b)
}

// HexToRGB converts a hex color string, with or without a leading "#", to an
// "rgb(r,g,b)" triplet string. Digits are decoded case-insensitively and
// unrecognized characters count as 0; missing digits also count as 0.
func HexToRGB(hex string) string {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	digit := func(i int) int {
		if i >= len(s) {
			return 0
		}
		return decodeDigit(s[i])
	}

	r := digit(0)*16 + digit(1)
	g := digit(2)*16 + digit(3)
	b := digit(4)*16 + digit(5)

	return FormatRGB(r, g, b)
}

// FormatRGB renders channel values as the canonical "rgb(r,g,b)" spelling.
func FormatRGB(r, g, b int) string {
	var sb strings.Builder
	sb.WriteString("rgb(")
	sb.WriteString(strconv.Itoa(clampChannel(r)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(clampChannel(g)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(clampChannel(b)))
	sb.WriteByte(')')
	return sb.String()
}

// ChannelToHex renders a single channel value as two lowercase hex digits.
func ChannelToHex(n int) string {
	n = clampChannel(n)
	return string([]byte{hexDigits[n/16], hexDigits[n%16]})
}

func decodeDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}

func clampChannel(n int) int {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

package netaddr

import (
	"fmt"
	"strings"
)

// eui_grammar.go holds the byte-level parse/format primitives shared by
// EUI-48 and EUI-64 (§4.1): IEEE dash, UNIX colon (optional zero-pad),
// Cisco dot-hextet, bare hex, and PostgreSQL split-halves. Each strategy
// parameterizes these by its byte width (6 or 8).

const hexDigitsLower = "0123456789abcdef"
const hexDigitsUpper = "0123456789ABCDEF"

func hexNibble(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

func isHexString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexNibble(s[i]); !ok {
			return false
		}
	}
	return true
}

// decodeHexPairs decodes a hex string of exactly 2*n characters into n
// bytes.
func decodeHexPairs(s string, n int) ([]byte, error) {
	if len(s) != 2*n || !isHexString(s) {
		return nil, fmt.Errorf("expected %d hex characters", 2*n)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		hi, _ := hexNibble(s[2*i])
		lo, _ := hexNibble(s[2*i+1])
		out[i] = byte(hi<<4 | lo)
	}
	return out, nil
}

// parseEUIBytes parses s into n bytes, trying (in order) the bare,
// IEEE-dash, UNIX-colon, Cisco-dot, and PostgreSQL grammars. The first
// grammar that fully matches the input's shape wins; this is the
// "strictest fully-matching grammar" tie-break of §4.1.
func parseEUIBytes(s string, n int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty input")
	}

	if b, err := decodeHexPairs(s, n); err == nil {
		return b, nil
	}

	if dashParts := strings.Split(s, "-"); len(dashParts) == n {
		if b, err := decodeFixedGroups(dashParts, 2); err == nil {
			return b, nil
		}
	}

	if colonParts := strings.Split(s, ":"); len(colonParts) == n {
		if b, err := decodeLenientGroups(colonParts); err == nil {
			return b, nil
		}
	}

	if n%2 == 0 {
		if dotParts := strings.Split(s, "."); len(dotParts) == n/2 {
			if b, err := decodeFixedGroups(dotParts, 4); err == nil {
				return b, nil
			}
		}
	}

	if halves := strings.Split(s, ":"); len(halves) == 2 && len(halves[0]) == n && len(halves[1]) == n {
		if b0, err0 := decodeHexPairs(halves[0], n/2); err0 == nil {
			if b1, err1 := decodeHexPairs(halves[1], n/2); err1 == nil {
				return append(b0, b1...), nil
			}
		}
	}

	return nil, fmt.Errorf("%q does not match any recognized EUI grammar", s)
}

// decodeFixedGroups requires every group to be exactly width hex
// characters (IEEE dash groups of 2, Cisco dot groups of 4).
func decodeFixedGroups(groups []string, width int) ([]byte, error) {
	out := make([]byte, 0, len(groups)*width/2)
	for _, g := range groups {
		if len(g) != width {
			return nil, fmt.Errorf("group %q must be %d hex characters", g, width)
		}
		b, err := decodeHexPairs(padHex(g), len(g)/2+len(g)%2)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// decodeLenientGroups accepts 1 or 2 hex characters per group, padding a
// single-character group with a leading zero (UNIX zero-compressed
// form: "a:bb:cc:dd:ee:ff").
func decodeLenientGroups(groups []string) ([]byte, error) {
	out := make([]byte, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 || len(g) > 2 {
			return nil, fmt.Errorf("group %q must be 1-2 hex characters", g)
		}
		b, err := decodeHexPairs(padHex(g), 1)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func padHex(s string) string {
	if len(s)%2 == 1 {
		return "0" + s
	}
	return s
}

// formatEUIBytes renders b per dialect d. b's length (6 or 8) is carried
// through unchanged; Cisco/PGSQL require an even length.
func formatEUIBytes(b []byte, d Dialect) string {
	switch d {
	case DialectMacUnix:
		return formatEUISep(b, ':', hexDigitsLower, false)
	case DialectMacUnixExpanded:
		return formatEUISep(b, ':', hexDigitsLower, true)
	case DialectMacCisco:
		return formatEUICisco(b)
	case DialectMacBare:
		return strings.ToUpper(hexEncode(b, hexDigitsLower))
	case DialectMacPgsql:
		return formatEUIPgsql(b)
	default: // DialectCanonical: IEEE dash, uppercase, zero-padded
		return formatEUISep(b, '-', hexDigitsUpper, true)
	}
}

func hexEncode(b []byte, hex string) string {
	buf := make([]byte, len(b)*2)
	for i, c := range b {
		buf[2*i] = hex[c>>4]
		buf[2*i+1] = hex[c&0x0f]
	}
	return string(buf)
}

func formatEUISep(b []byte, sep byte, hex string, zeroPad bool) string {
	parts := make([]string, len(b))
	for i, c := range b {
		if zeroPad || c > 0x0f {
			parts[i] = string([]byte{hex[c>>4], hex[c&0x0f]})
		} else {
			parts[i] = string([]byte{hex[c&0x0f]})
		}
	}
	return strings.Join(parts, string(sep))
}

func formatEUICisco(b []byte) string {
	groups := make([]string, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		groups = append(groups, hexEncode(b[i:i+2], hexDigitsLower))
	}
	return strings.Join(groups, ".")
}

func formatEUIPgsql(b []byte) string {
	half := len(b) / 2
	return hexEncode(b[:half], hexDigitsLower) + ":" + hexEncode(b[half:], hexDigitsLower)
}

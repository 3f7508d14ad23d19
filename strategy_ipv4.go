package netaddr

import (
	"fmt"
	"strconv"
	"strings"
)

type ipv4Strategy struct{}

func (ipv4Strategy) Family() Family  { return IPv4 }
func (ipv4Strategy) Width() int      { return 32 }
func (ipv4Strategy) MaxInt() uint128 { return maxUint128(32) }
func (ipv4Strategy) WordSize() int   { return 8 }
func (ipv4Strategy) WordCount() int  { return 4 }

// Parse implements the two IPv4 grammars of §4.1: permissive inet_aton
// (default, accepts octal/hex octets and 1-4 part packed forms) and
// strict INET_PTON (exactly four decimal octets, no leading zeros).
func (ipv4Strategy) Parse(text string, flags Flags) (uint128, error) {
	if flags.has(INET_PTON) {
		v, err := parseIPv4Strict(text)
		if err != nil {
			return uint128{}, newFormatError(text, err)
		}
		return uint128From64(uint64(v)), nil
	}

	s := text
	if flags.has(ZEROFILL) {
		s = zerofillIPv4(s)
	}
	v, err := parseIPv4Loose(s)
	if err != nil {
		return uint128{}, newFormatError(text, err)
	}
	return uint128From64(uint64(v)), nil
}

func (ipv4Strategy) Format(v uint128, d Dialect) string {
	x := uint32(v.lo)
	return fmt.Sprintf("%d.%d.%d.%d", x>>24, (x>>16)&0xff, (x>>8)&0xff, x&0xff)
}

func (s ipv4Strategy) IntToPacked(v uint128) []byte {
	x := uint32(v.lo)
	return []byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
}

func (ipv4Strategy) PackedToInt(b []byte) (uint128, error) {
	if len(b) != 4 {
		return uint128{}, fmt.Errorf("%w: expected 4 bytes, got %d", ErrAddrFormat, len(b))
	}
	x := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return uint128From64(uint64(x)), nil
}

func (ipv4Strategy) WordSplit(v uint128) []uint32 {
	x := uint32(v.lo)
	return []uint32{x >> 24, (x >> 16) & 0xff, (x >> 8) & 0xff, x & 0xff}
}

func (ipv4Strategy) WordJoin(words []uint32) (uint128, error) {
	if len(words) != 4 {
		return uint128{}, fmt.Errorf("%w: expected 4 words, got %d", ErrAddrFormat, len(words))
	}
	var x uint32
	for _, w := range words {
		if w > 0xff {
			return uint128{}, fmt.Errorf("%w: word %d out of range", ErrAddrFormat, w)
		}
		x = x<<8 | w
	}
	return uint128From64(uint64(x)), nil
}

// parseIPv4Strict implements INET_PTON: exactly four decimal octets,
// 0..255, no leading zeros (except the literal "0").
func parseIPv4Strict(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("expected 4 dotted octets, got %d", len(parts))
	}
	var result uint32
	for _, p := range parts {
		if p == "" || len(p) > 3 {
			return 0, fmt.Errorf("invalid octet %q", p)
		}
		if p[0] == '0' && len(p) > 1 {
			return 0, fmt.Errorf("octet %q has a leading zero", p)
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return 0, fmt.Errorf("octet %q is not decimal", p)
			}
		}
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil || v > 255 {
			return 0, fmt.Errorf("octet %q out of range", p)
		}
		result = result<<8 | uint32(v)
	}
	return result, nil
}

// zerofillIPv4 strips leading zeros from each dotted component so the
// default inet_aton parse cannot mistake a zero-padded decimal octet for
// octal.
func zerofillIPv4(s string) string {
	parts := strings.Split(s, ".")
	for i, p := range parts {
		trimmed := strings.TrimLeft(p, "0")
		if trimmed == "" && p != "" {
			trimmed = "0"
		}
		parts[i] = trimmed
	}
	return strings.Join(parts, ".")
}

// parseIPv4Loose implements default-mode inet_aton parsing: 1-4 dotted
// parts, each octal (leading 0), hex (leading 0x/0X), or decimal, with
// the historical packed interpretation when fewer than 4 parts are given
// (e.g. "a.b" -> a<<24 | b, b a 24-bit field).
func parseIPv4Loose(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("empty address")
	}
	parts := strings.Split(s, ".")
	n := len(parts)
	if n < 1 || n > 4 {
		return 0, fmt.Errorf("expected 1-4 dotted parts, got %d", n)
	}

	var result uint64
	for i, p := range parts {
		v, err := parseInetAtonPart(p)
		if err != nil {
			return 0, err
		}
		width := 8
		if i == n-1 {
			width = 32 - 8*i
		}
		if v >= uint64(1)<<uint(width) {
			return 0, fmt.Errorf("part %q out of range for position %d", p, i)
		}
		result = result<<uint(width) | v
	}
	return uint32(result), nil
}

// parseInetAtonPart parses a single dotted component as octal (leading
// "0"), hex (leading "0x"/"0X"), or decimal.
func parseInetAtonPart(p string) (uint64, error) {
	if p == "" {
		return 0, fmt.Errorf("empty octet")
	}
	switch {
	case len(p) > 1 && (p[1] == 'x' || p[1] == 'X') && p[0] == '0':
		return strconv.ParseUint(p[2:], 16, 64)
	case len(p) > 1 && p[0] == '0':
		return strconv.ParseUint(p, 8, 64)
	default:
		return strconv.ParseUint(p, 10, 64)
	}
}

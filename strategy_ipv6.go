package netaddr

import (
	"fmt"
	"net/netip"
	"strings"
)

type ipv6Strategy struct{}

func (ipv6Strategy) Family() Family  { return IPv6 }
func (ipv6Strategy) Width() int      { return 128 }
func (ipv6Strategy) MaxInt() uint128 { return maxUint128(128) }
func (ipv6Strategy) WordSize() int   { return 16 }
func (ipv6Strategy) WordCount() int  { return 8 }

// splitZone separates a trailing "%zone" suffix from an IPv6 literal. A
// zone containing "/" is rejected outright, per §4.1.
func splitZone(text string) (base, zone string, err error) {
	if i := strings.IndexByte(text, '%'); i >= 0 {
		zone = text[i+1:]
		if strings.ContainsRune(zone, '/') {
			return "", "", fmt.Errorf("zone %q must not contain '/'", zone)
		}
		return text[:i], zone, nil
	}
	return text, "", nil
}

// Parse implements the RFC 4291 grammar: full/compressed hextets with at
// most one "::" elision, an optional embedded IPv4 tail, and a trailing
// zone suffix. The heavy lifting (elision, embedded-v4) is delegated to
// net/netip, which already implements this grammar; the zone is stripped
// here (it never affects the integer value) and is recovered separately
// by the address layer via splitZone.
func (ipv6Strategy) Parse(text string, flags Flags) (uint128, error) {
	base, _, err := splitZone(text)
	if err != nil {
		return uint128{}, newFormatError(text, err)
	}
	addr, err := netip.ParseAddr(base)
	if err != nil {
		return uint128{}, newFormatError(text, err)
	}
	if addr.Is4() {
		// A bare dotted-quad is not a valid IPv6 literal in this grammar;
		// only the ::ffff:a.b.c.d / ::a.b.c.d embedded forms are.
		return uint128{}, newFormatError(text, fmt.Errorf("not an IPv6 literal"))
	}
	return uint128From16(addr.As16()), nil
}

// Format renders v per d. DialectCanonical and the unrecognized default
// produce the RFC 5952 compact form (delegated to net/netip, which
// implements the same lowercase/longest-run/leftmost-tie algorithm
// described in §4.1); DialectFull suppresses the "::" collapse without
// suppressing per-hextet leading zeros; DialectVerbose is DialectFull
// uppercased.
func (s ipv6Strategy) Format(v uint128, d Dialect) string {
	b := v.bytes16()
	addr := netip.AddrFrom16(b)
	switch d {
	case DialectFull, DialectVerbose:
		words := s.WordSplit(v)
		parts := make([]string, 8)
		for i, w := range words {
			parts[i] = fmt.Sprintf("%04x", w)
		}
		full := strings.Join(parts, ":")
		if d == DialectVerbose {
			full = strings.ToUpper(full)
		}
		return full
	default:
		return addr.String()
	}
}

func (ipv6Strategy) IntToPacked(v uint128) []byte {
	b := v.bytes16()
	return b[:]
}

func (ipv6Strategy) PackedToInt(b []byte) (uint128, error) {
	if len(b) != 16 {
		return uint128{}, fmt.Errorf("%w: expected 16 bytes, got %d", ErrAddrFormat, len(b))
	}
	var arr [16]byte
	copy(arr[:], b)
	return uint128From16(arr), nil
}

func (ipv6Strategy) WordSplit(v uint128) []uint32 {
	b := v.bytes16()
	words := make([]uint32, 8)
	for i := 0; i < 8; i++ {
		words[i] = uint32(b[2*i])<<8 | uint32(b[2*i+1])
	}
	return words
}

func (ipv6Strategy) WordJoin(words []uint32) (uint128, error) {
	if len(words) != 8 {
		return uint128{}, fmt.Errorf("%w: expected 8 words, got %d", ErrAddrFormat, len(words))
	}
	var b [16]byte
	for i, w := range words {
		if w > 0xffff {
			return uint128{}, fmt.Errorf("%w: word %d out of range", ErrAddrFormat, w)
		}
		b[2*i] = byte(w >> 8)
		b[2*i+1] = byte(w)
	}
	return uint128From16(b), nil
}

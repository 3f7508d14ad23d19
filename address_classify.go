package netaddr

import "strings"

// IsUnspecified reports whether a is the all-zeros address for its family
// (0.0.0.0 or ::).
func (a IPAddress) IsUnspecified() bool { return a.IsValid() && a.value.isZero() }

// IsLoopback reports whether a is a loopback address (127.0.0.0/8 or ::1).
func (a IPAddress) IsLoopback() bool {
	switch a.fam {
	case IPv4:
		return v4Loopback.contains(a.v4())
	case IPv6:
		return a.value.cmp(uint128From64(1)) == 0
	default:
		return false
	}
}

// IsPrivate reports whether a falls in a private-use block: the RFC 1918
// ranges for IPv4, or the unique local block fc00::/7 for IPv6.
func (a IPAddress) IsPrivate() bool {
	switch a.fam {
	case IPv4:
		v := a.v4()
		for _, b := range v4Private {
			if b.contains(v) {
				return true
			}
		}
		return false
	case IPv6:
		return v6Private.contains(a.value.bytes16())
	default:
		return false
	}
}

// IsLinkLocalUnicast reports whether a is a link-local unicast address
// (169.254.0.0/16 or fe80::/10).
func (a IPAddress) IsLinkLocalUnicast() bool {
	switch a.fam {
	case IPv4:
		return v4LinkLocal.contains(a.v4())
	case IPv6:
		return v6LinkLocal.contains(a.value.bytes16())
	default:
		return false
	}
}

// IsLinkLocalMulticast reports whether a is a link-local multicast address
// (224.0.0.0/24 or ff02::/16).
func (a IPAddress) IsLinkLocalMulticast() bool {
	switch a.fam {
	case IPv4:
		return v4LinkMulti.contains(a.v4())
	case IPv6:
		return v6LinkMulti.contains(a.value.bytes16())
	default:
		return false
	}
}

// IsInterfaceLocalMulticast reports whether a is an interface-local
// multicast address (ff01::/16). IPv4 has no equivalent scope and always
// returns false.
func (a IPAddress) IsInterfaceLocalMulticast() bool {
	return a.fam == IPv6 && v6IfaceMulti.contains(a.value.bytes16())
}

// IsMulticast reports whether a is a multicast address (224.0.0.0/4 or
// ff00::/8).
func (a IPAddress) IsMulticast() bool {
	switch a.fam {
	case IPv4:
		return v4Multicast.contains(a.v4())
	case IPv6:
		return v6Multicast.contains(a.value.bytes16())
	default:
		return false
	}
}

// IsGlobalUnicast reports whether a is neither unspecified, loopback,
// multicast, nor link-local unicast. Private addresses are global unicast
// in this sense — they route fine within their own network, just not
// across the public internet.
func (a IPAddress) IsGlobalUnicast() bool {
	return a.IsValid() &&
		!a.IsUnspecified() &&
		!a.IsLoopback() &&
		!a.IsMulticast() &&
		!a.IsLinkLocalUnicast()
}

// IsReserved reports whether a falls in the IPv4 Class E block
// 240.0.0.0/4. IPv6 has no equivalent and always returns false.
func (a IPAddress) IsReserved() bool {
	return a.fam == IPv4 && v4Reserved.contains(a.v4())
}

// IsDocumentation reports whether a is reserved for documentation and
// examples (the IPv4 TEST-NET blocks or 2001:db8::/32).
func (a IPAddress) IsDocumentation() bool {
	switch a.fam {
	case IPv4:
		v := a.v4()
		for _, b := range v4Documentation {
			if b.contains(v) {
				return true
			}
		}
		return false
	case IPv6:
		return v6Documentation.contains(a.value.bytes16())
	default:
		return false
	}
}

// IsSharedAddress reports whether a falls in the carrier-grade NAT block
// 100.64.0.0/10 (RFC 6598). IPv6 always returns false.
func (a IPAddress) IsSharedAddress() bool {
	return a.fam == IPv4 && v4SharedCGNAT.contains(a.v4())
}

// IsBenchmark reports whether a is a benchmarking address (198.18.0.0/15
// or 2001:2::/48).
func (a IPAddress) IsBenchmark() bool {
	switch a.fam {
	case IPv4:
		return v4Benchmark.contains(a.v4())
	case IPv6:
		return v6Benchmark.contains(a.value.bytes16())
	default:
		return false
	}
}

// IsRoutable reports whether a is usable as a unicast source or
// destination on an ordinary network: valid, not unspecified, not
// loopback, not link-local, not multicast, and not the IPv4 limited
// broadcast address. Private addresses are routable within their own
// network and count as routable here, as they also count as global
// unicast in IsGlobalUnicast.
func (a IPAddress) IsRoutable() bool {
	if !a.IsValid() {
		return false
	}
	if a.fam == IPv4 && a.v4() == v4Broadcast {
		return false
	}
	return !a.IsLoopback() && !a.IsLinkLocalUnicast() && !a.IsUnspecified() && !a.IsMulticast()
}

// IsIPv4Mapped reports whether a is an IPv6 address in the ::ffff:0:0/96
// block, carrying an IPv4 address using the mapped-address convention of
// RFC 4291 §2.5.5.2. Always false for IPv4.
func (a IPAddress) IsIPv4Mapped() bool {
	return a.fam == IPv6 && v6Mapped.contains(a.value.bytes16())
}

// IsIPv4Compatible reports whether a is an IPv6 address in the deprecated
// ::0.0.0.0/96 compatible-address block of RFC 4291 §2.5.5.1, excluding
// the unspecified and loopback addresses which also match that prefix.
func (a IPAddress) IsIPv4Compatible() bool {
	if a.fam != IPv6 || !v6Compat.contains(a.value.bytes16()) {
		return false
	}
	return !a.IsUnspecified() && !a.IsLoopback()
}

// v4 returns a's value truncated to the low 32 bits, valid only when
// a.fam == IPv4.
func (a IPAddress) v4() uint32 { return uint32(a.value.lo) }

// ReverseDNSName returns the in-addr.arpa (IPv4) or ip6.arpa (IPv6) name
// used for reverse DNS lookups of a, without a trailing dot.
func (a IPAddress) ReverseDNSName() string {
	switch a.fam {
	case IPv4:
		b := a.Packed()
		return formatReverseV4(b)
	case IPv6:
		b := a.Packed()
		return formatReverseV6(b)
	default:
		return ""
	}
}

func formatReverseV4(b []byte) string {
	var sb strings.Builder
	for i := len(b) - 1; i >= 0; i-- {
		sb.WriteString(itoaByte(b[i]))
		sb.WriteByte('.')
	}
	sb.WriteString("in-addr.arpa")
	return sb.String()
}

func formatReverseV6(b []byte) string {
	const hexDigits = "0123456789abcdef"
	var sb strings.Builder
	for i := len(b) - 1; i >= 0; i-- {
		sb.WriteByte(hexDigits[b[i]&0x0f])
		sb.WriteByte('.')
		sb.WriteByte(hexDigits[b[i]>>4])
		sb.WriteByte('.')
	}
	sb.WriteString("ip6.arpa")
	return sb.String()
}

func itoaByte(b byte) string {
	switch {
	case b < 10:
		return string([]byte{'0' + b})
	case b < 100:
		return string([]byte{'0' + b/10, '0' + b%10})
	default:
		return string([]byte{'0' + b/100, '0' + (b/10)%10, '0' + b%10})
	}
}

// Classification summarizes every predicate in this file in one call, for
// callers that want to log or branch on an address's category without
// calling each predicate individually.
type Classification struct {
	IsUnspecified             bool
	IsLoopback                bool
	IsPrivate                 bool
	IsLinkLocalUnicast        bool
	IsLinkLocalMulticast      bool
	IsInterfaceLocalMulticast bool
	IsMulticast               bool
	IsGlobalUnicast           bool
	IsReserved                bool
	IsDocumentation           bool
	IsSharedAddress           bool
	IsBenchmark               bool
	IsRoutable                bool
}

// Classify evaluates every classification predicate for a in one pass.
func (a IPAddress) Classify() Classification {
	return Classification{
		IsUnspecified:             a.IsUnspecified(),
		IsLoopback:                a.IsLoopback(),
		IsPrivate:                 a.IsPrivate(),
		IsLinkLocalUnicast:        a.IsLinkLocalUnicast(),
		IsLinkLocalMulticast:      a.IsLinkLocalMulticast(),
		IsInterfaceLocalMulticast: a.IsInterfaceLocalMulticast(),
		IsMulticast:               a.IsMulticast(),
		IsGlobalUnicast:           a.IsGlobalUnicast(),
		IsReserved:                a.IsReserved(),
		IsDocumentation:           a.IsDocumentation(),
		IsSharedAddress:           a.IsSharedAddress(),
		IsBenchmark:               a.IsBenchmark(),
		IsRoutable:                a.IsRoutable(),
	}
}

// String renders the most specific label matching c, in the same
// loopback-before-private-before-global-unicast priority order as the
// predicates above.
func (c Classification) String() string {
	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsLoopback, "loopback"},
		{c.IsUnspecified, "unspecified"},
		{c.IsPrivate, "private"},
		{c.IsLinkLocalUnicast, "link-local-unicast"},
		{c.IsLinkLocalMulticast, "link-local-multicast"},
		{c.IsInterfaceLocalMulticast, "interface-local-multicast"},
		{c.IsDocumentation, "documentation"},
		{c.IsSharedAddress, "shared-address"},
		{c.IsBenchmark, "benchmark"},
		{c.IsReserved, "reserved"},
		{c.IsMulticast, "multicast"},
		{c.IsGlobalUnicast, "global-unicast"},
	}
	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	return "unknown"
}

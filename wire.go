package netaddr

import (
	"net/netip"

	"go4.org/netipx"
)

// wire.go bridges this package's IPv4/IPv6 types to net/netip and
// go4.org/netipx, for callers that need to hand a block or set to code
// built on the standard library's address types (an HTTP allowlist
// middleware, a net.Listener ACL, and so on).

// ToNetipPrefix converts n to a net/netip.Prefix. EUI families have no
// netip equivalent and are rejected with ErrAddrConversion.
func (n IPNetwork) ToNetipPrefix() (netip.Prefix, error) {
	if !n.Family().IsIP() {
		return netip.Prefix{}, newConversionError(n.Family(), IPv4)
	}
	addr, err := netipAddrFromBytes(n.addr.Packed())
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, n.prefixLen), nil
}

// NetworkFromNetipPrefix converts a net/netip.Prefix into an IPNetwork.
func NetworkFromNetipPrefix(p netip.Prefix) (IPNetwork, error) {
	if !p.IsValid() {
		return IPNetwork{}, newFormatError(p.String(), ErrAddrFormat)
	}
	addr, err := IPAddressFromBytes(p.Addr().AsSlice())
	if err != nil {
		return IPNetwork{}, err
	}
	return NewIPNetwork(addr, p.Bits())
}

// ToNetipPrefixes renders every block of s as a net/netip.Prefix,
// dropping nothing since IPSet only ever stores IPv4/IPv6 blocks.
func (s *IPSet) ToNetipPrefixes() ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(s.cidrs))
	for _, n := range s.cidrs {
		p, err := n.ToNetipPrefix()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// SetFromNetipPrefixes builds an IPSet from a slice of net/netip
// prefixes, the inverse of ToNetipPrefixes.
func SetFromNetipPrefixes(prefixes []netip.Prefix) (*IPSet, error) {
	nets := make([]IPNetwork, len(prefixes))
	for i, p := range prefixes {
		n, err := NetworkFromNetipPrefix(p)
		if err != nil {
			return nil, err
		}
		nets[i] = n
	}
	return NewIPSet(nets...), nil
}

// SetFromNetipSet builds an IPSet from a *netipx.IPSet, letting callers
// assemble a block list with netipx.IPSetBuilder (which already handles
// incremental range/prefix accumulation) and hand the result off to this
// package's algebra.
func SetFromNetipSet(ns *netipx.IPSet) (*IPSet, error) {
	return SetFromNetipPrefixes(ns.Prefixes())
}

// ToNetipRange renders r as a go4.org/netipx.IPRange.
func (r IPRange) ToNetipRange() (netipx.IPRange, error) {
	if !r.Family().IsIP() {
		return netipx.IPRange{}, newConversionError(r.Family(), IPv4)
	}
	from, err := netipAddrFromBytes(r.first.Packed())
	if err != nil {
		return netipx.IPRange{}, err
	}
	to, err := netipAddrFromBytes(r.last.Packed())
	if err != nil {
		return netipx.IPRange{}, err
	}
	return netipx.IPRangeFrom(from, to), nil
}

// RangeFromNetipRange converts a go4.org/netipx.IPRange into an IPRange.
func RangeFromNetipRange(nr netipx.IPRange) (IPRange, error) {
	if !nr.IsValid() {
		return IPRange{}, newFormatError("", ErrAddrFormat)
	}
	first, err := IPAddressFromBytes(nr.From().AsSlice())
	if err != nil {
		return IPRange{}, err
	}
	last, err := IPAddressFromBytes(nr.To().AsSlice())
	if err != nil {
		return IPRange{}, err
	}
	return NewIPRange(first, last)
}

func netipAddrFromBytes(b []byte) (netip.Addr, error) {
	switch len(b) {
	case 4:
		var a4 [4]byte
		copy(a4[:], b)
		return netip.AddrFrom4(a4), nil
	case 16:
		var a16 [16]byte
		copy(a16[:], b)
		return netip.AddrFrom16(a16), nil
	default:
		return netip.Addr{}, newFormatError("", errBytesLength(len(b)))
	}
}

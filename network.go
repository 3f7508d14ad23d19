package netaddr

import (
	"fmt"
	"iter"
	"math/big"
	"strconv"
	"strings"
)

// IPNetwork is a CIDR block: an address plus a prefix length. The address
// and prefix need not be aligned — "10.0.0.1/24" keeps 10.0.0.1 as its
// Address while Network() computes the masked base 10.0.0.0.
type IPNetwork struct {
	addr      IPAddress
	prefixLen int
}

// Family returns the network's address family.
func (n IPNetwork) Family() Family { return n.addr.fam }

// IsValid reports whether n was produced by a successful constructor.
func (n IPNetwork) IsValid() bool {
	return n.addr.IsValid() && n.prefixLen >= 0 && n.prefixLen <= strategyFor(n.addr.fam).Width()
}

// Address returns the address as entered, host bits intact unless NOHOST
// was given at construction.
func (n IPNetwork) Address() IPAddress { return n.addr }

// PrefixLen returns the prefix length.
func (n IPNetwork) PrefixLen() int { return n.prefixLen }

func (n IPNetwork) maskValue() uint128 {
	width := strategyFor(n.addr.fam).Width()
	if n.prefixLen >= width {
		return maxUint128(width)
	}
	return maxUint128(n.prefixLen).lsh(uint(width - n.prefixLen))
}

// Netmask returns the prefix length expressed as a dotted/hex mask
// address of the same family (e.g. 255.255.255.0 for a /24).
func (n IPNetwork) Netmask() IPAddress {
	return IPAddress{value: n.maskValue(), fam: n.addr.fam}
}

// Hostmask returns the inverse of Netmask (e.g. 0.0.0.255 for a /24).
func (n IPNetwork) Hostmask() IPAddress {
	width := strategyFor(n.addr.fam).Width()
	return IPAddress{value: n.maskValue().not().and(maxUint128(width)), fam: n.addr.fam}
}

// Network returns the prefix-aligned base address (n.Address masked by
// Netmask).
func (n IPNetwork) Network() IPAddress {
	return IPAddress{value: n.addr.value.and(n.maskValue()), fam: n.addr.fam, zone: n.addr.zone}
}

// Broadcast returns the last address in the block (the all-ones host
// portion). Conventional name kept from IPv4 usage; applies equally to
// IPv6 as the block's last address.
func (n IPNetwork) Broadcast() IPAddress {
	width := strategyFor(n.addr.fam).Width()
	hostMask := n.maskValue().not().and(maxUint128(width))
	return IPAddress{value: n.Network().value.or(hostMask), fam: n.addr.fam}
}

// Size returns the number of addresses in the block, 2^(width-prefix),
// as a big integer since IPv6 blocks can vastly exceed 64 bits.
func (n IPNetwork) Size() *big.Int {
	width := strategyFor(n.addr.fam).Width()
	hostBits := width - n.prefixLen
	return new(big.Int).Lsh(big.NewInt(1), uint(hostBits))
}

// Contains reports whether addr falls within n's address range.
func (n IPNetwork) Contains(addr IPAddress) bool {
	if addr.Family() != n.addr.fam {
		return false
	}
	return addr.value.cmp(n.Network().value) >= 0 && addr.value.cmp(n.Broadcast().value) <= 0
}

// ContainsNetwork reports whether every address in o also falls in n.
func (n IPNetwork) ContainsNetwork(o IPNetwork) bool {
	if o.Family() != n.addr.fam {
		return false
	}
	return o.Network().value.cmp(n.Network().value) >= 0 && o.Broadcast().value.cmp(n.Broadcast().value) <= 0
}

// String renders n as "<address>/<prefix>" using the address's canonical
// form, per the entered (unmasked) address.
func (n IPNetwork) String() string {
	if !n.IsValid() {
		return ""
	}
	return n.addr.String() + "/" + strconv.Itoa(n.prefixLen)
}

// NewIPNetwork builds a network from an address and explicit prefix
// length. With NOHOST set, the stored address is masked to the network
// base.
func NewIPNetwork(addr IPAddress, prefixLen int, flags ...Flags) (IPNetwork, error) {
	if !addr.IsValid() {
		return IPNetwork{}, newConversionError(addr.fam, addr.fam)
	}
	width := strategyFor(addr.fam).Width()
	if prefixLen < 0 || prefixLen > width {
		return IPNetwork{}, newFormatError(strconv.Itoa(prefixLen), ErrAddrFormat)
	}
	n := IPNetwork{addr: addr, prefixLen: prefixLen}
	var f Flags
	for _, x := range flags {
		f |= x
	}
	if f.has(NOHOST) {
		n.addr = n.Network()
	}
	return n, nil
}

// ParseIPNetwork parses "addr/prefix", "addr/netmask" (IPv4 dotted
// netmask or hostmask), or a bare address defaulting to a /32 (IPv4) or
// /128 (IPv6) host route. IPv4 also accepts verbose abbreviations like
// "10/8" or "192.168/16", where missing trailing octets are zero-filled.
func ParseIPNetwork(text string, flags ...Flags) (IPNetwork, error) {
	addrPart, prefixPart, hasSlash := strings.Cut(text, "/")

	fam := detectIPFamily(addrPart)
	if fam == IPv4 {
		addrPart = expandVerboseIPv4(addrPart)
	}

	addr, err := ParseIPAddress(addrPart)
	if err != nil {
		return IPNetwork{}, newFormatError(text, err)
	}

	width := strategyFor(addr.fam).Width()
	if !hasSlash {
		return NewIPNetwork(addr, width, flags...)
	}

	prefixLen, err := parsePrefixOrMask(prefixPart, addr.fam, width)
	if err != nil {
		return IPNetwork{}, newFormatError(text, err)
	}
	return NewIPNetwork(addr, prefixLen, flags...)
}

// expandVerboseIPv4 zero-fills a partial dotted address ("10", "192.168")
// to four octets, left-justified, for the classful-ish abbreviations
// accepted before a prefix length. Addresses that are already complete,
// or not purely numeric-dotted, pass through unchanged and let the
// strategy parser reject or accept them on its own terms.
func expandVerboseIPv4(s string) string {
	parts := strings.Split(s, ".")
	if len(parts) == 0 || len(parts) > 4 {
		return s
	}
	for _, p := range parts {
		if p == "" {
			return s
		}
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return s
			}
		}
	}
	for len(parts) < 4 {
		parts = append(parts, "0")
	}
	return strings.Join(parts, ".")
}

func parsePrefixOrMask(s string, fam Family, width int) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > width {
			return 0, fmt.Errorf("%w: prefix length %d out of range for %s", ErrAddrFormat, n, fam)
		}
		return n, nil
	}
	if fam != IPv4 {
		return 0, fmt.Errorf("%w: %q is not a valid prefix length", ErrAddrFormat, s)
	}
	mask, err := ParseIPAddress(s, INET_PTON)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid prefix length or netmask", ErrAddrFormat, s)
	}
	if n, ok := contiguousOnesPrefix(uint32(mask.value.lo), 32); ok {
		return n, nil
	}
	if n, ok := contiguousOnesPrefix(^uint32(mask.value.lo), 32); ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q is not a contiguous netmask or hostmask", ErrAddrFormat, s)
}

// contiguousOnesPrefix reports the prefix length if v's top bits (within
// width bits) are a contiguous run of ones followed by a contiguous run
// of zeros, e.g. 255.255.255.0 -> (24, true).
func contiguousOnesPrefix(v uint32, width int) (int, bool) {
	seenZero := false
	n := 0
	for i := width - 1; i >= 0; i-- {
		bit := v&(1<<uint(i)) != 0
		if bit {
			if seenZero {
				return 0, false
			}
			n++
		} else {
			seenZero = true
		}
	}
	return n, true
}

// MustParseIPNetwork is like ParseIPNetwork but panics on error.
func MustParseIPNetwork(text string) IPNetwork {
	n, err := ParseIPNetwork(text)
	if err != nil {
		panic(err)
	}
	return n
}

// Subnet returns every prefix-aligned child block of newPrefixLen within
// n, which must be at least as long as n's own prefix.
func (n IPNetwork) Subnet(newPrefixLen int) ([]IPNetwork, error) {
	width := strategyFor(n.addr.fam).Width()
	if newPrefixLen < n.prefixLen || newPrefixLen > width {
		return nil, fmt.Errorf("%w: subnet prefix %d must be in [%d, %d]", ErrAddrFormat, newPrefixLen, n.prefixLen, width)
	}
	step := uint128From64(1).lsh(uint(width - newPrefixLen))
	count := uint128From64(1).lsh(uint(newPrefixLen - n.prefixLen))

	var out []IPNetwork
	base := n.Network().value
	for i := uint128From64(0); i.cmp(count) < 0; i = i.addUint64(1) {
		out = append(out, IPNetwork{addr: IPAddress{value: base, fam: n.addr.fam}, prefixLen: newPrefixLen})
		base = base.add(step)
	}
	return out, nil
}

// Supernet returns the count supernets of n starting at prefix length
// n.PrefixLen()-1 and widening by one bit each step, for up to levels
// steps. Fewer than count results are returned if prefix 0 is reached
// first.
func (n IPNetwork) Supernet(levels, count int) []IPNetwork {
	var out []IPNetwork
	for i := 1; i <= levels && len(out) < count; i++ {
		p := n.prefixLen - i
		if p < 0 {
			break
		}
		mask := maxUint128(p).lsh(uint(strategyFor(n.addr.fam).Width() - p))
		out = append(out, IPNetwork{addr: IPAddress{value: n.addr.value.and(mask), fam: n.addr.fam}, prefixLen: p})
	}
	return out
}

// Addresses returns a lazy iterator over every address in [Network,
// Broadcast], inclusive, in ascending order.
func (n IPNetwork) Addresses() iter.Seq[IPAddress] {
	return func(yield func(IPAddress) bool) {
		cur := n.Network().value
		last := n.Broadcast().value
		for {
			if !yield(IPAddress{value: cur, fam: n.addr.fam}) {
				return
			}
			if cur.cmp(last) >= 0 {
				return
			}
			cur = cur.addUint64(1)
		}
	}
}

// Hosts returns a lazy iterator over the usable host addresses: for IPv4
// prefixes of /30 or shorter it omits the network and broadcast
// addresses (prefixes /31 and /32 have no such reserved addresses and
// yield every address); for IPv6 it omits only the all-zeros
// subnet-router anycast address.
func (n IPNetwork) Hosts() iter.Seq[IPAddress] {
	return func(yield func(IPAddress) bool) {
		width := strategyFor(n.addr.fam).Width()
		network, broadcast := n.Network().value, n.Broadcast().value
		omitBroadcast := n.addr.fam == IPv4 && n.prefixLen <= width-2

		cur := network
		if omitBroadcast || n.addr.fam == IPv6 {
			cur = cur.addUint64(1)
		}
		for cur.cmp(broadcast) <= 0 {
			if omitBroadcast && cur.cmp(broadcast) == 0 {
				return
			}
			if !yield(IPAddress{value: cur, fam: n.addr.fam}) {
				return
			}
			if cur.cmp(broadcast) >= 0 {
				return
			}
			cur = cur.addUint64(1)
		}
	}
}

// CIDRs decomposes n's range into itself — a network is already a single
// CIDR block — returning a one-element slice for symmetry with
// IPRange.CIDRs and IPGlob.ToRange().CIDRs.
func (n IPNetwork) CIDRs() []IPNetwork { return []IPNetwork{n} }

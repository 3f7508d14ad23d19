package netaddr

import (
	"iter"
	"math/big"
)

// IPRange is an arbitrary closed interval [First, Last] of addresses of
// one family, with no alignment requirement.
type IPRange struct {
	first, last IPAddress
}

// NewIPRange builds a range from two addresses of the same family, with
// first <= last.
func NewIPRange(first, last IPAddress) (IPRange, error) {
	if first.Family() != last.Family() {
		return IPRange{}, newConversionError(first.Family(), last.Family())
	}
	if first.value.cmp(last.value) > 0 {
		return IPRange{}, newFormatError("", ErrAddrFormat)
	}
	return IPRange{first: first, last: last}, nil
}

// ParseIPRange parses "first-last" or a single address/CIDR treated as a
// degenerate or network-sized range.
func ParseIPRange(text string) (IPRange, error) {
	if idx := indexUnquoted(text, '-'); idx >= 0 {
		first, err := ParseIPAddress(text[:idx])
		if err != nil {
			return IPRange{}, newFormatError(text, err)
		}
		last, err := ParseIPAddress(text[idx+1:])
		if err != nil {
			return IPRange{}, newFormatError(text, err)
		}
		return NewIPRange(first, last)
	}
	n, err := ParseIPNetwork(text)
	if err != nil {
		return IPRange{}, newFormatError(text, err)
	}
	return NewIPRange(n.Network(), n.Broadcast())
}

// indexUnquoted returns the index of the first occurrence of sep in s
// that isn't part of an IPv6 literal's own colon-delimited grammar — in
// practice this just means the separator must be a literal hyphen, which
// never appears in a bare address, so a plain search suffices.
func indexUnquoted(s string, sep byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return i
		}
	}
	return -1
}

// First returns the range's lowest address.
func (r IPRange) First() IPAddress { return r.first }

// Last returns the range's highest address.
func (r IPRange) Last() IPAddress { return r.last }

// Family returns the range's address family.
func (r IPRange) Family() Family { return r.first.fam }

// IsValid reports whether r was produced by a successful constructor.
func (r IPRange) IsValid() bool { return r.first.IsValid() && r.last.IsValid() }

// String renders r as "<first>-<last>".
func (r IPRange) String() string {
	if !r.IsValid() {
		return ""
	}
	return r.first.String() + "-" + r.last.String()
}

// Size returns the number of addresses in the range as a big integer.
func (r IPRange) Size() *big.Int {
	diff := r.last.value.sub(r.first.value)
	size := new(big.Int).SetUint64(diff.lo)
	if diff.hi != 0 {
		size.Add(size, new(big.Int).Lsh(new(big.Int).SetUint64(diff.hi), 64))
	}
	return size.Add(size, big.NewInt(1))
}

// Contains reports whether addr falls within [First, Last].
func (r IPRange) Contains(addr IPAddress) bool {
	if addr.Family() != r.Family() {
		return false
	}
	return addr.value.cmp(r.first.value) >= 0 && addr.value.cmp(r.last.value) <= 0
}

// ContainsRange reports whether o is entirely within r.
func (r IPRange) ContainsRange(o IPRange) bool {
	if o.Family() != r.Family() {
		return false
	}
	return o.first.value.cmp(r.first.value) >= 0 && o.last.value.cmp(r.last.value) <= 0
}

// Intersects reports whether r and o share any address.
func (r IPRange) Intersects(o IPRange) bool {
	if o.Family() != r.Family() {
		return false
	}
	return r.first.value.cmp(o.last.value) <= 0 && o.first.value.cmp(r.last.value) <= 0
}

// CIDRs decomposes r into the minimal ordered sequence of prefix-aligned
// blocks covering exactly [First, Last].
func (r IPRange) CIDRs() []IPNetwork {
	if !r.IsValid() {
		return nil
	}
	return cidrsForRange(r.first.value, r.last.value, r.Family())
}

// Addresses returns a lazy iterator over every address in the range,
// ascending.
func (r IPRange) Addresses() iter.Seq[IPAddress] {
	return func(yield func(IPAddress) bool) {
		if !r.IsValid() {
			return
		}
		cur := r.first.value
		for {
			if !yield(IPAddress{value: cur, fam: r.first.fam}) {
				return
			}
			if cur.cmp(r.last.value) >= 0 {
				return
			}
			cur = cur.addUint64(1)
		}
	}
}

// IterIPRange is a free-function form of Addresses, kept for symmetry
// with the other free functions at this layer.
func IterIPRange(r IPRange) iter.Seq[IPAddress] { return r.Addresses() }

// IterUniqueIPs returns a lazy iterator over the union of every address
// across ranges, each address yielded at most once, in ascending order.
func IterUniqueIPs(ranges ...IPRange) iter.Seq[IPAddress] {
	return func(yield func(IPAddress) bool) {
		var nets []IPNetwork
		for _, r := range ranges {
			nets = append(nets, r.CIDRs()...)
		}
		set := NewIPSet(nets...)
		for _, n := range set.cidrs {
			for addr := range n.Addresses() {
				if !yield(addr) {
					return
				}
			}
		}
	}
}

package netaddr

import (
	"iter"
	"math/big"
	"sort"
)

// IPSet is a canonical disjoint ordered sequence of CIDR blocks
// representing an arbitrary subset of the combined IPv4 and IPv6 address
// space. Every public operation re-establishes the invariant: sorted
// ascending by (family, first), pairwise non-overlapping, and
// CIDRMerge-irreducible. IPv4 blocks always sort before IPv6.
//
// Equality is structural: two sets are Equal only if their canonical
// CIDR lists match element for element, not merely if they denote the
// same point set through a different (non-canonical) list — since every
// public constructor and mutator leaves its result in canonical form
// (through CIDRMerge, or in Remove and Difference by splitting blocks of
// an already canonical list), two sets built from equivalent inputs always converge to the same
// canonical list, so this coincides with denotational equality in
// practice.
type IPSet struct {
	cidrs []IPNetwork
}

// NewIPSet builds a set from zero or more networks, canonicalizing them.
func NewIPSet(nets ...IPNetwork) *IPSet {
	return &IPSet{cidrs: CIDRMerge(nets)}
}

// IPSetFromAddresses builds a set from individual host addresses.
func IPSetFromAddresses(addrs ...IPAddress) *IPSet {
	nets := make([]IPNetwork, len(addrs))
	for i, a := range addrs {
		nets[i] = hostNetwork(a)
	}
	return NewIPSet(nets...)
}

// IPSetFromRanges builds a set from arbitrary ranges, each decomposed
// into CIDRs before merging.
func IPSetFromRanges(ranges ...IPRange) *IPSet {
	var nets []IPNetwork
	for _, r := range ranges {
		nets = append(nets, r.CIDRs()...)
	}
	return NewIPSet(nets...)
}

func hostNetwork(a IPAddress) IPNetwork {
	return IPNetwork{addr: a, prefixLen: strategyFor(a.fam).Width()}
}

// Add merges nets into s in place.
func (s *IPSet) Add(nets ...IPNetwork) {
	s.cidrs = CIDRMerge(append(append([]IPNetwork{}, s.cidrs...), nets...))
}

// AddAddress adds a single host address to s in place.
func (s *IPSet) AddAddress(a IPAddress) { s.Add(hostNetwork(a)) }

// AddRange adds every address of r to s in place.
func (s *IPSet) AddRange(r IPRange) { s.Add(r.CIDRs()...) }

// Remove excludes nets from s in place.
func (s *IPSet) Remove(nets ...IPNetwork) {
	result := s.cidrs
	for _, n := range nets {
		result = subtractOne(result, n)
	}
	s.cidrs = result
}

// RemoveAddress excludes a single host address from s in place.
func (s *IPSet) RemoveAddress(a IPAddress) { s.Remove(hostNetwork(a)) }

func subtractOne(list []IPNetwork, remove IPNetwork) []IPNetwork {
	var out []IPNetwork
	for _, n := range list {
		if n.Family() != remove.Family() {
			out = append(out, n)
			continue
		}
		excluded, err := CIDRExclude(n, remove)
		if err != nil {
			out = append(out, n)
			continue
		}
		out = append(out, excluded...)
	}
	return out
}

// Union returns a new set containing every address in s or o.
func (s *IPSet) Union(o *IPSet) *IPSet {
	return NewIPSet(append(append([]IPNetwork{}, s.cidrs...), o.cidrs...)...)
}

// Intersect returns a new set containing every address in both s and o.
// Two CIDR blocks from a canonical list are either disjoint or one
// contains the other, so their intersection is always the more specific
// (longer-prefix) of the two.
func (s *IPSet) Intersect(o *IPSet) *IPSet {
	var out []IPNetwork
	for _, x := range s.cidrs {
		xFirst, xLast := x.Network().value, x.Broadcast().value
		for _, y := range o.cidrs {
			if x.Family() != y.Family() {
				continue
			}
			yFirst, yLast := y.Network().value, y.Broadcast().value
			if xLast.cmp(yFirst) < 0 || yLast.cmp(xFirst) < 0 {
				continue
			}
			if x.prefixLen >= y.prefixLen {
				out = append(out, x)
			} else {
				out = append(out, y)
			}
		}
	}
	return &IPSet{cidrs: CIDRMerge(out)}
}

// Difference returns a new set containing every address in s but not o.
func (s *IPSet) Difference(o *IPSet) *IPSet {
	result := append([]IPNetwork{}, s.cidrs...)
	for _, n := range o.cidrs {
		result = subtractOne(result, n)
	}
	return &IPSet{cidrs: result}
}

// SymmetricDifference returns the addresses in exactly one of s or o.
func (s *IPSet) SymmetricDifference(o *IPSet) *IPSet {
	return s.Union(o).Difference(s.Intersect(o))
}

// Contains reports whether addr belongs to s, via binary search on the
// canonical (family, first) ordering followed by a containment check.
func (s *IPSet) Contains(addr IPAddress) bool {
	idx := sort.Search(len(s.cidrs), func(i int) bool {
		return cidrAtOrAfter(s.cidrs[i], addr)
	})
	if idx < len(s.cidrs) && s.cidrs[idx].Contains(addr) {
		return true
	}
	if idx > 0 && s.cidrs[idx-1].Contains(addr) {
		return true
	}
	return false
}

func cidrAtOrAfter(n IPNetwork, addr IPAddress) bool {
	if n.Family() != addr.Family() {
		return n.Family() > addr.Family()
	}
	return n.Network().value.cmp(addr.value) >= 0
}

// IsContiguous reports whether s's members form one unbroken interval:
// every consecutive pair of canonical blocks shares a family and abuts
// with no gap.
func (s *IPSet) IsContiguous() bool {
	for i := 1; i < len(s.cidrs); i++ {
		prev, cur := s.cidrs[i-1], s.cidrs[i]
		if prev.Family() != cur.Family() {
			return false
		}
		if prev.Broadcast().value.addUint64(1).cmp(cur.Network().value) != 0 {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether s and o share no address.
func (s *IPSet) IsDisjoint(o *IPSet) bool {
	return len(s.Intersect(o).cidrs) == 0
}

// IsSubset reports whether every address in s is also in o.
func (s *IPSet) IsSubset(o *IPSet) bool {
	return len(s.Difference(o).cidrs) == 0
}

// IsSuperset reports whether every address in o is also in s.
func (s *IPSet) IsSuperset(o *IPSet) bool { return o.IsSubset(s) }

// Equal reports whether s and o have identical canonical CIDR lists.
func (s *IPSet) Equal(o *IPSet) bool {
	if len(s.cidrs) != len(o.cidrs) {
		return false
	}
	for i := range s.cidrs {
		if s.cidrs[i].Family() != o.cidrs[i].Family() ||
			s.cidrs[i].prefixLen != o.cidrs[i].prefixLen ||
			s.cidrs[i].Network().value.cmp(o.cidrs[i].Network().value) != 0 {
			return false
		}
	}
	return true
}

// IsEmpty reports whether s has no members.
func (s *IPSet) IsEmpty() bool { return len(s.cidrs) == 0 }

// CIDRs returns a copy of s's canonical CIDR list.
func (s *IPSet) CIDRs() []IPNetwork {
	return append([]IPNetwork{}, s.cidrs...)
}

// Size returns the total number of addresses in s as a big integer.
func (s *IPSet) Size() *big.Int {
	total := new(big.Int)
	for _, n := range s.cidrs {
		total.Add(total, n.Size())
	}
	return total
}

// Addresses returns a lazy iterator over every address in s, ascending,
// IPv4 before IPv6.
func (s *IPSet) Addresses() iter.Seq[IPAddress] {
	return func(yield func(IPAddress) bool) {
		for _, n := range s.cidrs {
			for addr := range n.Addresses() {
				if !yield(addr) {
					return
				}
			}
		}
	}
}

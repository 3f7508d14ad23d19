package netaddr

import "sort"

// cidr.go holds the free functions of the network/range layer: CIDR list
// canonicalization, set-style subtraction on CIDR lists, spanning, and
// the range<->CIDR<->glob conversions. All of it reduces to cidrDecompose,
// the one routine that turns a closed integer interval into the minimal
// ordered sequence of prefix-aligned blocks.

// cidrDecompose returns the minimal sequence of prefix-aligned blocks
// covering [first, last] for a family of the given bit width. Each step
// picks the largest block aligned at the current position that does not
// run past last: starting from the alignment ceiling (trailing zeros of
// the position) and shrinking until the block's last address fits.
func cidrDecompose(first, last uint128, width int) []IPNetwork {
	var out []IPNetwork
	cur := first
	for {
		tz := cur.trailingZeros128()
		if tz > width {
			tz = width
		}
		shift := tz
		fullSpace := shift == width && cur.isZero() && last.cmp(maxUint128(width)) == 0
		for shift > 0 && !fullSpace {
			blockLast := cur.add(uint128From64(1).lsh(uint(shift))).subUint64(1)
			if blockLast.cmp(last) <= 0 {
				break
			}
			shift--
		}
		out = append(out, IPNetwork{addr: IPAddress{value: cur}, prefixLen: width - shift})

		if fullSpace {
			break
		}
		blockLast := cur.add(uint128From64(1).lsh(uint(shift))).subUint64(1)
		if blockLast.cmp(last) >= 0 {
			break
		}
		cur = blockLast.addUint64(1)
	}
	return out
}

func cidrsForRange(first, last uint128, fam Family) []IPNetwork {
	width := strategyFor(fam).Width()
	blocks := cidrDecompose(first, last, width)
	for i := range blocks {
		blocks[i].addr.fam = fam
	}
	return blocks
}

// CIDRMerge returns the canonical sorted, merged form of nets: adjacent
// siblings of equal prefix length that share a parent are combined,
// transitively, and any network fully covered by another is dropped.
// IPv4 and IPv6 entries are partitioned and merged independently, then
// recombined with IPv4 first.
func CIDRMerge(nets []IPNetwork) []IPNetwork {
	var v4, v6 []IPNetwork
	for _, n := range nets {
		if !n.IsValid() {
			continue
		}
		if n.Family() == IPv4 {
			v4 = append(v4, n)
		} else {
			v6 = append(v6, n)
		}
	}
	merged := append(mergeSameFamily(v4), mergeSameFamily(v6)...)
	return merged
}

func mergeSameFamily(nets []IPNetwork) []IPNetwork {
	if len(nets) == 0 {
		return nil
	}
	fam := nets[0].Family()
	width := strategyFor(fam).Width()

	sort.Slice(nets, func(i, j int) bool {
		if c := nets[i].Network().value.cmp(nets[j].Network().value); c != 0 {
			return c < 0
		}
		return nets[i].prefixLen < nets[j].prefixLen
	})

	// Drop anything covered by a preceding, broader block.
	var deduped []IPNetwork
	for _, n := range nets {
		base, bcast := n.Network().value, n.Broadcast().value
		covered := false
		for _, kept := range deduped {
			kbase, kbcast := kept.Network().value, kept.Broadcast().value
			if base.cmp(kbase) >= 0 && bcast.cmp(kbcast) <= 0 {
				covered = true
				break
			}
		}
		if !covered {
			deduped = append(deduped, n)
		}
	}

	// Repeatedly merge adjacent equal-size siblings sharing a parent.
	changed := true
	for changed {
		changed = false
		var next []IPNetwork
		i := 0
		for i < len(deduped) {
			if i+1 < len(deduped) {
				a, b := deduped[i], deduped[i+1]
				if a.prefixLen == b.prefixLen && a.prefixLen > 0 {
					size := uint128From64(1).lsh(uint(width - a.prefixLen))
					if a.Network().value.add(size).cmp(b.Network().value) == 0 &&
						a.Network().value.and(size).isZero() {
						parent := IPNetwork{addr: IPAddress{value: a.Network().value, fam: fam}, prefixLen: a.prefixLen - 1}
						next = append(next, parent)
						i += 2
						changed = true
						continue
					}
				}
			}
			next = append(next, deduped[i])
			i++
		}
		deduped = next
	}
	return deduped
}

// CIDRExclude returns the list of CIDRs covering target minus excluded,
// obtained by repeatedly halving target and keeping the halves that
// don't intersect excluded.
func CIDRExclude(target, excluded IPNetwork) ([]IPNetwork, error) {
	if target.Family() != excluded.Family() {
		return nil, newConversionError(target.Family(), excluded.Family())
	}
	tFirst, tLast := target.Network().value, target.Broadcast().value
	eFirst, eLast := excluded.Network().value, excluded.Broadcast().value

	if eFirst.cmp(tFirst) <= 0 && eLast.cmp(tLast) >= 0 {
		return nil, nil // fully excluded
	}
	if eLast.cmp(tFirst) < 0 || eFirst.cmp(tLast) > 0 {
		return []IPNetwork{target}, nil // disjoint
	}

	width := strategyFor(target.Family()).Width()
	if target.prefixLen >= width {
		return nil, nil
	}

	left := IPNetwork{addr: IPAddress{value: tFirst, fam: target.Family()}, prefixLen: target.prefixLen + 1}
	rightBase := tFirst.or(uint128From64(1).lsh(uint(width - target.prefixLen - 1)))
	right := IPNetwork{addr: IPAddress{value: rightBase, fam: target.Family()}, prefixLen: target.prefixLen + 1}

	var out []IPNetwork
	for _, half := range []IPNetwork{left, right} {
		hFirst, hLast := half.Network().value, half.Broadcast().value
		if eLast.cmp(hFirst) < 0 || eFirst.cmp(hLast) > 0 {
			out = append(out, half)
			continue
		}
		if eFirst.cmp(hFirst) <= 0 && eLast.cmp(hLast) >= 0 {
			continue
		}
		sub, err := CIDRExclude(half, excluded)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

// CIDRPartition splits target into the minimal set of CIDR blocks
// covering target minus every network in excluded, generalizing
// CIDRExclude to more than one exclusion at once.
func CIDRPartition(target IPNetwork, excluded []IPNetwork) ([]IPNetwork, error) {
	remaining := []IPNetwork{target}
	for _, ex := range excluded {
		if ex.Family() != target.Family() {
			continue
		}
		var next []IPNetwork
		for _, r := range remaining {
			split, err := CIDRExclude(r, ex)
			if err != nil {
				return nil, err
			}
			next = append(next, split...)
		}
		remaining = next
	}
	return CIDRMerge(remaining), nil
}

// SpanningCIDR returns the smallest single CIDR containing every network
// in nets, which must all share one family.
func SpanningCIDR(nets []IPNetwork) (IPNetwork, error) {
	if len(nets) == 0 {
		return IPNetwork{}, newFormatError("", ErrAddrFormat)
	}
	fam := nets[0].Family()
	width := strategyFor(fam).Width()
	first, last := nets[0].Network().value, nets[0].Broadcast().value
	for _, n := range nets[1:] {
		if n.Family() != fam {
			return IPNetwork{}, newConversionError(fam, n.Family())
		}
		if n.Network().value.cmp(first) < 0 {
			first = n.Network().value
		}
		if n.Broadcast().value.cmp(last) > 0 {
			last = n.Broadcast().value
		}
	}

	for prefixLen := width; prefixLen >= 0; prefixLen-- {
		mask := maxUint128(prefixLen).lsh(uint(width - prefixLen))
		base := first.and(mask)
		size := uint128From64(1)
		if width > prefixLen {
			size = uint128From64(1).lsh(uint(width - prefixLen))
		}
		blockLast := base.add(size).subUint64(1)
		if base.cmp(first) <= 0 && blockLast.cmp(last) >= 0 {
			return IPNetwork{addr: IPAddress{value: base, fam: fam}, prefixLen: prefixLen}, nil
		}
	}
	return IPNetwork{addr: IPAddress{fam: fam}, prefixLen: 0}, nil
}

// IPRangeToCIDRs decomposes r into its minimal CIDR sequence.
func IPRangeToCIDRs(r IPRange) []IPNetwork { return r.CIDRs() }

// CIDRsToIPRange returns the smallest IPRange covering every network in
// nets, which must share a family.
func CIDRsToIPRange(nets []IPNetwork) (IPRange, error) {
	if len(nets) == 0 {
		return IPRange{}, newFormatError("", ErrAddrFormat)
	}
	fam := nets[0].Family()
	first, last := nets[0].Network(), nets[0].Broadcast()
	for _, n := range nets[1:] {
		if n.Family() != fam {
			return IPRange{}, newConversionError(fam, n.Family())
		}
		if n.Network().value.cmp(first.value) < 0 {
			first = n.Network()
		}
		if n.Broadcast().value.cmp(last.value) > 0 {
			last = n.Broadcast()
		}
	}
	return NewIPRange(first, last)
}

// GlobToCIDRs reduces g to its minimal CIDR sequence.
func GlobToCIDRs(g IPGlob) []IPNetwork { return g.ToRange().CIDRs() }

// CIDRToGlob converts n to glob syntax if its boundaries happen to fall
// on a legal glob interval, i.e. n's prefix length is a multiple of 8.
func CIDRToGlob(n IPNetwork) (IPGlob, error) {
	if n.Family() != IPv4 {
		return IPGlob{}, newConversionError(n.Family(), IPv4)
	}
	if n.prefixLen%8 != 0 {
		return IPGlob{}, newFormatError(n.String(), ErrAddrFormat)
	}
	return globFromRange(n.Network(), n.Broadcast())
}

// LargestMatchingCIDR returns the broadest (smallest prefix length)
// network in cidrs containing addr, or ok=false if none match.
func LargestMatchingCIDR(addr IPAddress, cidrs []IPNetwork) (IPNetwork, bool) {
	var best IPNetwork
	found := false
	for _, n := range cidrs {
		if n.Contains(addr) && (!found || n.prefixLen < best.prefixLen) {
			best, found = n, true
		}
	}
	return best, found
}

// SmallestMatchingCIDR returns the narrowest (largest prefix length)
// network in cidrs containing addr, or ok=false if none match.
func SmallestMatchingCIDR(addr IPAddress, cidrs []IPNetwork) (IPNetwork, bool) {
	var best IPNetwork
	found := false
	for _, n := range cidrs {
		if n.Contains(addr) && (!found || n.prefixLen > best.prefixLen) {
			best, found = n, true
		}
	}
	return best, found
}

// AllMatchingCIDRs returns every network in cidrs containing addr, in
// input order.
func AllMatchingCIDRs(addr IPAddress, cidrs []IPNetwork) []IPNetwork {
	var out []IPNetwork
	for _, n := range cidrs {
		if n.Contains(addr) {
			out = append(out, n)
		}
	}
	return out
}

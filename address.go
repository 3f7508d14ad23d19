package netaddr

import "strings"

// IPAddress is an immutable Layer-3 address: a (value, family) pair plus,
// for IPv6, an optional zone identifier that is carried verbatim but does
// not participate in the integer value, comparisons, or arithmetic (§3).
//
// The zero IPAddress is not a valid address; use Parse/New constructors.
type IPAddress struct {
	value uint128
	fam   Family
	zone  string
}

// Family returns the address's family (IPv4 or IPv6).
func (a IPAddress) Family() Family { return a.fam }

// IsValid reports whether a was produced by a successful constructor.
func (a IPAddress) IsValid() bool { return a.fam == IPv4 || a.fam == IPv6 }

// Zone returns the IPv6 zone suffix, or "" if none (always "" for IPv4).
func (a IPAddress) Zone() string { return a.zone }

func ipStrategy(f Family) Strategy { return strategyFor(f) }

// detectIPFamily applies the leading-character heuristic of §4.2: any
// colon means IPv6 (including a zone-bearing literal), otherwise IPv4.
func detectIPFamily(text string) Family {
	if strings.ContainsRune(text, ':') {
		return IPv6
	}
	return IPv4
}

// NewIPAddress constructs an IPv4 or IPv6 address from an integer value.
// The value must fit the family's width or ErrAddrFormat is returned.
func NewIPAddress(value uint64, fam Family) (IPAddress, error) {
	if !fam.IsIP() {
		return IPAddress{}, newConversionError(fam, IPv4)
	}
	v := uint128From64(value)
	if v.cmp(strategyFor(fam).MaxInt()) > 0 {
		return IPAddress{}, newFormatError("", errOutOfRange(fam))
	}
	return IPAddress{value: v, fam: fam}, nil
}

// IPAddressFromUint gives IPv4 for values that fit in 32 bits and IPv6
// otherwise, resolving the §4.2 ambiguity at value=0 in favor of IPv4.
func IPAddressFromUint(value uint64) (IPAddress, error) {
	if value <= uint64(maxUint128(32).lo) {
		return NewIPAddress(value, IPv4)
	}
	return NewIPAddress(value, IPv6)
}

// IPAddressFromBytes builds an address from packed bytes: length 4 for
// IPv4, 16 for IPv6.
func IPAddressFromBytes(b []byte) (IPAddress, error) {
	switch len(b) {
	case 4:
		v, err := strategyFor(IPv4).PackedToInt(b)
		if err != nil {
			return IPAddress{}, err
		}
		return IPAddress{value: v, fam: IPv4}, nil
	case 16:
		v, err := strategyFor(IPv6).PackedToInt(b)
		if err != nil {
			return IPAddress{}, err
		}
		return IPAddress{value: v, fam: IPv6}, nil
	default:
		return IPAddress{}, newFormatError("", errBytesLength(len(b)))
	}
}

// Compare orders addresses by (family, value) per §4.2: all IPv4
// addresses sort before all IPv6 addresses.
func (a IPAddress) Compare(b IPAddress) int {
	if a.fam != b.fam {
		if a.fam < b.fam {
			return -1
		}
		return 1
	}
	return a.value.cmp(b.value)
}

func (a IPAddress) Equal(b IPAddress) bool { return a.Compare(b) == 0 }
func (a IPAddress) Less(b IPAddress) bool  { return a.Compare(b) < 0 }

// BitLen returns the minimal number of bits needed to represent the
// address's value (0 for the all-zeros address).
func (a IPAddress) BitLen() int { return a.value.bitLen128() }

// Packed returns the address as big-endian bytes (4 for IPv4, 16 for
// IPv6).
func (a IPAddress) Packed() []byte { return strategyFor(a.fam).IntToPacked(a.value) }

package netaddr

// Family identifies an address family. Every value in this package is a
// pair of (integer, Family); higher layers dispatch through the Strategy
// each Family maps to instead of branching on the family inline.
type Family uint8

const (
	FamilyUnknown Family = iota
	IPv4
	IPv6
	EUI48
	EUI64
)

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	case EUI48:
		return "EUI-48"
	case EUI64:
		return "EUI-64"
	default:
		return "unknown"
	}
}

// IsIP reports whether f is IPv4 or IPv6.
func (f Family) IsIP() bool { return f == IPv4 || f == IPv6 }

// IsEUI reports whether f is EUI-48 or EUI-64.
func (f Family) IsEUI() bool { return f == EUI48 || f == EUI64 }

// Dialect selects a textual rendering for Strategy.Format. Each family
// only recognizes the subset of dialects meaningful to it; an
// unrecognized dialect falls back to that family's canonical form.
type Dialect int

const (
	// DialectCanonical is the bit-exact canonical form of §6 for every
	// family: dotted-quad for IPv4, RFC 5952 compact for IPv6, IEEE dash
	// uppercase for EUI-48/64.
	DialectCanonical Dialect = iota

	// IPv6-specific dialects (§4.1).
	DialectFull    // no "::" collapse, no zero suppression within a hextet
	DialectVerbose // DialectFull, uppercase

	// EUI-specific dialects (§4.1).
	DialectMacUnix         // a:bb:cc:dd:ee:ff, no zero padding
	DialectMacUnixExpanded // aa:bb:cc:dd:ee:ff, zero padded, lowercase
	DialectMacCisco        // aabb.ccdd.eeff
	DialectMacBare         // AABBCCDDEEFF
	DialectMacPgsql        // aabbcc:ddeeff
)

// Strategy exposes the fixed per-family capability set of §4.1. Exactly
// one instance exists per Family; it is looked up once at value
// construction time and carried alongside the integer, never re-derived
// by branching on the family downstream.
type Strategy interface {
	Family() Family
	Width() int
	MaxInt() uint128

	Parse(text string, flags Flags) (uint128, error)
	Format(v uint128, d Dialect) string

	IntToPacked(v uint128) []byte
	PackedToInt(b []byte) (uint128, error)

	// WordSize and WordCount describe the word decomposition used by
	// WordSplit/WordJoin: WordCount words of WordSize bits each, MSB
	// first, such that WordCount*WordSize == Width().
	WordSize() int
	WordCount() int
	WordSplit(v uint128) []uint32
	WordJoin(words []uint32) (uint128, error)
}

var strategies = map[Family]Strategy{
	IPv4:  ipv4Strategy{},
	IPv6:  ipv6Strategy{},
	EUI48: eui48Strategy{},
	EUI64: eui64Strategy{},
}

// strategyFor returns the Strategy for f. It panics for FamilyUnknown or
// an out-of-range value — every exported constructor normalizes to a
// valid Family before reaching internal code that calls this.
func strategyFor(f Family) Strategy {
	s, ok := strategies[f]
	if !ok {
		panic("netaddr: no strategy registered for family " + f.String())
	}
	return s
}

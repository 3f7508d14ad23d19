package netaddr

// Flags control parsing and construction leniency. They combine with
// bitwise OR, mirroring the Z|P|N abbreviations of §6.
type Flags uint8

const (
	// INET_PTON selects strict IPv4 parsing: exactly four decimal octets,
	// no leading zeros, each 0..255. Required for untrusted input.
	INET_PTON Flags = 1 << iota
	// ZEROFILL strips leading zeros from IPv4 octets before applying the
	// default inet_aton-style parse.
	ZEROFILL
	// NOHOST zeroes host bits on IPNetwork construction.
	NOHOST
	// NOBROADCAST is defined for combination with the other flags, but no
	// function in this package reads it; IPNetwork.Hosts takes no flags.
	NOBROADCAST
)

// Single-letter abbreviations per §6, combinable with bitwise OR
// (e.g. Z|P).
const (
	P = INET_PTON
	Z = ZEROFILL
	N = NOHOST
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

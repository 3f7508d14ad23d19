package netaddr

// ParseIPAddress parses text as an IPv4 or IPv6 address. The family is
// auto-detected per §4.2 before dispatching to that family's Strategy.
// flags, if given, combine with bitwise OR (with INET_PTON set, ZEROFILL
// has no effect, since ZEROFILL only applies to the default grammar).
func ParseIPAddress(text string, flags ...Flags) (IPAddress, error) {
	var f Flags
	for _, x := range flags {
		f |= x
	}

	fam := detectIPFamily(text)
	if fam == IPv6 {
		base, zone, err := splitZone(text)
		if err != nil {
			return IPAddress{}, newFormatError(text, err)
		}
		v, err := strategyFor(IPv6).Parse(base, f)
		if err != nil {
			return IPAddress{}, err
		}
		return IPAddress{value: v, fam: IPv6, zone: zone}, nil
	}

	v, err := strategyFor(IPv4).Parse(text, f)
	if err != nil {
		return IPAddress{}, err
	}
	return IPAddress{value: v, fam: IPv4}, nil
}

// MustParseIPAddress is like ParseIPAddress but panics on error. Intended
// for package-level constants and tests.
func MustParseIPAddress(text string) IPAddress {
	a, err := ParseIPAddress(text)
	if err != nil {
		panic(err)
	}
	return a
}

// ValidIPv4 reports whether text parses as an IPv4 address under flags,
// never raising — a boolean layer over Parse rather than the other way
// around (§9 "exception-as-validation").
func ValidIPv4(text string, flags ...Flags) bool {
	var f Flags
	for _, x := range flags {
		f |= x
	}
	_, err := strategyFor(IPv4).Parse(text, f)
	return err == nil
}

// ValidIPv6 reports whether text parses as an IPv6 address, never
// raising.
func ValidIPv6(text string) bool {
	base, _, err := splitZone(text)
	if err != nil {
		return false
	}
	_, err = strategyFor(IPv6).Parse(base, 0)
	return err == nil
}

// ValidIP reports whether text parses as either family.
func ValidIP(text string) bool {
	_, err := ParseIPAddress(text)
	return err == nil
}

package netaddr

// Add returns a offset by delta, staying within the same family. A
// negative delta subtracts. Overflow past the family's all-ones address,
// or underflow past zero, is reported as ErrAddrFormat rather than
// wrapping.
func (a IPAddress) Add(delta int64) (IPAddress, error) {
	if !a.IsValid() {
		return IPAddress{}, newConversionError(a.fam, a.fam)
	}
	max := strategyFor(a.fam).MaxInt()

	if delta >= 0 {
		d := uint128From64(uint64(delta))
		if max.sub(a.value).cmp(d) < 0 {
			return IPAddress{}, newFormatError("", errOutOfRange(a.fam))
		}
		return IPAddress{value: a.value.add(d), fam: a.fam, zone: a.zone}, nil
	}

	d := uint128From64(uint64(-delta))
	if a.value.cmp(d) < 0 {
		return IPAddress{}, newFormatError("", errOutOfRange(a.fam))
	}
	return IPAddress{value: a.value.sub(d), fam: a.fam, zone: a.zone}, nil
}

// Sub is shorthand for Add(-delta).
func (a IPAddress) Sub(delta int64) (IPAddress, error) { return a.Add(-delta) }

// ToIPv4Mapped returns a as an IPv4-mapped IPv6 address (::ffff:a.b.c.d).
// Calling it on an IPv6 address returns a unchanged.
func (a IPAddress) ToIPv4Mapped() (IPAddress, error) {
	switch a.fam {
	case IPv6:
		return a, nil
	case IPv4:
		var b [16]byte
		b[10], b[11] = 0xff, 0xff
		copy(b[12:16], a.Packed())
		return IPAddress{value: uint128From16(b), fam: IPv6}, nil
	default:
		return IPAddress{}, newConversionError(a.fam, IPv6)
	}
}

// ToIPv4 unwraps an IPv4-mapped (::ffff:a.b.c.d) IPv6 address back to
// plain IPv4. It fails with ErrAddrConversion if a is IPv6 but not in
// that block.
func (a IPAddress) ToIPv4() (IPAddress, error) {
	switch a.fam {
	case IPv4:
		return a, nil
	case IPv6:
		if !a.IsIPv4Mapped() {
			return IPAddress{}, newConversionError(IPv6, IPv4)
		}
		b := a.value.bytes16()
		v, err := strategyFor(IPv4).PackedToInt(b[12:16])
		if err != nil {
			return IPAddress{}, err
		}
		return IPAddress{value: v, fam: IPv4}, nil
	default:
		return IPAddress{}, newConversionError(a.fam, IPv4)
	}
}

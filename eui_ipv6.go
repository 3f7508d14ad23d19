package netaddr

// ModifiedEUI64 derives the interface identifier that RFC 4291 §2.5.1
// assigns to e: EUI-64 is used unchanged, EUI-48 is split into its
// leading and trailing 3 bytes with 0xff 0xfe inserted between them, and
// either way the universal/local bit of the first octet is flipped.
func (e EUI) ModifiedEUI64() ([8]byte, error) {
	if !e.IsValid() {
		return [8]byte{}, newConversionError(e.fam, EUI64)
	}
	var out [8]byte
	switch e.fam {
	case EUI64:
		copy(out[:], e.Packed())
	case EUI48:
		p := e.Packed()
		copy(out[0:3], p[0:3])
		out[3] = 0xff
		out[4] = 0xfe
		copy(out[5:8], p[3:6])
	}
	out[0] ^= 0x02
	return out, nil
}

// IPv6LinkLocal returns the fe80::/64 link-local address whose interface
// identifier is e's modified EUI-64 form.
func (e EUI) IPv6LinkLocal() (IPAddress, error) {
	return e.IPv6(MustParseIPAddress("fe80::"))
}

// IPv6 embeds e's modified EUI-64 identifier into the low 64 bits of
// prefix, which must be an IPv6 address whose low 64 bits are zero (a
// /64 or shorter prefix expressed as an address).
func (e EUI) IPv6(prefix IPAddress) (IPAddress, error) {
	if prefix.Family() != IPv6 {
		return IPAddress{}, newConversionError(prefix.Family(), IPv6)
	}
	eid, err := e.ModifiedEUI64()
	if err != nil {
		return IPAddress{}, err
	}
	b := prefix.value.bytes16()
	var low [8]byte
	copy(low[:], b[8:16])
	for _, c := range low {
		if c != 0 {
			return IPAddress{}, newFormatError(prefix.String(), ErrAddrFormat)
		}
	}
	copy(b[8:16], eid[:])
	return IPAddress{value: uint128From16(b), fam: IPv6, zone: prefix.zone}, nil
}

// EUIFromIPv6 recovers the original EUI-48 or EUI-64 hardware address
// embedded in addr's interface identifier, and the /64 prefix it was
// derived from. addr must be IPv6; the 0xff 0xfe marker bytes at offset
// 11-12 of the address decide whether the result is EUI-48 or EUI-64.
func EUIFromIPv6(addr IPAddress) (EUI, IPAddress, error) {
	if addr.Family() != IPv6 {
		return EUI{}, IPAddress{}, newConversionError(addr.Family(), IPv6)
	}
	b := addr.value.bytes16()

	var prefixBytes [16]byte
	copy(prefixBytes[0:8], b[0:8])
	prefix := IPAddress{value: uint128From16(prefixBytes), fam: IPv6}

	id := b[8:16]
	first := id[0] ^ 0x02

	if id[3] == 0xff && id[4] == 0xfe {
		mac := [6]byte{first, id[1], id[2], id[5], id[6], id[7]}
		return NewEUI48(mac), prefix, nil
	}

	mac := [8]byte{first, id[1], id[2], id[3], id[4], id[5], id[6], id[7]}
	return NewEUI64(mac), prefix, nil
}

package netaddr

// Zero48 returns the all-zero EUI-48 address.
func Zero48() EUI { return EUI{fam: EUI48} }

// Zero64 returns the all-zero EUI-64 address.
func Zero64() EUI { return EUI{fam: EUI64} }

// Broadcast48 returns the EUI-48 broadcast address ff-ff-ff-ff-ff-ff.
func Broadcast48() EUI { return EUI{value: maxUint128(48), fam: EUI48} }

// Broadcast64 returns the all-ones EUI-64 address.
func Broadcast64() EUI { return EUI{value: maxUint128(64), fam: EUI64} }

// IsZero reports whether e is the all-zero address for its family.
func (e EUI) IsZero() bool { return e.IsValid() && e.value.isZero() }

// IsBroadcast reports whether e is the all-ones address for its family.
// Only meaningful for EUI-48; EUI-64 has no standardized broadcast use.
func (e EUI) IsBroadcast() bool {
	return e.IsValid() && e.value.cmp(strategyFor(e.fam).MaxInt()) == 0
}

// IsSpecial reports whether e is the zero or broadcast address.
func (e EUI) IsSpecial() bool { return e.IsZero() || e.IsBroadcast() }

// IsUsable reports whether e is valid and not a special address.
func (e EUI) IsUsable() bool { return e.IsValid() && !e.IsSpecial() }

// IsUnicast reports whether the I/G bit (bit 0 of the first octet) is
// clear.
func (e EUI) IsUnicast() bool {
	return e.IsValid() && e.firstOctet()&0x01 == 0
}

// IsMulticast reports whether the I/G bit is set.
func (e EUI) IsMulticast() bool {
	return e.IsValid() && e.firstOctet()&0x01 == 1
}

// IsLocallyAdministered reports whether the U/L bit (bit 1 of the first
// octet) is set, meaning the address was assigned locally rather than by
// the IEEE from a vendor's OUI.
func (e EUI) IsLocallyAdministered() bool {
	return e.IsValid() && e.firstOctet()&0x02 != 0
}

// IsUniversallyAdministered reports whether the U/L bit is clear.
func (e EUI) IsUniversallyAdministered() bool {
	return e.IsValid() && e.firstOctet()&0x02 == 0
}

func (e EUI) firstOctet() byte {
	b := e.value.bytes16()
	if e.fam == EUI48 {
		return b[10]
	}
	return b[8]
}

// OUI returns the Organizationally Unique Identifier: the leading 3
// octets assigned by the IEEE to a manufacturer. Identical for EUI-48
// and EUI-64.
func (e EUI) OUI() [3]byte {
	p := e.Packed()
	var out [3]byte
	if len(p) >= 3 {
		copy(out[:], p[:3])
	}
	return out
}

// ExtensionIdentifier returns the manufacturer-assigned remainder of e
// after its OUI: 3 bytes for EUI-48, 5 bytes for EUI-64.
func (e EUI) ExtensionIdentifier() []byte {
	p := e.Packed()
	if len(p) <= 3 {
		return nil
	}
	return p[3:]
}

package registry

import (
	"encoding/binary"

	"github.com/netaddr/netaddr"
)

// OUIFromEUI looks up e's manufacturer OUI in the registry. e may be
// EUI-48 or EUI-64; only the leading 3 octets are used.
func OUIFromEUI(e netaddr.EUI) (OUI, error) {
	oui := e.OUI()
	return NewOUI(uint32(oui[0])<<16 | uint32(oui[1])<<8 | uint32(oui[2]))
}

// IsIAB reports whether e's 48-bit value falls within a reserved IAB OUI
// (00-50-C2 or 40-D8-55), mirroring EUI.is_iab() from the address model
// this package's EUI type doesn't implement directly to avoid an import
// cycle between the address layer and the registry layer.
func IsIAB(e netaddr.EUI) bool {
	if e.Family() != netaddr.EUI48 {
		return false
	}
	var buf [8]byte
	copy(buf[2:], e.Packed())
	return IsIABPrefix(binary.BigEndian.Uint64(buf[:]))
}

// IABFromEUI looks up e's IAB sub-block in the registry, if e's value
// falls within one.
func IABFromEUI(e netaddr.EUI) (IAB, error) {
	if e.Family() != netaddr.EUI48 {
		return IAB{}, newNotRegisteredError(e.String())
	}
	var buf [8]byte
	copy(buf[2:], e.Packed())
	prefix36, _, err := splitIABMac(binary.BigEndian.Uint64(buf[:]), false)
	if err != nil {
		return IAB{}, newNotRegisteredError(e.String())
	}
	return NewIAB(prefix36)
}

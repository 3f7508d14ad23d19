package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// IAB is a 36-bit IEEE Individual Address Block: a sub-assignment carved
// out of the reserved 00-50-C2 (legacy) or 40-D8-55 (modern) OUI, 12 bits
// narrower than a full OUI so the assignee gets only 4096 addresses.
type IAB struct {
	value uint64 // prefix36, right-aligned
	entry IABEntry
}

// splitIABMac validates that the top 24 bits of a 48-bit MAC-shaped value
// fall within a reserved IAB OUI and splits it into the 36-bit IAB prefix
// and the 12-bit extension (device-assigned) bits.
func splitIABMac(eui48 uint64, strict bool) (prefix36 uint64, ext uint16, err error) {
	ouiBits := uint32(eui48 >> 24)
	if ouiBits != legacyIABOUI && ouiBits != modernIABOUI {
		return 0, 0, fmt.Errorf("registry: %#x is not an IAB address", eui48)
	}
	prefix36 = eui48 >> 12
	ext = uint16(eui48 & 0xfff)
	if strict && ext != 0 {
		return 0, 0, fmt.Errorf("registry: %#x has non-zero IAB extension bits", eui48)
	}
	return prefix36, ext, nil
}

// ParseIAB parses iab as a full 48-bit MAC-shaped hex string (with or
// without separators), validating that its top 24 bits name a reserved
// IAB OUI. strict rejects a non-zero 12-bit extension field.
func ParseIAB(text string, strict bool) (IAB, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '-', ':', '.':
			return -1
		}
		return r
	}, text)
	v, err := strconv.ParseUint(cleaned, 16, 64)
	if err != nil {
		return IAB{}, fmt.Errorf("registry: %q is not a valid IAB: %w", text, err)
	}
	prefix36, _, err := splitIABMac(v, strict)
	if err != nil {
		return IAB{}, err
	}
	return NewIAB(prefix36)
}

// NewIAB looks up the 36-bit integer prefix in the registry.
func NewIAB(prefix36 uint64) (IAB, error) {
	idx, err := defaultIndex()
	if err != nil {
		return IAB{}, err
	}
	entries, ok := idx.iab[prefix36]
	if !ok || len(entries) == 0 {
		return IAB{}, newNotRegisteredError(formatIAB(prefix36))
	}
	return IAB{value: prefix36, entry: entries[0]}, nil
}

// Value returns the IAB's 36-bit integer prefix.
func (a IAB) Value() uint64 { return a.value }

// String renders a as the full 48-bit dash form, e.g. "00-50-C2-AB-C0-00".
func (a IAB) String() string { return formatIAB(a.value) }

func formatIAB(prefix36 uint64) string {
	full := prefix36 << 12
	b := [6]byte{
		byte(full >> 40), byte(full >> 32), byte(full >> 24),
		byte(full >> 16), byte(full >> 8), byte(full),
	}
	return fmt.Sprintf("%02X-%02X-%02X-%02X-%02X-%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}

// Org returns the registered organization name.
func (a IAB) Org() string { return a.entry.Org }

// Address returns the registered postal address lines.
func (a IAB) Address() []string {
	out := make([]string, len(a.entry.Address))
	copy(out, a.entry.Address)
	return out
}

// IsIABPrefix reports whether the top 24 bits of a 48-bit MAC-shaped
// value name a reserved IAB OUI, without requiring the 36-bit prefix to
// actually be registered.
func IsIABPrefix(eui48 uint64) bool {
	_, _, err := splitIABMac(eui48, false)
	return err == nil
}

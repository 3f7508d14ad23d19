package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// OUI is a 24-bit IEEE-assigned Organizationally Unique Identifier,
// together with every registration on file for it.
type OUI struct {
	value   uint32
	entries []OUIEntry
}

// ParseOUI looks up oui, given as "AA-BB-CC", "AABBCC", or a bare MAC
// string (only its leading 3 bytes are used).
func ParseOUI(text string) (OUI, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '-', ':', '.':
			return -1
		}
		return r
	}, text)
	if len(cleaned) < 6 {
		return OUI{}, fmt.Errorf("registry: %q is not a valid OUI", text)
	}
	v, err := strconv.ParseUint(cleaned[:6], 16, 32)
	if err != nil {
		return OUI{}, fmt.Errorf("registry: %q is not a valid OUI: %w", text, err)
	}
	return NewOUI(uint32(v))
}

// NewOUI looks up the 24-bit integer value oui in the registry.
func NewOUI(value uint32) (OUI, error) {
	if value > 0xFFFFFF {
		return OUI{}, fmt.Errorf("registry: OUI %#x out of range", value)
	}
	idx, err := defaultIndex()
	if err != nil {
		return OUI{}, err
	}
	entries, ok := idx.oui[value]
	if !ok {
		return OUI{}, newNotRegisteredError(formatOUI(value))
	}
	return OUI{value: value, entries: entries}, nil
}

// Value returns the OUI's 24-bit integer value.
func (o OUI) Value() uint32 { return o.value }

// String renders o as "AA-BB-CC".
func (o OUI) String() string { return formatOUI(o.value) }

func formatOUI(v uint32) string {
	return fmt.Sprintf("%02X-%02X-%02X", byte(v>>16), byte(v>>8), byte(v))
}

// RegCount returns the number of registrations on file for this OUI.
func (o OUI) RegCount() int { return len(o.entries) }

// Registrations returns every registration on file for this OUI, in
// file-appearance order.
func (o OUI) Registrations() []OUIEntry {
	out := make([]OUIEntry, len(o.entries))
	copy(out, o.entries)
	return out
}

// Registration returns the i-th registration on file for this OUI.
func (o OUI) Registration(i int) (OUIEntry, error) {
	if i < 0 || i >= len(o.entries) {
		return OUIEntry{}, fmt.Errorf("registry: registration index %d out of range for %s", i, o)
	}
	return o.entries[i], nil
}

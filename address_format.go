package netaddr

import (
	"encoding/hex"
	"strings"
)

// String renders the address in its family's canonical dialect and
// appends the zone suffix, if any.
func (a IPAddress) String() string {
	if !a.IsValid() {
		return ""
	}
	s := strategyFor(a.fam).Format(a.value, DialectCanonical)
	if a.zone != "" {
		s += "%" + a.zone
	}
	return s
}

// Format renders the address using an explicit dialect, ignoring the
// zone (only String carries it).
func (a IPAddress) Format(d Dialect) string {
	if !a.IsValid() {
		return ""
	}
	return strategyFor(a.fam).Format(a.value, d)
}

// Words returns the address's word decomposition MSB-first (4 octets
// for IPv4, 8 hextets for IPv6) — the generalized form of the original
// library's int_to_words.
func (a IPAddress) Words() []uint32 {
	if !a.IsValid() {
		return nil
	}
	return strategyFor(a.fam).WordSplit(a.value)
}

// Hex returns the address as a zero-padded hexadecimal string without a
// "0x" prefix, width/4 digits wide.
func (a IPAddress) Hex() string {
	if !a.IsValid() {
		return ""
	}
	return hex.EncodeToString(strategyFor(a.fam).IntToPacked(a.value))
}

// Bits returns the address as dotted groups of zero-padded binary octets
// (IPv4) or 16-bit groups (IPv6), the generalized form of the original
// library's int_to_bits.
func (a IPAddress) Bits() string {
	if !a.IsValid() {
		return ""
	}
	s := strategyFor(a.fam)
	words := s.WordSplit(a.value)
	sep := "."
	if a.fam == IPv6 {
		sep = ":"
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = padBinary(w, s.WordSize())
	}
	return strings.Join(out, sep)
}

func padBinary(v uint32, width int) string {
	bits := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		if v&1 == 1 {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
		v >>= 1
	}
	return string(bits)
}

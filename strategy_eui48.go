package netaddr

import "fmt"

type eui48Strategy struct{}

func (eui48Strategy) Family() Family  { return EUI48 }
func (eui48Strategy) Width() int      { return 48 }
func (eui48Strategy) MaxInt() uint128 { return maxUint128(48) }
func (eui48Strategy) WordSize() int   { return 8 }
func (eui48Strategy) WordCount() int  { return 6 }

func (eui48Strategy) Parse(text string, flags Flags) (uint128, error) {
	b, err := parseEUIBytes(text, 6)
	if err != nil {
		return uint128{}, newFormatError(text, err)
	}
	var arr [16]byte
	copy(arr[10:16], b)
	return uint128From16(arr), nil
}

func (s eui48Strategy) Format(v uint128, d Dialect) string {
	return formatEUIBytes(s.IntToPacked(v), d)
}

func (eui48Strategy) IntToPacked(v uint128) []byte {
	b := v.bytes16()
	out := make([]byte, 6)
	copy(out, b[10:16])
	return out
}

func (eui48Strategy) PackedToInt(b []byte) (uint128, error) {
	if len(b) != 6 {
		return uint128{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrAddrFormat, len(b))
	}
	var arr [16]byte
	copy(arr[10:16], b)
	return uint128From16(arr), nil
}

func (s eui48Strategy) WordSplit(v uint128) []uint32 {
	b := s.IntToPacked(v)
	words := make([]uint32, 6)
	for i, c := range b {
		words[i] = uint32(c)
	}
	return words
}

func (s eui48Strategy) WordJoin(words []uint32) (uint128, error) {
	if len(words) != 6 {
		return uint128{}, fmt.Errorf("%w: expected 6 words, got %d", ErrAddrFormat, len(words))
	}
	b := make([]byte, 6)
	for i, w := range words {
		if w > 0xff {
			return uint128{}, fmt.Errorf("%w: word %d out of range", ErrAddrFormat, w)
		}
		b[i] = byte(w)
	}
	return s.PackedToInt(b)
}

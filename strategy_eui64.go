package netaddr

import "fmt"

type eui64Strategy struct{}

func (eui64Strategy) Family() Family  { return EUI64 }
func (eui64Strategy) Width() int      { return 64 }
func (eui64Strategy) MaxInt() uint128 { return maxUint128(64) }
func (eui64Strategy) WordSize() int   { return 8 }
func (eui64Strategy) WordCount() int  { return 8 }

func (eui64Strategy) Parse(text string, flags Flags) (uint128, error) {
	b, err := parseEUIBytes(text, 8)
	if err != nil {
		return uint128{}, newFormatError(text, err)
	}
	var arr [16]byte
	copy(arr[8:16], b)
	return uint128From16(arr), nil
}

func (s eui64Strategy) Format(v uint128, d Dialect) string {
	return formatEUIBytes(s.IntToPacked(v), d)
}

func (eui64Strategy) IntToPacked(v uint128) []byte {
	b := v.bytes16()
	out := make([]byte, 8)
	copy(out, b[8:16])
	return out
}

func (eui64Strategy) PackedToInt(b []byte) (uint128, error) {
	if len(b) != 8 {
		return uint128{}, fmt.Errorf("%w: expected 8 bytes, got %d", ErrAddrFormat, len(b))
	}
	var arr [16]byte
	copy(arr[8:16], b)
	return uint128From16(arr), nil
}

func (s eui64Strategy) WordSplit(v uint128) []uint32 {
	b := s.IntToPacked(v)
	words := make([]uint32, 8)
	for i, c := range b {
		words[i] = uint32(c)
	}
	return words
}

func (s eui64Strategy) WordJoin(words []uint32) (uint128, error) {
	if len(words) != 8 {
		return uint128{}, fmt.Errorf("%w: expected 8 words, got %d", ErrAddrFormat, len(words))
	}
	b := make([]byte, 8)
	for i, w := range words {
		if w > 0xff {
			return uint128{}, fmt.Errorf("%w: word %d out of range", ErrAddrFormat, w)
		}
		b[i] = byte(w)
	}
	return s.PackedToInt(b)
}

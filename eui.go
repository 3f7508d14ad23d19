package netaddr

// EUI is an immutable IEEE 802 hardware address, either EUI-48 (the
// common "MAC address") or EUI-64. Like IPAddress it pairs a value with
// its family rather than branching on width at every call site.
type EUI struct {
	value uint128
	fam   Family
}

// Family returns EUI48 or EUI64.
func (e EUI) Family() Family { return e.fam }

// IsValid reports whether e was produced by a successful constructor.
func (e EUI) IsValid() bool { return e.fam == EUI48 || e.fam == EUI64 }

// Compare orders EUIs by (family, value); EUI-48 sorts before EUI-64.
func (e EUI) Compare(o EUI) int {
	if e.fam != o.fam {
		if e.fam < o.fam {
			return -1
		}
		return 1
	}
	return e.value.cmp(o.value)
}

func (e EUI) Equal(o EUI) bool { return e.Compare(o) == 0 }
func (e EUI) Less(o EUI) bool  { return e.Compare(o) < 0 }

// Packed returns e as big-endian bytes (6 for EUI-48, 8 for EUI-64).
func (e EUI) Packed() []byte { return strategyFor(e.fam).IntToPacked(e.value) }

// NewEUI48 builds an EUI-48 from 6 big-endian bytes.
func NewEUI48(b [6]byte) EUI {
	v, _ := strategyFor(EUI48).PackedToInt(b[:])
	return EUI{value: v, fam: EUI48}
}

// NewEUI64 builds an EUI-64 from 8 big-endian bytes.
func NewEUI64(b [8]byte) EUI {
	v, _ := strategyFor(EUI64).PackedToInt(b[:])
	return EUI{value: v, fam: EUI64}
}

// EUIFromBytes builds an EUI from packed bytes: length 6 for EUI-48,
// length 8 for EUI-64.
func EUIFromBytes(b []byte) (EUI, error) {
	switch len(b) {
	case 6:
		v, err := strategyFor(EUI48).PackedToInt(b)
		if err != nil {
			return EUI{}, err
		}
		return EUI{value: v, fam: EUI48}, nil
	case 8:
		v, err := strategyFor(EUI64).PackedToInt(b)
		if err != nil {
			return EUI{}, err
		}
		return EUI{value: v, fam: EUI64}, nil
	default:
		return EUI{}, newFormatError("", errBytesLength(len(b)))
	}
}

// Next returns e+1, failing with ErrAddrFormat at the family's all-ones
// address.
func (e EUI) Next() (EUI, error) {
	max := strategyFor(e.fam).MaxInt()
	if e.value.cmp(max) == 0 {
		return EUI{}, newFormatError("", errOutOfRange(e.fam))
	}
	return EUI{value: e.value.addUint64(1), fam: e.fam}, nil
}

// Prev returns e-1, failing with ErrAddrFormat at the family's zero
// address.
func (e EUI) Prev() (EUI, error) {
	if e.value.isZero() {
		return EUI{}, newFormatError("", errOutOfRange(e.fam))
	}
	return EUI{value: e.value.subUint64(1), fam: e.fam}, nil
}

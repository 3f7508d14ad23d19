package netaddr

// ParseEUI parses text as either an EUI-48 or EUI-64 hardware address,
// choosing the family by counting hex digits: 12 digits is EUI-48, 16 is
// EUI-64. Any other count is a format error.
func ParseEUI(text string) (EUI, error) {
	switch countHexDigits(text) {
	case 12:
		return ParseEUI48(text)
	case 16:
		return ParseEUI64(text)
	default:
		return EUI{}, newFormatError(text, ErrAddrFormat)
	}
}

// ParseEUI48 parses text as an EUI-48 address in any of the grammars
// documented on parseEUIBytes.
func ParseEUI48(text string) (EUI, error) {
	v, err := strategyFor(EUI48).Parse(text, 0)
	if err != nil {
		return EUI{}, err
	}
	return EUI{value: v, fam: EUI48}, nil
}

// ParseEUI64 parses text as an EUI-64 address.
func ParseEUI64(text string) (EUI, error) {
	v, err := strategyFor(EUI64).Parse(text, 0)
	if err != nil {
		return EUI{}, err
	}
	return EUI{value: v, fam: EUI64}, nil
}

// MustParseEUI is like ParseEUI but panics on error.
func MustParseEUI(text string) EUI {
	e, err := ParseEUI(text)
	if err != nil {
		panic(err)
	}
	return e
}

// ValidEUI reports whether text parses as an EUI-48 or EUI-64 address.
func ValidEUI(text string) bool {
	_, err := ParseEUI(text)
	return err == nil
}

func countHexDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if _, ok := hexNibble(s[i]); ok {
			n++
		}
	}
	return n
}

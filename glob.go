package netaddr

import (
	"fmt"
	"strconv"
	"strings"
)

// IPGlob is the shell-glob four-octet IPv4 notation: each component is a
// decimal octet, a hyphen range "a-b", or "*" (equivalent to "0-255").
// Once a component is a range or star, every component after it must be
// a star — this is what makes the glob reducible to one contiguous
// integer interval (a partial range anywhere but the last wildcarded
// position could split the interval).
type globComponent struct{ lo, hi byte }

func (c globComponent) isSingleton() bool { return c.lo == c.hi }
func (c globComponent) isStar() bool      { return c.lo == 0 && c.hi == 255 }

type IPGlob struct {
	comps [4]globComponent
}

// ParseIPGlob parses text as a four-octet glob expression.
func ParseIPGlob(text string) (IPGlob, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 4 {
		return IPGlob{}, newFormatError(text, ErrAddrFormat)
	}
	var g IPGlob
	wildcardSeen := false
	for i, p := range parts {
		c, err := parseGlobComponent(p)
		if err != nil {
			return IPGlob{}, newFormatError(text, err)
		}
		if wildcardSeen && !c.isStar() {
			return IPGlob{}, newFormatError(text, fmt.Errorf("%w: range components must form a contiguous star suffix", ErrAddrFormat))
		}
		if !c.isSingleton() {
			wildcardSeen = true
		}
		g.comps[i] = c
	}
	return g, nil
}

func parseGlobComponent(s string) (globComponent, error) {
	if s == "*" {
		return globComponent{0, 255}, nil
	}
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		lo, err1 := strconv.Atoi(s[:idx])
		hi, err2 := strconv.Atoi(s[idx+1:])
		if err1 != nil || err2 != nil || lo < 0 || hi > 255 || lo > hi {
			return globComponent{}, fmt.Errorf("%w: %q is not a valid octet range", ErrAddrFormat, s)
		}
		return globComponent{byte(lo), byte(hi)}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 255 {
		return globComponent{}, fmt.Errorf("%w: %q is not a valid octet", ErrAddrFormat, s)
	}
	return globComponent{byte(v), byte(v)}, nil
}

// MustParseIPGlob is like ParseIPGlob but panics on error.
func MustParseIPGlob(text string) IPGlob {
	g, err := ParseIPGlob(text)
	if err != nil {
		panic(err)
	}
	return g
}

// ValidGlob reports whether text parses as a glob expression.
func ValidGlob(text string) bool {
	_, err := ParseIPGlob(text)
	return err == nil
}

// String renders g back to its dotted glob form.
func (g IPGlob) String() string {
	parts := make([]string, 4)
	for i, c := range g.comps {
		switch {
		case c.isStar():
			parts[i] = "*"
		case c.isSingleton():
			parts[i] = strconv.Itoa(int(c.lo))
		default:
			parts[i] = fmt.Sprintf("%d-%d", c.lo, c.hi)
		}
	}
	return strings.Join(parts, ".")
}

// ToRange reduces g to the equivalent IPRange.
func (g IPGlob) ToRange() IPRange {
	var firstB, lastB [4]byte
	for i, c := range g.comps {
		firstB[i], lastB[i] = c.lo, c.hi
	}
	first, _ := IPAddressFromBytes(firstB[:])
	last, _ := IPAddressFromBytes(lastB[:])
	r, _ := NewIPRange(first, last)
	return r
}

// GlobToRange reduces g to the equivalent IPRange. Free-function form of
// IPGlob.ToRange, kept for symmetry with RangeToGlob.
func GlobToRange(g IPGlob) IPRange { return g.ToRange() }

// RangeToGlob converts r to its equivalent IPGlob, if one exists.
func RangeToGlob(r IPRange) (IPGlob, error) { return globFromRange(r.First(), r.Last()) }

// globFromRange builds the glob equivalent to [first, last] if one
// exists: at most one component may diverge between the two, and every
// component after the divergence must span the full 0-255 octet.
func globFromRange(first, last IPAddress) (IPGlob, error) {
	if first.Family() != IPv4 || last.Family() != IPv4 {
		return IPGlob{}, newConversionError(first.Family(), IPv4)
	}
	fb, lb := first.Packed(), last.Packed()
	var g IPGlob
	diverged := false
	for i := 0; i < 4; i++ {
		switch {
		case !diverged && fb[i] == lb[i]:
			g.comps[i] = globComponent{fb[i], fb[i]}
		case !diverged:
			g.comps[i] = globComponent{fb[i], lb[i]}
			diverged = true
		case fb[i] == 0 && lb[i] == 255:
			g.comps[i] = globComponent{0, 255}
		default:
			return IPGlob{}, newFormatError("", fmt.Errorf("%w: range is not expressible as a glob", ErrAddrFormat))
		}
	}
	return g, nil
}

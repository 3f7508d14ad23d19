package netaddr

import (
	"encoding/binary"
	"math/bits"
)

// uint128 is a fixed-width 128-bit unsigned integer, stored as two 64-bit
// limbs (high, low). It exists because IPv6 and EUI-64 values need more
// than 64 bits of precision but the core never needs more than 128 — an
// unbounded math/big.Int would be the wrong tool, per the same reasoning
// that led net/netip to avoid one for its own address storage.
type uint128 struct {
	hi, lo uint64
}

func uint128From64(lo uint64) uint128 {
	return uint128{lo: lo}
}

// uint128From16 interprets b as a big-endian 128-bit integer.
func uint128From16(b [16]byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// bytes16 renders u as big-endian bytes.
func (u uint128) bytes16() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
	return b
}

func (u uint128) isZero() bool { return u.hi == 0 && u.lo == 0 }

// cmp returns -1, 0, or 1 as u is less than, equal to, or greater than v.
func (u uint128) cmp(v uint128) int {
	if u.hi != v.hi {
		if u.hi < v.hi {
			return -1
		}
		return 1
	}
	switch {
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	default:
		return 0
	}
}

func (u uint128) add(v uint128) uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return uint128{hi: hi, lo: lo}
}

func (u uint128) addUint64(v uint64) uint128 {
	return u.add(uint128From64(v))
}

func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi: hi, lo: lo}
}

func (u uint128) subUint64(v uint64) uint128 {
	return u.sub(uint128From64(v))
}

func (u uint128) and(v uint128) uint128 { return uint128{hi: u.hi & v.hi, lo: u.lo & v.lo} }
func (u uint128) or(v uint128) uint128  { return uint128{hi: u.hi | v.hi, lo: u.lo | v.lo} }
func (u uint128) not() uint128          { return uint128{hi: ^u.hi, lo: ^u.lo} }

// lsh returns u << n. Behavior is defined for 0 <= n <= 128.
func (u uint128) lsh(n uint) uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{hi: u.lo << (n - 64)}
	default:
		return uint128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
	}
}

// rsh returns u >> n. Behavior is defined for 0 <= n <= 128.
func (u uint128) rsh(n uint) uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{lo: u.hi >> (n - 64)}
	default:
		return uint128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
	}
}

// trailingZeros128 returns the number of trailing zero bits, or 128 if u
// is zero. This backs the range-to-CIDR formula of §4.3: tz(0) := width.
func (u uint128) trailingZeros128() int {
	if u.lo != 0 {
		return bits.TrailingZeros64(u.lo)
	}
	if u.hi != 0 {
		return 64 + bits.TrailingZeros64(u.hi)
	}
	return 128
}

// bitLen128 returns the minimal number of bits to represent u (0 for zero).
func (u uint128) bitLen128() int {
	if u.hi != 0 {
		return 64 + bits.Len64(u.hi)
	}
	return bits.Len64(u.lo)
}

// maxUint128 returns 2^width - 1 for width in [0, 128].
func maxUint128(width int) uint128 {
	if width <= 0 {
		return uint128{}
	}
	if width >= 128 {
		return uint128{hi: ^uint64(0), lo: ^uint64(0)}
	}
	return uint128From64(1).lsh(uint(width)).sub(uint128From64(1))
}

// fitsUint64 reports whether u fits in 64 bits (hi == 0).
func (u uint128) fitsUint64() bool { return u.hi == 0 }

func (u uint128) uint64() uint64 { return u.lo }

package netaddr

// This module does not depend on an external IANA special-registry
// parser; the well-known blocks below are small and stable enough to
// hand-curate as constants, the same way net/netip bakes its own RFC
// ranges in rather than loading a table at runtime.

// IPv4 ranges are expressed as (base, mask) in host order over the
// address's low 32 bits.
type v4Block struct {
	base, mask uint32
}

func (b v4Block) contains(v uint32) bool { return v&b.mask == b.base&b.mask }

var (
	v4Private = []v4Block{
		{0x0A000000, 0xFF000000}, // 10.0.0.0/8
		{0xAC100000, 0xFFF00000}, // 172.16.0.0/12
		{0xC0A80000, 0xFFFF0000}, // 192.168.0.0/16
	}
	v4Loopback     = v4Block{0x7F000000, 0xFF000000} // 127.0.0.0/8
	v4LinkLocal    = v4Block{0xA9FE0000, 0xFFFF0000} // 169.254.0.0/16
	v4LinkMulti    = v4Block{0xE0000000, 0xFFFFFF00} // 224.0.0.0/24
	v4Multicast    = v4Block{0xE0000000, 0xF0000000} // 224.0.0.0/4
	v4Reserved     = v4Block{0xF0000000, 0xF0000000} // 240.0.0.0/4
	v4SharedCGNAT  = v4Block{0x64400000, 0xFFC00000} // 100.64.0.0/10
	v4Benchmark    = v4Block{0xC6120000, 0xFFFE0000} // 198.18.0.0/15
	v4Documentation = []v4Block{
		{0xC0000200, 0xFFFFFF00}, // 192.0.2.0/24 TEST-NET-1
		{0xC6336400, 0xFFFFFF00}, // 198.51.100.0/24 TEST-NET-2
		{0xCB007100, 0xFFFFFF00}, // 203.0.113.0/24 TEST-NET-3
	}
	v4Broadcast uint32 = 0xFFFFFFFF
)

// IPv6 ranges are expressed as a prefix over the leading bytes of the
// address's 16-byte big-endian form plus a bit width.
type v6Block struct {
	prefix []byte
	bits   int
}

func (b v6Block) contains(full [16]byte) bool {
	full16 := uint128From16(full)
	mask := maxUint128(b.bits).lsh(uint(128 - b.bits))
	var pfx [16]byte
	copy(pfx[:], b.prefix)
	return full16.and(mask).cmp(uint128From16(pfx).and(mask)) == 0
}

var (
	v6Private     = v6Block{[]byte{0xfc}, 7}                               // fc00::/7 (ULA)
	v6LinkLocal   = v6Block{[]byte{0xfe, 0x80}, 10}                        // fe80::/10
	v6LinkMulti   = v6Block{[]byte{0xff, 0x02}, 16}                        // ff02::/16
	v6IfaceMulti  = v6Block{[]byte{0xff, 0x01}, 16}                        // ff01::/16
	v6Multicast   = v6Block{[]byte{0xff}, 8}                               // ff00::/8
	v6Documentation = v6Block{[]byte{0x20, 0x01, 0x0d, 0xb8}, 32}           // 2001:db8::/32
	v6Benchmark   = v6Block{[]byte{0x20, 0x01, 0x00, 0x02, 0x00, 0x00}, 48} // 2001:2::/48
	v6Mapped      = v6Block{[]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}, 96}
	v6Compat      = v6Block{[]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 96}
)

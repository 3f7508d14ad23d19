package netaddr

import "testing"

func FuzzParseIPv4(f *testing.F) {
	f.Add("192.168.1.1")
	f.Add("0.0.0.0")
	f.Add("255.255.255.255")
	f.Add("10")
	f.Add("")
	f.Add("300.1.1.1")

	f.Fuzz(func(t *testing.T, s string) {
		a, err := ParseIPAddress(s)
		if err != nil || a.Family() != IPv4 {
			return
		}
		if !a.IsValid() {
			t.Fatalf("ParseIPAddress(%q) returned invalid address with nil error", s)
		}
		back, err := ParseIPAddress(a.String())
		if err != nil {
			t.Fatalf("round-trip through String failed for %q -> %q: %v", s, a.String(), err)
		}
		if !a.Equal(back) {
			t.Errorf("round-trip mismatch: %q -> %q -> %q", s, a.String(), back.String())
		}
	})
}

func FuzzParseIPv6(f *testing.F) {
	f.Add("::1")
	f.Add("2001:db8::1")
	f.Add("::")
	f.Add("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")
	f.Add("fe80::1%eth0")
	f.Add("::ffff:192.168.1.1")

	f.Fuzz(func(t *testing.T, s string) {
		a, err := ParseIPAddress(s)
		if err != nil || a.Family() != IPv6 {
			return
		}
		back, err := ParseIPAddress(a.String())
		if err != nil {
			t.Fatalf("round-trip through String failed for %q -> %q: %v", s, a.String(), err)
		}
		if !a.Equal(back) || a.Zone() != back.Zone() {
			t.Errorf("round-trip mismatch: %q -> %q -> %q", s, a.String(), back.String())
		}
	})
}

func FuzzParseEUI(f *testing.F) {
	f.Add("00-1B-77-AA-BB-CC")
	f.Add("00:1b:77:aa:bb:cc")
	f.Add("001b.77aa.bbcc")
	f.Add("00-1B-77-FF-FE-AA-BB-CC")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		e, err := ParseEUI(s)
		if err != nil {
			return
		}
		back, err := ParseEUI(e.String())
		if err != nil {
			t.Fatalf("round-trip through String failed for %q -> %q: %v", s, e.String(), err)
		}
		if !e.Equal(back) {
			t.Errorf("round-trip mismatch: %q -> %q -> %q", s, e.String(), back.String())
		}
	})
}

func FuzzIPRangeCIDRs(f *testing.F) {
	f.Add("10.0.0.0", "10.0.0.255")
	f.Add("10.0.0.1", "10.0.0.1")
	f.Add("0.0.0.0", "255.255.255.255")
	f.Add("192.168.1.5", "192.168.3.9")

	f.Fuzz(func(t *testing.T, firstS, lastS string) {
		first, err := ParseIPAddress(firstS)
		if err != nil || first.Family() != IPv4 {
			return
		}
		last, err := ParseIPAddress(lastS)
		if err != nil || last.Family() != IPv4 {
			return
		}
		r, err := NewIPRange(first, last)
		if err != nil {
			return
		}
		cidrs := r.CIDRs()
		if len(cidrs) == 0 {
			t.Fatalf("CIDRs() returned no blocks for valid range %s", r)
		}
		rebuilt, err := CIDRsToIPRange(cidrs)
		if err != nil {
			t.Fatalf("CIDRsToIPRange failed: %v", err)
		}
		if !rebuilt.First().Equal(r.First()) || !rebuilt.Last().Equal(r.Last()) {
			t.Errorf("CIDR decomposition round-trip mismatch: %s -> %v -> %s", r, cidrs, rebuilt)
		}
		for i := 1; i < len(cidrs); i++ {
			if cidrs[i-1].Broadcast().value.addUint64(1).cmp(cidrs[i].Network().value) != 0 {
				t.Errorf("CIDR blocks not contiguous at index %d for range %s", i, r)
			}
		}
	})
}

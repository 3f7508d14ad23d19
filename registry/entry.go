package registry

// OUIEntry is one organization's registration under a 24-bit OUI. A
// single OUI can carry more than one entry when the IEEE has reassigned
// or re-registered the same prefix over time; entries are ordered by
// appearance in the source file.
type OUIEntry struct {
	Prefix24 uint32
	Org      string
	Address  []string
	Index    int
}

// IABEntry is one organization's registration under a 36-bit IAB
// sub-block of the legacy 00-50-C2 or modern 40-D8-55 IAB OUI.
type IABEntry struct {
	Prefix36 uint64
	Org      string
	Address  []string
}

package netaddr

// String renders e in its canonical IEEE dash form (AA-BB-CC-DD-EE-FF).
func (e EUI) String() string {
	if !e.IsValid() {
		return ""
	}
	return strategyFor(e.fam).Format(e.value, DialectCanonical)
}

// Format renders e using an explicit dialect.
func (e EUI) Format(d Dialect) string {
	if !e.IsValid() {
		return ""
	}
	return strategyFor(e.fam).Format(e.value, d)
}

// Words returns e's byte decomposition, one word per octet, MSB first.
func (e EUI) Words() []uint32 {
	if !e.IsValid() {
		return nil
	}
	return strategyFor(e.fam).WordSplit(e.value)
}

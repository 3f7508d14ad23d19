package netaddr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MarshalText implements encoding.TextMarshaler for IPNetwork as
// "<address>/<prefix>".
func (n IPNetwork) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return []byte{}, nil
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for IPNetwork.
func (n *IPNetwork) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*n = IPNetwork{}
		return nil
	}
	parsed, err := ParseIPNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalJSON implements json.Marshaler for IPNetwork as a quoted
// "<address>/<prefix>" string.
func (n IPNetwork) MarshalJSON() ([]byte, error) {
	if !n.IsValid() {
		return []byte(`""`), nil
	}
	return json.Marshal(n.String())
}

// UnmarshalJSON implements json.Unmarshaler for IPNetwork.
func (n *IPNetwork) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = IPNetwork{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrAddrFormat, err)
	}
	if s == "" {
		*n = IPNetwork{}
		return nil
	}
	parsed, err := ParseIPNetwork(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for IPRange as
// "<first>-<last>".
func (r IPRange) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return []byte{}, nil
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for IPRange.
func (r *IPRange) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = IPRange{}
		return nil
	}
	parsed, err := ParseIPRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalJSON implements json.Marshaler for IPRange.
func (r IPRange) MarshalJSON() ([]byte, error) {
	if !r.IsValid() {
		return []byte(`""`), nil
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON implements json.Unmarshaler for IPRange.
func (r *IPRange) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = IPRange{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrAddrFormat, err)
	}
	if s == "" {
		*r = IPRange{}
		return nil
	}
	parsed, err := ParseIPRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalJSON implements json.Marshaler for IPSet as a JSON array of
// canonical CIDR strings.
func (s *IPSet) MarshalJSON() ([]byte, error) {
	strs := make([]string, len(s.cidrs))
	for i, n := range s.cidrs {
		strs[i] = n.String()
	}
	return json.Marshal(strs)
}

// UnmarshalJSON implements json.Unmarshaler for IPSet.
func (s *IPSet) UnmarshalJSON(data []byte) error {
	var strs []string
	if err := json.Unmarshal(data, &strs); err != nil {
		return fmt.Errorf("%w: %w", ErrAddrFormat, err)
	}
	nets := make([]IPNetwork, 0, len(strs))
	for _, str := range strs {
		str = strings.TrimSpace(str)
		if str == "" {
			continue
		}
		n, err := ParseIPNetwork(str)
		if err != nil {
			return err
		}
		nets = append(nets, n)
	}
	s.cidrs = CIDRMerge(nets)
	return nil
}

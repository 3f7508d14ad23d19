package netaddr

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler, writing the address's
// canonical String form. An invalid address marshals to an empty slice.
func (a IPAddress) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return []byte{}, nil
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting anything
// ParseIPAddress accepts. An empty input resets the receiver to the zero
// value.
func (a *IPAddress) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = IPAddress{}
		return nil
	}
	parsed, err := ParseIPAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON implements json.Marshaler as a quoted string in canonical
// form. An invalid address marshals to "".
func (a IPAddress) MarshalJSON() ([]byte, error) {
	if !a.IsValid() {
		return []byte(`""`), nil
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null or empty string
// resets the receiver to the zero value.
func (a *IPAddress) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = IPAddress{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrAddrFormat, err)
	}
	if s == "" {
		*a = IPAddress{}
		return nil
	}
	parsed, err := ParseIPAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, writing the packed
// big-endian form (4 bytes for IPv4, 16 for IPv6). Zone identifiers are
// dropped; they have no portable binary representation.
func (a IPAddress) MarshalBinary() ([]byte, error) {
	if !a.IsValid() {
		return nil, newFormatError("", errOutOfRange(a.fam))
	}
	return a.Packed(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, inverse of
// MarshalBinary.
func (a *IPAddress) UnmarshalBinary(data []byte) error {
	parsed, err := IPAddressFromBytes(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements database/sql/driver.Valuer, writing the canonical
// string form. An invalid address writes SQL NULL.
func (a IPAddress) Value() (driver.Value, error) {
	if !a.IsValid() {
		return nil, nil
	}
	return a.String(), nil
}

// Scan implements database/sql.Scanner, accepting string, packed []byte
// (4 or 16 bytes), or nil.
func (a *IPAddress) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = IPAddress{}
		return nil
	case string:
		if v == "" {
			*a = IPAddress{}
			return nil
		}
		parsed, err := ParseIPAddress(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*a = IPAddress{}
			return nil
		}
		if len(v) == 4 || len(v) == 16 {
			parsed, err := IPAddressFromBytes(v)
			if err != nil {
				return err
			}
			*a = parsed
			return nil
		}
		parsed, err := ParseIPAddress(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrAddrFormat, src)
	}
}

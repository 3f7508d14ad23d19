package netaddr

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler, writing e's canonical
// IEEE dash form. An invalid EUI marshals to an empty slice.
func (e EUI) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return []byte{}, nil
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting anything
// ParseEUI accepts. Empty input resets the receiver to the zero value.
func (e *EUI) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*e = EUI{}
		return nil
	}
	parsed, err := ParseEUI(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalJSON implements json.Marshaler as a quoted canonical string.
func (e EUI) MarshalJSON() ([]byte, error) {
	if !e.IsValid() {
		return []byte(`""`), nil
	}
	return json.Marshal(e.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *EUI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = EUI{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrAddrFormat, err)
	}
	if s == "" {
		*e = EUI{}
		return nil
	}
	parsed, err := ParseEUI(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, writing the packed
// big-endian form (6 bytes for EUI-48, 8 for EUI-64).
func (e EUI) MarshalBinary() ([]byte, error) {
	if !e.IsValid() {
		return nil, newFormatError("", errOutOfRange(e.fam))
	}
	return e.Packed(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *EUI) UnmarshalBinary(data []byte) error {
	parsed, err := EUIFromBytes(data)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Value implements database/sql/driver.Valuer.
func (e EUI) Value() (driver.Value, error) {
	if !e.IsValid() {
		return nil, nil
	}
	return e.String(), nil
}

// Scan implements database/sql.Scanner, accepting string, packed []byte
// (6 or 8 bytes), or nil.
func (e *EUI) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*e = EUI{}
		return nil
	case string:
		if v == "" {
			*e = EUI{}
			return nil
		}
		parsed, err := ParseEUI(v)
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*e = EUI{}
			return nil
		}
		if len(v) == 6 || len(v) == 8 {
			parsed, err := EUIFromBytes(v)
			if err != nil {
				return err
			}
			*e = parsed
			return nil
		}
		parsed, err := ParseEUI(string(v))
		if err != nil {
			return err
		}
		*e = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrAddrFormat, src)
	}
}

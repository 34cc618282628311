package fieldhash

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalJSON writes e as a quoted decimal string.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON accepts a decimal or 0x hex string, or a bare decimal number.
// Values outside the field are rejected with ErrNotInField.
func (e *Element) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalCBOR writes e as a 32 byte big endian byte string.
func (e Element) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(Bytes(e))
}

// UnmarshalCBOR reads the byte string written by MarshalCBOR, rejecting any
// value outside the field.
func (e *Element) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("%w: %v", ErrNotInField, err)
	}
	v, err := FromBytes(b)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

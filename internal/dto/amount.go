package dto

import (
	"bytes"
	"encoding/json"
)

// Amount holds a monetary amount exactly as the client sent it.
// It accepts a JSON number or string and never fails to decode, so that a
// bad value is reported as INVALID_AMOUNT instead of a malformed body.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*a = Amount(b)
			return nil
		}
		*a = Amount(s)
	default:
		*a = Amount(b)
	}
	return nil
}

func (a Amount) String() string {
	return string(a)
}

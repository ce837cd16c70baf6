package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RecordID identifies a backend-owned record. The backend may send ids either as
// JSON strings or as JSON numbers; both decode to the same textual form.
type RecordID string

// UnmarshalJSON accepts "1", 1 and null.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("record id must be a string or number: %w", err)
	}
	*id = RecordID(n.String())
	return nil
}

// String returns the id as a plain string.
func (id RecordID) String() string {
	return string(id)
}

// IsZero reports whether the id is unset (e.g. for a record not yet created).
func (id RecordID) IsZero() bool {
	return id == ""
}

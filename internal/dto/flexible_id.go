package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleID decodes from a JSON number or a numeric string ("3" or 3).
type FlexibleID uint

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
		if len(data) == 0 {
			*id = 0
			return nil
		}
	}

	n, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", data)
	}
	*id = FlexibleID(n)
	return nil
}

func (id FlexibleID) Uint() uint {
	return uint(id)
}

package models

import (
	"encoding/json"
	"fmt"
)

// scanJSON decodes a JSONB column into dst. Postgres hands the value over as
// []byte; NULL columns leave dst untouched.
func scanJSON(src interface{}, dst interface{}) error {
	if src == nil {
		return nil
	}

	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}

	return json.Unmarshal(b, dst)
}

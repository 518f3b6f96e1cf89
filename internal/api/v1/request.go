package v1

import (
	"bytes"
	"encoding/json"
)

type SendSMSRequest struct {
	To      Field `json:"to"`
	Message Field `json:"message"`
}

// Field accepts any JSON value. Strings keep their content, null becomes empty
// and every other value keeps its literal JSON text, so numbers reach the
// provider as written.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}

	*f = Field(data)
	return nil
}

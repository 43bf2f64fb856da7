package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrNoJSONData  = errors.New("No JSON data provided")
	ErrNoSequences = errors.New("No sequences provided")
)

// Body of POST /predict
type PredictRequest struct {
	Sequences SequenceList `json:"sequences"`
}

// SequenceList accepts either one string or an array. Array elements that
// are not strings are kept as "" so they count as supplied but never
// validate. A bare "" or null is an empty list.
type SequenceList []string

func (s *SequenceList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = nil
		} else {
			*s = SequenceList{single}
		}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("sequences must be a string or an array of strings")
	}

	out := make(SequenceList, len(items))
	for i, item := range items {
		var seq string
		if err := json.Unmarshal(item, &seq); err == nil {
			out[i] = seq
		}
	}
	*s = out
	return nil
}

// isEmptyValue reports whether raw is null, false, zero, "", [] or {}.
// Such values count as "nothing supplied" rather than as malformed input.
func isEmptyValue(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// DecodePredictRequest reads a predict body. ErrNoJSONData and ErrNoSequences
// are caller mistakes; any other error means the body is malformed.
func DecodePredictRequest(body io.Reader) (*PredictRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrNoJSONData
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON body")
	}
	if isEmptyValue(raw) {
		return nil, ErrNoJSONData
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	rawSeqs, ok := fields["sequences"]
	if !ok || isEmptyValue(rawSeqs) {
		return nil, ErrNoSequences
	}

	req := &PredictRequest{}
	if err := json.Unmarshal(rawSeqs, &req.Sequences); err != nil {
		return nil, err
	}

	if len(req.Sequences) == 0 {
		return nil, ErrNoSequences
	}
	return req, nil
}

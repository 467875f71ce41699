package services

import (
	"encoding/json"
)

// The upstream API has no consistent envelope: depending on the endpoint the
// record array sits under "data", "result", "results", or a resource-named
// key ("employees", "payments", ...). DecodeRecordList probes the known
// wrappings in order and fails closed with an empty list.

// envelopeKeys are probed in order before the resource-named key
var envelopeKeys = []string{"data", "result", "results"}

// DecodeRecordList extracts the record array from an upstream response body.
// resourceKey is the endpoint's own name for its collection (e.g. "employees").
// A bare top-level array is accepted as-is. Returns ErrKindBadShape only when
// the body is not JSON at all; a JSON body with no recognizable array yields
// an empty list.
func DecodeRecordList(body []byte, resourceKey string) ([]json.RawMessage, error) {
	// Bare array
	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, newUpstreamError(ErrKindBadShape, 0)
	}

	keys := append(append([]string{}, envelopeKeys...), resourceKey)
	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &records); err == nil {
			return records, nil
		}
	}

	// Known-shaped JSON with no array under any key: fail closed, not loud
	return []json.RawMessage{}, nil
}

// DecodeRecord extracts a single object from an upstream response body,
// probing the same envelope keys as DecodeRecordList. Single-object reads
// have no fail-closed fallback; an unrecognized shape is an error.
func DecodeRecord(body []byte, resourceKey string, target any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return newUpstreamError(ErrKindBadShape, 0)
	}

	keys := append(append([]string{}, envelopeKeys...), resourceKey)
	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err == nil {
			return nil
		}
		// The wrapped value may itself be a one-element array
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
			if err := json.Unmarshal(list[0], target); err == nil {
				return nil
			}
		}
	}

	// No envelope key matched: the body may be the bare object
	if err := json.Unmarshal(body, target); err == nil {
		return nil
	}
	return newUpstreamError(ErrKindBadShape, 0)
}

// DecodeInto unmarshals each raw record into a slice of T, skipping records
// that do not parse instead of aborting the whole list
func DecodeInto[T any](records []json.RawMessage) []T {
	out := make([]T, 0, len(records))
	for _, raw := range records {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out
}

package requestlog

import (
	"bytes"
	"encoding/json"
	"strings"
)

// timestampLayout renders ISO-8601 UTC with microsecond precision.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// projectError maps a raw error payload onto the configured field names.
// Only the unset sentinel (nil) means "no error": a present-but-empty
// payload still yields a mapping, with every mapped field null, so
// legitimately falsy payload values are never mistaken for absence. Missing
// source keys project to null; a payload that is not a mapping degrades to
// null rather than failing the request.
func projectError(payload any, mapping map[string]string) any {
	if payload == nil {
		return nil
	}
	info, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]any, len(mapping))
	for src, dst := range mapping {
		out[dst] = info[src]
	}
	return out
}

// encodeRecord serializes the record as a single compact JSON line.
// HTML escaping is disabled so non-ASCII and markup characters are emitted
// literally.
func encodeRecord(record map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

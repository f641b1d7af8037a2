package normalizer

import (
	"github.com/tidwall/gjson"

	"github.com/heartmarshall/infofinder-backend/internal/payload"
)

// Record is the effective record split into known and additional fields.
// Only displayable values are kept; a key lives in exactly one of the two.
type Record struct {
	Known      map[string]gjson.Result
	Additional []payload.Field

	// all keeps every field, displayable or not, for the fallback section.
	all   []payload.Field
	value gjson.Result
}

// NewRecord splits an effective record into known and additional fields.
func NewRecord(effective gjson.Result) Record {
	rec := Record{
		Known: make(map[string]gjson.Result),
		all:   payload.Fields(effective),
		value: effective,
	}
	for _, f := range rec.all {
		if !payload.Displayable(f.Value) {
			continue
		}
		if knownKeys[f.Key] {
			rec.Known[f.Key] = f.Value
			continue
		}
		rec.Additional = append(rec.Additional, f)
	}
	return rec
}

// Get returns a displayable field by key.
func (r Record) Get(key string) (gjson.Result, bool) {
	if v, ok := r.Known[key]; ok {
		return v, true
	}
	for _, f := range r.Additional {
		if f.Key == key {
			return f.Value, true
		}
	}
	return gjson.Result{}, false
}

// GetText returns the display text of a displayable field.
func (r Record) GetText(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	return payload.Text(v), true
}

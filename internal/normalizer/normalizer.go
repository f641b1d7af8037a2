// Package normalizer turns lookup responses of any supported shape into the
// sectioned presentation model. Normalization is total: sparse or malformed
// payloads produce fewer items, never an error.
package normalizer

import (
	"github.com/heartmarshall/infofinder-backend/internal/domain"
	"github.com/heartmarshall/infofinder-backend/internal/payload"
)

// Effective parses raw and resolves its envelope into the effective record.
// Invalid JSON yields an empty record.
func Effective(raw []byte) Record {
	v, ok := payload.Parse(raw)
	if !ok {
		return NewRecord(v)
	}
	_, rec := payload.Resolve(v)
	return NewRecord(rec)
}

// Normalize builds the presentation model for a primary search.
func Normalize(c domain.Category, searchValue string, raw []byte) domain.Presentation {
	def := domain.DefinitionFor(c)
	rec := Effective(raw)

	p := domain.Presentation{
		Category:    c,
		SearchValue: searchValue,
		Sections:    []domain.Section{},
	}

	// Only one hop: the chained lookup result is normalized by NormalizeChained,
	// which never yields another chained id.
	if def.HasChain() {
		if id, ok := rec.GetText("id"); ok {
			p.ChainedID = &id
		}
	}

	if items := personalSection.items(rec); len(items) > 0 {
		if def.EchoSearchValue && searchValue != "" {
			items = append(items, domain.Item{Label: searchValueLabel, Value: searchValue})
		}
		p.AppendSection(personalSection.section(items))
	}

	if items := locationSection.items(rec); len(items) > 0 {
		p.AppendSection(locationSection.section(items))
	}

	if len(rec.Additional) > 0 {
		items := make([]domain.Item, 0, len(rec.Additional))
		for _, f := range rec.Additional {
			items = append(items, domain.Item{Label: FormatKey(f.Key), Value: payload.Text(f.Value)})
		}
		p.AppendSection(additionalSection.section(items))
	}

	if len(p.Sections) == 0 {
		p.AppendSection(fallbackSection.section(fallbackItems(rec)))
	}

	if address, ok := rec.GetText("address"); ok {
		hint := CleanAddress(address)
		p.LocationHint = &hint
	}

	return p
}

// NormalizeChained builds the single section appended after a chained lookup
// for chainedID.
func NormalizeChained(chainedID string, raw []byte) domain.Section {
	rec := Effective(raw)
	items := []domain.Item{{Label: chainedIDLabel, Value: chainedID}}
	items = append(items, chainedSection.items(rec)...)
	return chainedSection.section(items)
}

// fallbackItems lists every field of the record, present or not, so a
// non-empty payload never renders as a blank result.
func fallbackItems(rec Record) []domain.Item {
	items := []domain.Item{}
	for _, f := range rec.all {
		items = append(items, domain.Item{Label: FormatKey(f.Key), Value: textOrDash(f)})
	}
	if len(rec.all) == 0 && rec.value.Exists() && !rec.value.IsObject() && !rec.value.IsArray() {
		items = append(items, domain.Item{
			Label: scalarLabel,
			Value: textOrDash(payload.Field{Value: rec.value}),
		})
	}
	return items
}

func textOrDash(f payload.Field) string {
	if !payload.Truthy(f.Value) {
		return missingValue
	}
	return payload.Text(f.Value)
}

package normalizer

import "github.com/heartmarshall/infofinder-backend/internal/domain"

type fieldLayout struct {
	key    string
	label  string
	format func(string) string
}

type sectionLayout struct {
	key    domain.SectionKey
	title  string
	icon   string
	fields []fieldLayout
}

const (
	searchValueLabel = "Search Value"
	chainedIDLabel   = "Aadhaar Number"
	scalarLabel      = "Value"
	missingValue     = "-"
)

var personalSection = sectionLayout{
	key:   domain.SectionPersonal,
	title: "Personal Information",
	icon:  "👤",
	fields: []fieldLayout{
		{key: "name", label: "Name"},
		{key: "fname", label: "Father's Name"},
		{key: "mobile", label: "Mobile Number"},
		{key: "id", label: "Aadhaar ID"},
	},
}

var locationSection = sectionLayout{
	key:   domain.SectionLocation,
	title: "Location Details",
	icon:  "📍",
	fields: []fieldLayout{
		{key: "circle", label: "Service Circle"},
		{key: "address", label: "Address", format: CleanAddress},
		{key: "city", label: "City"},
		{key: "state", label: "State"},
	},
}

var additionalSection = sectionLayout{
	key:   domain.SectionAdditional,
	title: "Additional Information",
	icon:  "📊",
}

var fallbackSection = sectionLayout{
	key:   domain.SectionFallback,
	title: "Information",
	icon:  "📄",
}

var chainedSection = sectionLayout{
	key:   domain.SectionChained,
	title: "Aadhaar Details",
	icon:  "🆔",
	fields: []fieldLayout{
		{key: "name", label: "Name"},
		{key: "fname", label: "Father's Name"},
		{key: "address", label: "Address", format: CleanAddress},
		{key: "dob", label: "Date of Birth"},
		{key: "gender", label: "Gender"},
	},
}

// knownKeys are the fields claimed by the Personal and Location sections.
var knownKeys = func() map[string]bool {
	keys := make(map[string]bool)
	for _, s := range []sectionLayout{personalSection, locationSection} {
		for _, f := range s.fields {
			keys[f.key] = true
		}
	}
	return keys
}()

func (s sectionLayout) section(items []domain.Item) domain.Section {
	return domain.Section{Key: s.key, Title: s.title, Icon: s.icon, Items: items}
}

// items collects the layout fields present in rec, in layout order.
func (s sectionLayout) items(rec Record) []domain.Item {
	var items []domain.Item
	for _, f := range s.fields {
		text, ok := rec.GetText(f.key)
		if !ok {
			continue
		}
		if f.format != nil {
			text = f.format(text)
		}
		items = append(items, domain.Item{Label: f.label, Value: text})
	}
	return items
}

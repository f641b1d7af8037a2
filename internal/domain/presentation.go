package domain

// SectionKey identifies a section of the presentation model.
type SectionKey string

const (
	SectionPersonal   SectionKey = "personal"
	SectionLocation   SectionKey = "location"
	SectionAdditional SectionKey = "additional"
	SectionFallback   SectionKey = "information"
	SectionChained    SectionKey = "aadhaar"
)

// Item is a single label/value pair.
type Item struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is a titled, icon-tagged group of items.
type Section struct {
	Key   SectionKey `json:"key"`
	Title string     `json:"title"`
	Icon  string     `json:"icon"`
	Items []Item     `json:"items"`
}

// Presentation is the display model built from one lookup response.
type Presentation struct {
	Category     Category  `json:"category"`
	SearchValue  string    `json:"searchValue"`
	Sections     []Section `json:"sections"`
	ChainedID    *string   `json:"chainedId,omitempty"`
	LocationHint *string   `json:"locationHint,omitempty"`
}

// AppendSection adds a section after the existing ones.
func (p *Presentation) AppendSection(s Section) {
	p.Sections = append(p.Sections, s)
}

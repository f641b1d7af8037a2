package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Category identifies the kind of identifier being looked up.
type Category string

const (
	CategoryMobile     Category = "mobile"
	CategoryNationalID Category = "aadhar"
	CategoryVehicle    Category = "vehicle"
	CategoryFamily     Category = "family"
	CategoryBankCode   Category = "ifsc"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	_, ok := registry[c]
	return ok
}

// Endpoint describes where a category is looked up upstream. The identifier is
// sent as the value of Param on BaseURL.
type Endpoint struct {
	BaseURL string
	Param   string
}

// CategoryDefinition is the static, per-category configuration record.
type CategoryDefinition struct {
	ID          Category
	Icon        string
	Name        string
	Placeholder string
	Hint        string
	MaxLength   int
	Pattern     *regexp.Regexp
	Endpoint    Endpoint

	// EchoSearchValue adds the searched value to the Personal section.
	EchoSearchValue bool
	// ChainsTo is the category a discovered record id can be looked up under.
	// Empty means the category offers no chained lookup.
	ChainsTo Category
	// Noun completes the invalid-input message ("number" or "code").
	Noun string
}

// HasChain reports whether results of this category may trigger a chained lookup.
func (d CategoryDefinition) HasChain() bool { return d.ChainsTo != "" }

var categoryOrder = []Category{
	CategoryMobile,
	CategoryNationalID,
	CategoryVehicle,
	CategoryFamily,
	CategoryBankCode,
}

var registry = map[Category]CategoryDefinition{
	CategoryMobile: {
		ID:              CategoryMobile,
		Icon:            "📱",
		Name:            "Mobile Number",
		Placeholder:     "Enter mobile number (e.g., 9876543210)",
		Hint:            "Enter 10-digit mobile number",
		MaxLength:       10,
		Pattern:         regexp.MustCompile(`^\d{10}$`),
		Endpoint:        Endpoint{BaseURL: "https://ox.taitaninfo.workers.dev/", Param: "mobile"},
		EchoSearchValue: false,
		ChainsTo:        CategoryNationalID,
		Noun:            "number",
	},
	CategoryNationalID: {
		ID:              CategoryNationalID,
		Icon:            "🆔",
		Name:            "Aadhaar Number",
		Placeholder:     "Enter Aadhaar number (e.g., 123456789012)",
		Hint:            "Enter 12-digit Aadhaar number",
		MaxLength:       12,
		Pattern:         regexp.MustCompile(`^\d{12}$`),
		Endpoint:        Endpoint{BaseURL: "https://ox.taitaninfo.workers.dev/", Param: "aadhar"},
		EchoSearchValue: true,
		Noun:            "number",
	},
	CategoryVehicle: {
		ID:              CategoryVehicle,
		Icon:            "🚗",
		Name:            "Vehicle Number",
		Placeholder:     "Enter vehicle number (e.g., UP15AB1234)",
		Hint:            "Enter vehicle registration number",
		MaxLength:       20,
		Pattern:         regexp.MustCompile(`(?i)^[A-Z]{2}\d{1,2}[A-Z]{1,2}\d{1,4}$`),
		Endpoint:        Endpoint{BaseURL: "https://ox.taitaninfo.workers.dev/", Param: "vehicle"},
		EchoSearchValue: true,
		Noun:            "number",
	},
	CategoryFamily: {
		ID:              CategoryFamily,
		Icon:            "👨‍👩‍👧‍👦",
		Name:            "Family Identifier",
		Placeholder:     "Enter family name or identifier",
		Hint:            "Enter family name or identifier",
		MaxLength:       50,
		Pattern:         regexp.MustCompile(`(?s)^.+$`),
		Endpoint:        Endpoint{BaseURL: "https://ox.taitaninfo.workers.dev/", Param: "family"},
		EchoSearchValue: true,
		Noun:            "number",
	},
	CategoryBankCode: {
		ID:              CategoryBankCode,
		Icon:            "🏦",
		Name:            "IFSC Code",
		Placeholder:     "Enter IFSC code (e.g., SBIN0000001)",
		Hint:            "Enter 11-character IFSC code",
		MaxLength:       11,
		Pattern:         regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`),
		Endpoint:        Endpoint{BaseURL: "https://ifsc.taitaninfo.workers.dev/", Param: "code"},
		EchoSearchValue: true,
		Noun:            "code",
	},
}

// DefinitionFor returns the definition of a known category.
// It panics for ids outside the closed set: callers must parse external input
// with ParseCategory first.
func DefinitionFor(c Category) CategoryDefinition {
	def, ok := registry[c]
	if !ok {
		panic(fmt.Sprintf("domain: unknown category %q", string(c)))
	}
	return def
}

// Categories returns all category ids in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory converts user input into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", NewValidationError("category", "unknown category")
	}
	return c, nil
}

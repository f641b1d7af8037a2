// Package render draws lookup results for terminal output.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"

	"github.com/heartmarshall/infofinder-backend/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4B5563")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// Section renders one section as a bordered card.
func Section(s domain.Section) string {
	width := 0
	for _, it := range s.Items {
		width = max(width, lipgloss.Width(it.Label))
	}

	rows := make([]string, 0, len(s.Items)+1)
	rows = append(rows, titleStyle.Render(strings.TrimSpace(s.Icon+" "+s.Title)))
	for _, it := range s.Items {
		label := labelStyle.Width(width + 2).Render(it.Label + ":")
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, valueStyle.Render(it.Value)))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Presentation renders the header line and every section in order.
func Presentation(p *domain.Presentation) string {
	def := domain.DefinitionFor(p.Category)
	header := headerStyle.Render(fmt.Sprintf("%s %s: %s", def.Icon, def.Name, p.SearchValue))

	blocks := make([]string, 0, len(p.Sections)+1)
	blocks = append(blocks, header)
	for _, s := range p.Sections {
		blocks = append(blocks, Section(s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Categories renders the category list with input hints.
func Categories() string {
	rows := make([]string, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		def := domain.DefinitionFor(c)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Width(10).Render(c.String()),
			valueStyle.Render(def.Icon+" "+def.Name),
			labelStyle.Render("  "+def.Hint),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Error renders a user-facing failure message.
func Error(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// JSON encodes v as indented JSON, colorized when color is set.
func JSON(v any, color bool) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	out := pretty.Pretty(data)
	if color {
		out = pretty.Color(out, nil)
	}
	return out, nil
}

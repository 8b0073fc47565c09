// Package report renders a normalized roadmap for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spigell/skill2success/internal/roadmap"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).MarginTop(1)
	tierStyle    = lipgloss.NewStyle().Bold(true)
	itemStyle    = lipgloss.NewStyle().PaddingLeft(2)
	detailStyle  = lipgloss.NewStyle().PaddingLeft(4).Faint(true)
	emptyStyle   = lipgloss.NewStyle().PaddingLeft(2).Faint(true).Italic(true)
)

// Render formats the roadmap as styled terminal text: recommended careers,
// skills per priority tier with rationales, micro-projects, and internship
// tips numbered 1..N.
func Render(rm *roadmap.Roadmap) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Your Personalized Career Roadmap"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Recommended career paths"))
	b.WriteString("\n")
	if len(rm.Careers) == 0 {
		writeEmpty(&b, "no career paths recommended")
	}
	for _, c := range rm.Careers {
		b.WriteString(itemStyle.Render("• " + c.Title))
		b.WriteString("\n")
		if c.Description != "" {
			b.WriteString(detailStyle.Render(c.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString(sectionStyle.Render("Skills to learn"))
	b.WriteString("\n")
	for _, tier := range roadmap.Tiers() {
		b.WriteString(itemStyle.Render(tierStyle.Render(tier.DisplayName())))
		b.WriteString("\n")
		skills := rm.SkillsByTier[tier]
		if len(skills) == 0 {
			b.WriteString(detailStyle.Render("none"))
			b.WriteString("\n")
			continue
		}
		for _, s := range skills {
			line := "• " + s.Name
			if s.Rationale != "" {
				line += ": " + s.Rationale
			}
			b.WriteString(detailStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString(sectionStyle.Render("Suggested micro-projects"))
	b.WriteString("\n")
	if len(rm.Projects) == 0 {
		writeEmpty(&b, "no projects suggested")
	}
	for _, p := range rm.Projects {
		b.WriteString(itemStyle.Render("• " + p.Title))
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString(detailStyle.Render(p.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString(sectionStyle.Render("Internship tips"))
	b.WriteString("\n")
	if len(rm.Tips) == 0 {
		writeEmpty(&b, "no tips provided")
	}
	for i, tip := range rm.Tips {
		b.WriteString(itemStyle.Render(fmt.Sprintf("%d. %s", i+1, tip)))
		b.WriteString("\n")
	}

	return b.String()
}

func writeEmpty(b *strings.Builder, msg string) {
	b.WriteString(emptyStyle.Render(msg))
	b.WriteString("\n")
}

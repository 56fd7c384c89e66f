package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSections(t *testing.T) {
	text := `
EXPERIENCE
Worked at Google

EDUCATION
SIUE

SKILLS
Python, C++
`

	sections := ParseSections(text)

	for _, name := range []string{"experience", "education", "skills"} {
		if _, ok := sections[name]; !ok {
			t.Errorf("Expected section %q to be present", name)
		}
	}

	if sections["experience"] != "Worked at Google" {
		t.Errorf("Expected experience content %q, got %q", "Worked at Google", sections["experience"])
	}

	if sections["skills"] != "Python, C++" {
		t.Errorf("Expected skills content %q, got %q", "Python, C++", sections["skills"])
	}
}

func TestParseSectionsNoHeadings(t *testing.T) {
	sections := ParseSections("Just some random text with no section headers at all.")

	if len(sections) != 0 {
		t.Errorf("Expected empty map for text without headings, got %v", sections)
	}
}

func TestParseSectionsMixedCaseAndSpacing(t *testing.T) {
	text := `
  work history
Did stuff

  Education
School Name

  skills
Python, C++
`

	sections := ParseSections(text)

	if !strings.Contains(sections["experience"], "Did stuff") {
		t.Errorf("Expected 'work history' heading to map to experience, got %v", sections)
	}
	if !strings.Contains(sections["education"], "School Name") {
		t.Errorf("Expected education content, got %v", sections)
	}
	if !strings.Contains(sections["skills"], "Python, C++") {
		t.Errorf("Expected skills content, got %v", sections)
	}
}

func TestParseSectionsMultiLine(t *testing.T) {
	text := `
EXPERIENCE
Line one at job
Line two at job
`

	sections := ParseSections(text)

	expected := "Line one at job\nLine two at job"
	if sections["experience"] != expected {
		t.Errorf("Expected %q, got %q", expected, sections["experience"])
	}
}

// Heading lines are never stored as content, and lines before the first
// heading are dropped.
func TestParseSectionsDropsHeadingsAndPreamble(t *testing.T) {
	text := `
John Doe
john@example.com

EXPERIENCE
Worked at Acme
`

	sections := ParseSections(text)

	if len(sections) != 1 {
		t.Fatalf("Expected exactly one section, got %v", sections)
	}
	if strings.Contains(sections["experience"], "EXPERIENCE") {
		t.Error("Heading line leaked into section content")
	}
	if strings.Contains(sections["experience"], "John Doe") {
		t.Error("Preamble leaked into section content")
	}
}

// A line matching two patterns goes to whichever rule is declared first:
// "leadership experience" matches both experience and leadership & awards,
// and experience is declared first.
func TestParseSectionsFirstMatchWins(t *testing.T) {
	text := `
leadership experience
Led a team of five
`

	sections := ParseSections(text)

	if _, ok := sections["leadership & awards"]; ok {
		t.Error("Expected first declared pattern (experience) to win the tie-break")
	}
	if sections["experience"] != "Led a team of five" {
		t.Errorf("Expected experience section, got %v", sections)
	}
}

func TestSectionNamesOrder(t *testing.T) {
	expected := []string{"experience", "education", "skills", "projects", "leadership & awards"}

	if len(SectionNames) != len(expected) {
		t.Fatalf("Expected %d section names, got %d", len(expected), len(SectionNames))
	}
	for i, name := range expected {
		if SectionNames[i] != name {
			t.Errorf("Expected section %d to be %q, got %q", i, name, SectionNames[i])
		}
	}
}

func TestWriteSections(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "parsed_resume.txt")

	sections := map[string]string{
		"skills":     "Go, Python",
		"experience": "Worked at Acme",
	}

	if err := WriteSections(sections, path); err != nil {
		t.Fatalf("WriteSections failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "===== EXPERIENCE =====") {
		t.Error("Expected experience header in output")
	}

	// Declared order, not map order: experience before skills.
	if strings.Index(content, "EXPERIENCE") > strings.Index(content, "SKILLS") {
		t.Error("Expected sections written in declared order")
	}
}

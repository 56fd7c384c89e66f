package parser

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// sectionRule pairs a section name with its heading detection pattern.
// Rules live in a slice, not a map, so the first-match tie-break between
// overlapping patterns is a declared order rather than map iteration luck.
type sectionRule struct {
	name    string
	pattern *regexp.Regexp
}

// sectionRules defines the closed set of resume sections and the order in
// which heading patterns are tried against each line.
var sectionRules = []sectionRule{
	{"experience", regexp.MustCompile(`experience|work history|employment`)},
	{"education", regexp.MustCompile(`education|academic background`)},
	{"skills", regexp.MustCompile(`skills|technical skills|abilities`)},
	{"projects", regexp.MustCompile(`projects|personal projects|academic projects`)},
	{"leadership & awards", regexp.MustCompile(`leadership|awards|honors|scholarship`)},
}

// SectionNames lists the recognized section names in their declared order.
var SectionNames = func() []string {
	names := make([]string, len(sectionRules))
	for i, rule := range sectionRules {
		names[i] = rule.name
	}
	return names
}()

// ParseSections splits raw resume text into named sections.
//
// The text is processed line by line. A line whose lower-cased, trimmed form
// matches a section pattern activates that section and is itself discarded
// (headings are never content, even when they would also read as content).
// Other lines accumulate under the active section; lines before the first
// recognized heading are dropped. The result contains only sections that
// gathered at least one line, each joined with newlines and trimmed.
// Parsing cannot fail: unrecognizable input just yields an empty map.
func ParseSections(text string) map[string]string {
	accum := make(map[string][]string, len(sectionRules))
	current := ""

	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}

		matched := false
		lower := strings.ToLower(clean)
		for _, rule := range sectionRules {
			if rule.pattern.MatchString(lower) {
				current = rule.name
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if current != "" {
			accum[current] = append(accum[current], clean)
		}
	}

	sections := make(map[string]string, len(accum))
	for name, lines := range accum {
		sections[name] = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return sections
}

// WriteSections saves parsed sections to a text file, one block per section
// in the declared section order.
func WriteSections(sections map[string]string, path string) error {
	var sb strings.Builder
	for _, name := range SectionNames {
		content, ok := sections[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n===== %s =====\n", strings.ToUpper(name)))
		sb.WriteString(content + "\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write parsed resume: %w", err)
	}
	return nil
}

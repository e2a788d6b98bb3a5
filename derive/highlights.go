package derive

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/awantha2003/portfolio-backend/models"
)

const (
	// Below this many description-derived candidates, metadata fallbacks kick in.
	fallbackThreshold = 3
	highlightLimit    = 4
)

var (
	bulletPrefix  = regexp.MustCompile(`^[\s•*-]+`)
	sentenceSplit = regexp.MustCompile(`(?:\.\s+|;\s+)`)
)

// BuildHighlights derives up to four short display facts for a project.
// Multi-line descriptions become one highlight per line (bullet markers
// stripped); single-line descriptions are split into sentences. When fewer
// than three candidates come out of the description, metadata fallbacks are
// appended, ending with a visibility fact so the result is never empty. The
// final list is deduplicated in first-occurrence order and capped at four.
func BuildHighlights(project models.Project, techStack []string) []string {
	highlights := []string{}

	if description := strings.TrimSpace(project.Description); description != "" {
		lines := splitNonEmpty(strings.Split(description, "\n"), func(line string) string {
			return strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimRight(line, "\r"), ""))
		})
		if len(lines) > 1 {
			highlights = append(highlights, lines...)
		} else {
			sentences := splitNonEmpty(sentenceSplit.Split(description, -1), strings.TrimSpace)
			if len(sentences) > 1 {
				highlights = append(highlights, sentences...)
			}
		}
	}

	if len(highlights) < fallbackThreshold {
		if project.Category != "" {
			highlights = append(highlights, "Category: "+project.Category)
		}
		if project.Country != "" {
			highlights = append(highlights, "Client region: "+project.Country)
		}
		if len(techStack) > 0 {
			highlights = append(highlights, "Stack: "+SummarizeTech(techStack))
		}
		highlights = append(highlights, fmt.Sprintf("Visibility: %s", visibility(project.IsPublic)))
	}

	return dedupe(highlights, highlightLimit)
}

func visibility(isPublic bool) string {
	if isPublic {
		return "Public"
	}
	return "Private"
}

func splitNonEmpty(parts []string, clean func(string) string) []string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if cleaned := clean(part); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func dedupe(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, limit)
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

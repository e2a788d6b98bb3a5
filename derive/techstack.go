package derive

import (
	"fmt"
	"strings"
)

// Keyword sets used to bucket tech-stack tokens. A token may land in several
// buckets or in none; matching is case-insensitive substring.
var (
	FrontendKeywords = []string{"react", "vue", "angular", "svelte", "html", "css", "javascript", "typescript", "tailwind", "bootstrap", "next", "nuxt", "vite"}
	BackendKeywords  = []string{"node", "express", "spring", "java", "php", "laravel", "django", "flask", "fastapi", "dotnet", ".net", "c#", "nestjs", "ruby", "rails"}
	DatabaseKeywords = []string{"mysql", "postgres", "postgresql", "mongodb", "mariadb", "sqlite", "firebase", "supabase", "redis"}
	SecurityKeywords = []string{"jwt", "oauth", "auth", "session", "bcrypt", "passport", "spring security"}
)

// ParseTechStack splits a free-text stack string on commas and pipes. Tokens
// are trimmed, empties dropped, order and duplicates preserved.
func ParseTechStack(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '|'
	})
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// SummarizeTech renders a token list as a short label: "Not specified" when
// empty, the joined list up to three items, otherwise the first three plus a
// "+N" remainder.
func SummarizeTech(items []string) string {
	if len(items) == 0 {
		return "Not specified"
	}
	if len(items) <= 3 {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(items[:3], ", "), len(items)-3)
}

// FilterStack keeps tokens containing any keyword, case-insensitively.
func FilterStack(stack, keywords []string) []string {
	matched := make([]string, 0, len(stack))
	for _, item := range stack {
		lowered := strings.ToLower(item)
		for _, keyword := range keywords {
			if strings.Contains(lowered, keyword) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// StackBreakdown summarizes a stack per architectural layer.
type StackBreakdown struct {
	Frontend string `json:"frontend"`
	Backend  string `json:"backend"`
	Database string `json:"database"`
	Security string `json:"security"`
}

// CategorizeStack buckets tokens by keyword set and summarizes each bucket.
func CategorizeStack(stack []string) StackBreakdown {
	return StackBreakdown{
		Frontend: SummarizeTech(FilterStack(stack, FrontendKeywords)),
		Backend:  SummarizeTech(FilterStack(stack, BackendKeywords)),
		Database: SummarizeTech(FilterStack(stack, DatabaseKeywords)),
		Security: SummarizeTech(FilterStack(stack, SecurityKeywords)),
	}
}

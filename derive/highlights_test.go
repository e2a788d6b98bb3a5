package derive

import (
	"testing"

	"github.com/awantha2003/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildHighlightsFromLines(t *testing.T) {
	project := models.Project{
		Description: "• Realtime sync\n- Offline mode\n* Dark theme",
	}

	got := BuildHighlights(project, nil)
	assert.Equal(t, []string{"Realtime sync", "Offline mode", "Dark theme"}, got)
}

func TestBuildHighlightsFromSentences(t *testing.T) {
	project := models.Project{
		Description: "Realtime chat app. Uses websockets; scales horizontally.",
	}

	got := BuildHighlights(project, nil)
	assert.Equal(t, []string{"Realtime chat app", "Uses websockets", "scales horizontally."}, got)
}

func TestBuildHighlightsFallbacks(t *testing.T) {
	project := models.Project{
		Description: "A small tool",
		Category:    models.CategoryPersonal,
		Country:     "Sri Lanka",
		IsPublic:    true,
	}

	got := BuildHighlights(project, []string{"Go", "Postgres"})
	assert.Equal(t, []string{
		"Category: Personal Project",
		"Client region: Sri Lanka",
		"Stack: Go, Postgres",
		"Visibility: Public",
	}, got)
}

func TestBuildHighlightsSkipsEmptyStack(t *testing.T) {
	project := models.Project{
		Category: models.CategoryPersonal,
		Country:  "Sri Lanka",
		IsPublic: true,
	}

	got := BuildHighlights(project, []string{})
	assert.Equal(t, []string{
		"Category: Personal Project",
		"Client region: Sri Lanka",
		"Visibility: Public",
	}, got)
}

func TestBuildHighlightsNeverEmpty(t *testing.T) {
	got := BuildHighlights(models.Project{}, nil)
	assert.Equal(t, []string{"Visibility: Private"}, got)
}

func TestBuildHighlightsCappedAtFour(t *testing.T) {
	project := models.Project{
		Description: "One\nTwo\nThree\nFour\nFive\nSix",
	}

	got := BuildHighlights(project, nil)
	assert.Len(t, got, 4)
	assert.Equal(t, []string{"One", "Two", "Three", "Four"}, got)
}

func TestBuildHighlightsDeduped(t *testing.T) {
	project := models.Project{
		Description: "Fast\nFast\nSecure",
	}

	got := BuildHighlights(project, nil)
	assert.Equal(t, []string{"Fast", "Secure"}, got)
}

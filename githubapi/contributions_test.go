package githubapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributionsFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/octocat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total": {"2023": 120, "2024": 340},
			"contributions": [
				{"date": "2024-01-01", "count": 3, "level": 1},
				{"date": "2024-01-02", "count": 7, "level": 3}
			]
		}`))
	}))
	defer server.Close()

	client := NewContributionsClient("octocat")
	client.baseURL = server.URL

	data, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 340, data.Total["2024"])
	require.Len(t, data.Contributions, 2)
	assert.Equal(t, "2024-01-01", data.Contributions[0].Date)
	assert.Equal(t, []int{2024, 2023}, data.Years())
}

func TestContributionsFetchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such user", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewContributionsClient("nobody")
	client.baseURL = server.URL

	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestContributionsFetchEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": {}}`))
	}))
	defer server.Close()

	client := NewContributionsClient("octocat")
	client.baseURL = server.URL

	data, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data.Contributions)
	assert.Empty(t, data.Years())
}

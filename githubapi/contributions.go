package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/awantha2003/portfolio-backend/derive"
)

const defaultContributionsBaseURL = "https://github-contributions-api.jogruber.de/v4"

// ContributionsClient fetches daily contribution counts from the public
// aggregator the heatmap is built on.
type ContributionsClient struct {
	httpClient *http.Client
	baseURL    string
	username   string
}

func NewContributionsClient(username string) *ContributionsClient {
	return &ContributionsClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultContributionsBaseURL,
		username:   username,
	}
}

// ContributionData is the aggregator's payload: per-year totals plus a sparse
// list of days with activity.
type ContributionData struct {
	Total         map[string]int             `json:"total"`
	Contributions []derive.ContributionEntry `json:"contributions"`
}

// Fetch retrieves all recorded contributions for the account.
func (c *ContributionsClient) Fetch(ctx context.Context) (*ContributionData, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, c.username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build contributions request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch contributions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("contributions feed returned %d: %s", resp.StatusCode, string(body))
	}

	var data ContributionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode contributions response: %w", err)
	}
	if data.Contributions == nil {
		data.Contributions = []derive.ContributionEntry{}
	}
	return &data, nil
}

// Years lists the years the feed has data for, most recent first.
func (d *ContributionData) Years() []int {
	years := make([]int, 0, len(d.Total))
	for key := range d.Total {
		if year, err := strconv.Atoi(key); err == nil {
			years = append(years, year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

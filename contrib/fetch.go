package contrib

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"gridtone/debug"
)

// Platform identifies a contribution data source
type Platform string

const (
	PlatformGitHub Platform = "github"
	PlatformGitLab Platform = "gitlab"
)

// Endpoint templates; vars so tests can point them at a local server.
var (
	// Community mirror of the GitHub contribution calendar - returns
	// per-day counts with levels already quantized server-side.
	githubURL = "https://github-contributions-api.jogruber.de/v4/%s?y=last"

	// GitLab ships the calendar as a public JSON map of date -> count.
	gitlabURL = "https://gitlab.com/users/%s/calendar.json"
)

var client = &http.Client{Timeout: 10 * time.Second}

// Fetch downloads and normalizes the contribution calendar for an
// identity. Errors surface to the caller, which is expected to fall
// back to Synthetic - the playback engine never sees a fetch failure.
func Fetch(ctx context.Context, identity string, platform Platform) (*Grid, error) {
	if identity == "" {
		return nil, fmt.Errorf("contrib: empty identity")
	}

	switch platform {
	case PlatformGitLab:
		return fetchGitLab(ctx, identity)
	case PlatformGitHub, "":
		return fetchGitHub(ctx, identity)
	default:
		return nil, fmt.Errorf("contrib: unknown platform %q", platform)
	}
}

// githubResponse matches the jogruber v4 payload
type githubResponse struct {
	Total         map[string]int `json:"total"`
	Contributions []struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
		Level int    `json:"level"`
	} `json:"contributions"`
}

func fetchGitHub(ctx context.Context, user string) (*Grid, error) {
	url := fmt.Sprintf(githubURL, user)
	body, err := get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp githubResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("contrib: decode github calendar: %w", err)
	}
	if len(resp.Contributions) == 0 {
		return nil, fmt.Errorf("contrib: no contribution data for %q", user)
	}

	days := make([]Day, 0, len(resp.Contributions))
	for _, c := range resp.Contributions {
		level := c.Level
		if level < 0 {
			level = 0
		}
		if level > 4 {
			level = 4
		}
		days = append(days, Day{Date: c.Date, Level: level, Count: c.Count})
	}
	debug.Log("contrib", "github %s: %d days", user, len(days))
	return gridFromDays(user, days), nil
}

func fetchGitLab(ctx context.Context, user string) (*Grid, error) {
	url := fmt.Sprintf(gitlabURL, user)
	body, err := get(ctx, url)
	if err != nil {
		return nil, err
	}

	var calendar map[string]int
	if err := json.Unmarshal(body, &calendar); err != nil {
		return nil, fmt.Errorf("contrib: decode gitlab calendar: %w", err)
	}

	dates := make([]string, 0, len(calendar))
	for date := range calendar {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	// GitLab reports only active days; rebuild the dense year and
	// quantize counts against the observed maximum.
	maxCount := 0
	for _, c := range calendar {
		if c > maxCount {
			maxCount = c
		}
	}

	end := time.Now()
	start := end.AddDate(0, 0, -(NumWeeks*NumDays - 1))
	days := make([]Day, 0, NumWeeks*NumDays)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		count := calendar[date]
		days = append(days, Day{
			Date:  date,
			Level: LevelFromCount(count, maxCount),
			Count: count,
		})
	}
	debug.Log("contrib", "gitlab %s: %d active days, max=%d", user, len(calendar), maxCount)
	return gridFromDays(user, days), nil
}

// gridFromDays packs a chronological day list into the 52x7 grid,
// keeping the most recent 364 days and front-padding short histories
// with empty cells so the shape invariant holds.
func gridFromDays(identity string, days []Day) *Grid {
	g := &Grid{Identity: identity}

	if n := len(days); n > NumWeeks*NumDays {
		days = days[n-NumWeeks*NumDays:]
	}
	offset := NumWeeks*NumDays - len(days)
	for i, day := range days {
		cell := offset + i
		g.Weeks[cell/NumDays].Days[cell%NumDays] = day
	}
	return g
}

func get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contrib: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contrib: fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("contrib: read %s: %w", url, err)
	}
	return body, nil
}

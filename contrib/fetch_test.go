package contrib

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideGitHubURL(t *testing.T, srv *httptest.Server) {
	t.Helper()
	old := githubURL
	githubURL = srv.URL + "/%s"
	t.Cleanup(func() { githubURL = old })
}

func overrideGitLabURL(t *testing.T, srv *httptest.Server) {
	t.Helper()
	old := gitlabURL
	gitlabURL = srv.URL + "/%s"
	t.Cleanup(func() { gitlabURL = old })
}

func TestFetchEmptyIdentity(t *testing.T) {
	_, err := Fetch(context.Background(), "", PlatformGitHub)
	assert.Error(t, err)
}

func TestFetchUnknownPlatform(t *testing.T) {
	_, err := Fetch(context.Background(), "someone", Platform("sourcehut"))
	assert.Error(t, err)
}

func TestFetchGitHub(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/octocat", r.URL.Path)
		fmt.Fprint(w, `{
			"total": {"lastYear": 7},
			"contributions": [
				{"date": "2026-08-23", "count": 3, "level": 2},
				{"date": "2026-08-24", "count": 4, "level": 9},
				{"date": "2026-08-25", "count": 0, "level": -1}
			]
		}`)
	}))
	defer srv.Close()
	overrideGitHubURL(t, srv)

	g, err := Fetch(context.Background(), "octocat", PlatformGitHub)
	require.NoError(t, err)
	assert.Equal(t, "octocat", g.Identity)

	// Three days land at the end of the grid, front-padded with zeros.
	last := g.Weeks[NumWeeks-1].Days
	assert.Equal(t, Day{Date: "2026-08-23", Level: 2, Count: 3}, last[4])
	assert.Equal(t, 4, last[5].Level, "levels clamp to 4")
	assert.Equal(t, 0, last[6].Level, "levels clamp to 0")
	assert.Equal(t, Day{}, g.Weeks[0].Days[0])
	assert.Equal(t, 7, g.TotalCount())
}

func TestFetchGitHubDefaultsWhenPlatformEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total": {}, "contributions": [{"date": "2026-01-01", "count": 1, "level": 1}]}`)
	}))
	defer srv.Close()
	overrideGitHubURL(t, srv)

	g, err := Fetch(context.Background(), "octocat", "")
	require.NoError(t, err)
	assert.Equal(t, 1, g.TotalCount())
}

func TestFetchGitHubEmptyCalendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total": {}, "contributions": []}`)
	}))
	defer srv.Close()
	overrideGitHubURL(t, srv)

	_, err := Fetch(context.Background(), "ghost", PlatformGitHub)
	assert.Error(t, err)
}

func TestFetchGitHubBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()
	overrideGitHubURL(t, srv)

	_, err := Fetch(context.Background(), "nobody", PlatformGitHub)
	assert.ErrorContains(t, err, "status 404")
}

func TestFetchGitHubBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>rate limited</html>`)
	}))
	defer srv.Close()
	overrideGitHubURL(t, srv)

	_, err := Fetch(context.Background(), "octocat", PlatformGitHub)
	assert.Error(t, err)
}

func TestFetchGitLab(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/someone", r.URL.Path)
		fmt.Fprintf(w, `{"%s": 8, "%s": 2}`, yesterday, today)
	}))
	defer srv.Close()
	overrideGitLabURL(t, srv)

	g, err := Fetch(context.Background(), "someone", PlatformGitLab)
	require.NoError(t, err)
	assert.Equal(t, "someone", g.Identity)
	assert.Equal(t, 10, g.TotalCount())

	// Counts quantize against the observed max of 8: 8 -> level 4,
	// 2 -> exactly 25% -> level 1.
	last := g.Weeks[NumWeeks-1].Days
	assert.Equal(t, Day{Date: today, Level: 1, Count: 2}, last[NumDays-1])
	assert.Equal(t, Day{Date: yesterday, Level: 4, Count: 8}, last[NumDays-2])

	// Every other day is a dated empty cell, not a zero-value hole.
	assert.Equal(t, 0, g.Weeks[0].Days[0].Count)
	assert.NotEmpty(t, g.Weeks[0].Days[0].Date)
}

func TestFetchGitLabBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()
	overrideGitLabURL(t, srv)

	_, err := Fetch(context.Background(), "someone", PlatformGitLab)
	assert.ErrorContains(t, err, "status 403")
}

func TestFetchHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()
	overrideGitHubURL(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Fetch(ctx, "octocat", PlatformGitHub)
	assert.Error(t, err)
}

func TestGridFromDaysTruncatesLongHistories(t *testing.T) {
	days := make([]Day, NumWeeks*NumDays+10)
	for i := range days {
		days[i] = Day{Date: fmt.Sprintf("day-%d", i), Count: i}
	}
	g := gridFromDays("long", days)

	// Oldest 10 days dropped; cell 0 holds day 10.
	assert.Equal(t, "day-10", g.Weeks[0].Days[0].Date)
	assert.Equal(t, fmt.Sprintf("day-%d", len(days)-1), g.Weeks[NumWeeks-1].Days[NumDays-1].Date)
}

func TestGridFromDaysFrontPadsShortHistories(t *testing.T) {
	g := gridFromDays("new", []Day{{Date: "2026-08-25", Level: 2, Count: 5}})
	assert.Equal(t, "2026-08-25", g.Weeks[NumWeeks-1].Days[NumDays-1].Date)
	assert.Equal(t, Day{}, g.Weeks[0].Days[0])
	assert.Equal(t, 5, g.TotalCount())
}

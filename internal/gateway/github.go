// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying HTTP client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/yotsuba-lab/profile-cards/internal/domain"
)

const (
	userAgent      = "profile-cards-generator"
	pageSize       = 100
	requestTimeout = 30 * time.Second

	// timestampLayout is the fixed wire format GitHub uses for account
	// timestamps. Anything that does not match renders as "n/a" downstream.
	timestampLayout = "2006-01-02T15:04:05Z"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchUser(ctx context.Context, username string) (domain.UserProfile, error)
	FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error)
	FetchLanguages(ctx context.Context, languagesURL string) (domain.LanguageBytes, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated client, subject to stricter rate limits.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	transport := http.RoundTripper(rateLimitWaiter)
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   requestTimeout,
	}
	client := github.NewClient(httpClient)
	client.UserAgent = userAgent
	return &GitHubGateway{
		client: client,
		logger: logger,
	}, nil
}

// FetchUser retrieves the account snapshot for username. Timestamps that
// are absent or malformed come back as zero times.
func (g *GitHubGateway) FetchUser(ctx context.Context, username string) (domain.UserProfile, error) {
	g.logger.Info("fetching user profile", "username", username)
	var payload struct {
		Followers int    `json:"followers"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	}
	if err := g.getJSON(ctx, fmt.Sprintf("users/%s", username), &payload); err != nil {
		return domain.UserProfile{}, err
	}
	return domain.UserProfile{
		Followers: payload.Followers,
		CreatedAt: parseTimestamp(payload.CreatedAt),
		UpdatedAt: parseTimestamp(payload.UpdatedAt),
	}, nil
}

type repoPayload struct {
	Name         string `json:"name"`
	Fork         bool   `json:"fork"`
	Stars        int    `json:"stargazers_count"`
	LanguagesURL string `json:"languages_url"`
}

// FetchRepositories enumerates all repositories owned by username, most
// recently updated first, walking pages of pageSize until the first empty
// page. Array elements that are not objects are skipped; a page that is
// not an array at all fails the run.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	var repos []domain.Repository
	for page := 1; ; page++ {
		path := fmt.Sprintf("users/%s/repos?per_page=%d&page=%d&type=owner&sort=updated", username, pageSize, page)
		g.logger.Debug("fetching repository page", "username", username, "page", page)

		var payload json.RawMessage
		if err := g.getJSON(ctx, path, &payload); err != nil {
			return nil, err
		}
		var items []json.RawMessage
		if err := json.Unmarshal(payload, &items); err != nil {
			return nil, &ShapeError{URL: path, Detail: "repository page is not a JSON array"}
		}
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			if !isJSONObject(item) {
				g.logger.Debug("skipping non-object repository entry", "page", page)
				continue
			}
			var entry repoPayload
			if err := json.Unmarshal(item, &entry); err != nil {
				g.logger.Debug("skipping malformed repository entry", "page", page, "err", err)
				continue
			}
			repos = append(repos, domain.Repository{
				Name:         entry.Name,
				Fork:         entry.Fork,
				Stars:        entry.Stars,
				LanguagesURL: entry.LanguagesURL,
			})
		}
	}
	g.logger.Info("completed repository enumeration", "username", username, "repos", len(repos))
	return repos, nil
}

// FetchLanguages retrieves the per-language byte counts behind the opaque
// languages URL of a repository. A payload that is not a JSON object is
// tolerated and yields an empty map; entries whose value is not an integer
// are skipped.
func (g *GitHubGateway) FetchLanguages(ctx context.Context, languagesURL string) (domain.LanguageBytes, error) {
	g.logger.Debug("fetching languages", "url", languagesURL)
	var payload json.RawMessage
	if err := g.getJSON(ctx, languagesURL, &payload); err != nil {
		return nil, err
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(payload, &entries); err != nil {
		g.logger.Debug("ignoring non-object languages payload", "url", languagesURL)
		return domain.LanguageBytes{}, nil
	}
	langs := make(domain.LanguageBytes, len(entries))
	for name, raw := range entries {
		var size int
		if err := json.Unmarshal(raw, &size); err != nil {
			g.logger.Debug("skipping non-integer language entry", "language", name, "url", languagesURL)
			continue
		}
		langs[name] = size
	}
	return langs, nil
}

// getJSON issues a single GET through the go-github client and decodes the
// body into v. urlStr may be a path relative to the API base or an
// absolute URL (the languages locator).
func (g *GitHubGateway) getJSON(ctx context.Context, urlStr string, v any) error {
	req, err := g.client.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", urlStr, err)
	}
	resp, err := g.client.BareDo(ctx, req)
	if err != nil {
		if resp != nil {
			return &APIError{
				StatusCode: resp.StatusCode,
				URL:        req.URL.String(),
				Body:       upstreamMessage(err),
			}
		}
		return &APIError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{URL: req.URL.String(), Err: err}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ShapeError{URL: req.URL.String(), Detail: err.Error()}
	}
	return nil
}

// upstreamMessage extracts the diagnostic text of a non-2xx response.
func upstreamMessage(err error) string {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Message != "" {
		return errResp.Message
	}
	return err.Error()
}

func isJSONObject(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimLeft(raw, " \t\r\n"), []byte("{"))
}

func parseTimestamp(value string) time.Time {
	// time.Parse accepts numeric zone offsets where the layout says "Z";
	// the wire format is strictly Zulu, so reject anything else up front.
	if !strings.HasSuffix(value, "Z") {
		return time.Time{}
	}
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

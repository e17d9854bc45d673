// Package usecase contains the business logic of the application.
package usecase

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/yotsuba-lab/profile-cards/internal/domain"
	"github.com/yotsuba-lab/profile-cards/internal/gateway"
)

// Aggregator is the use case for aggregating a user's profile statistics.
// It orchestrates the fetching and accumulation of data.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Aggregate performs the main business logic. It fetches the user profile
// and every owned repository, skips forks, and accumulates repository
// count, star count, and per-language byte totals. Everything runs
// strictly sequentially: one language fetch per non-fork repository, one
// at a time. Any fetch error aborts the run.
func (a *Aggregator) Aggregate(ctx context.Context, username string) (*domain.ProfileStats, error) {
	a.logger.Info("starting aggregation", "username", username)

	user, err := a.fetcher.FetchUser(ctx, username)
	if err != nil {
		return nil, err
	}

	repos, err := a.fetcher.FetchRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	stats := &domain.ProfileStats{
		User:      user,
		Languages: domain.LanguageBytes{},
	}

	for _, repo := range repos {
		if repo.Fork {
			a.logger.Debug("skipping fork", "repo", repo.Name)
			continue
		}
		stats.RepoCount++
		stats.TotalStars += repo.Stars

		if repo.LanguagesURL == "" {
			continue
		}
		langs, err := a.fetcher.FetchLanguages(ctx, repo.LanguagesURL)
		if err != nil {
			return nil, err
		}
		for name, size := range langs {
			stats.Languages[name] += size
		}
	}

	a.logger.Info("aggregation complete",
		"repos", stats.RepoCount,
		"stars", stats.TotalStars,
		"languages", len(stats.Languages))
	return stats, nil
}

// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"sort"
	"time"
)

// UserProfile is a snapshot of a GitHub user's account, fetched once per run.
// CreatedAt and UpdatedAt are zero when the upstream value was absent or
// did not parse against the API's timestamp format.
type UserProfile struct {
	Followers int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository holds the slice of repository metadata the aggregation cares
// about. It only exists while the repository stream is being consumed.
type Repository struct {
	Name         string
	Fork         bool
	Stars        int
	LanguagesURL string
}

// LanguageBytes maps a language name, case-sensitive as returned by
// GitHub, to a cumulative byte count across repositories.
type LanguageBytes map[string]int

// Total returns the sum of all byte counts.
func (lb LanguageBytes) Total() int {
	total := 0
	for _, size := range lb {
		total += size
	}
	return total
}

// LanguageShare is one language's slice of the total, used for ranking.
type LanguageShare struct {
	Name  string
	Bytes int
}

// Top returns the n largest languages by byte count, descending. Ties are
// broken by language name ascending so the ranking is deterministic
// regardless of map iteration order.
func (lb LanguageBytes) Top(n int) []LanguageShare {
	shares := make([]LanguageShare, 0, len(lb))
	for name, size := range lb {
		shares = append(shares, LanguageShare{Name: name, Bytes: size})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Name < shares[j].Name
	})
	if len(shares) > n {
		shares = shares[:n]
	}
	return shares
}

// ProfileStats is the aggregation result: everything the two cards need.
type ProfileStats struct {
	User       UserProfile
	RepoCount  int
	TotalStars int
	Languages  LanguageBytes
}

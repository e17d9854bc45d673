// Package render turns aggregated profile statistics into the two SVG
// card documents. Both renderers are pure transformations: fixed 495x195
// layouts, fixed coordinates, no randomness.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yotsuba-lab/profile-cards/internal/domain"
)

const (
	cardWidth  = 495
	cardHeight = 195

	fontFamily = "ui-monospace, SFMono-Regular, Menlo, monospace"

	statsRowStartY  = 76
	statsRowSpacing = 28
	daysPerYear     = 365
	unknownValue    = "n/a"
	updatedAtLayout = "2006-01-02"
)

// StatsCard renders the account statistics card for username.
func StatsCard(username string, stats *domain.ProfileStats) string {
	return statsCardAt(username, stats, time.Now().UTC())
}

// statsCardAt is the clock-injected body of StatsCard, split out so the
// account-age derivation is testable with a fixed now.
func statsCardAt(username string, stats *domain.ProfileStats, now time.Time) string {
	rows := []struct {
		label string
		value string
	}{
		{"followers", formatCount(stats.User.Followers)},
		{"public_repos", formatCount(stats.RepoCount)},
		{"total_stars", formatCount(stats.TotalStars)},
		{"account_age", accountAge(stats.User.CreatedAt, now)},
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s GitHub stats">`,
		cardWidth, cardHeight, cardWidth, cardHeight, username)
	b.WriteString(`<defs>` +
		`<linearGradient id="g" x1="0" y1="0" x2="1" y2="1">` +
		`<stop offset="0%" stop-color="#08110b"/>` +
		`<stop offset="100%" stop-color="#030604"/>` +
		`</linearGradient>` +
		`<pattern id="grid" width="18" height="18" patternUnits="userSpaceOnUse">` +
		`<path d="M18 0H0V18" fill="none" stroke="#0d1c12" stroke-width="1"/>` +
		`</pattern>` +
		`</defs>`)
	b.WriteString(`<rect width="495" height="195" fill="url(#g)"/>`)
	b.WriteString(`<rect width="495" height="195" fill="url(#grid)" opacity="0.5"/>`)
	b.WriteString(`<rect x="0.5" y="0.5" width="494" height="194" fill="none" stroke="#1f4028"/>`)
	fmt.Fprintf(&b, `<text x="30" y="30" fill="#4ff57a" font-size="14" font-family="%s">[ SYSTEM :: GITHUB PROFILE ]</text>`, fontFamily)
	fmt.Fprintf(&b, `<text x="30" y="50" fill="#d7ffe0" font-size="15" font-family="%s">@%s</text>`, fontFamily, username)
	fmt.Fprintf(&b, `<text x="462" y="50" text-anchor="end" fill="#7fc38f" font-size="11" font-family="%s">updated %s</text>`, fontFamily, updatedLabel(stats.User.UpdatedAt))

	y := statsRowStartY
	for _, row := range rows {
		fmt.Fprintf(&b, `<text x="30" y="%d" fill="#8af29f" font-size="12" font-family="%s">$ %s</text>`, y, fontFamily, row.label)
		fmt.Fprintf(&b, `<text x="462" y="%d" text-anchor="end" fill="#d7ffe0" font-size="18" font-family="%s">%s</text>`, y, fontFamily, row.value)
		y += statsRowSpacing
	}

	b.WriteString(`<rect x="28" y="161" width="439" height="12" fill="#0a120d" stroke="#1a3422"/>`)
	fmt.Fprintf(&b, `<text x="36" y="170" fill="#7fc38f" font-size="10" font-family="%s">status=online</text>`, fontFamily)
	fmt.Fprintf(&b, `<text x="462" y="170" text-anchor="end" fill="#7fc38f" font-size="10" font-family="%s">source=api.github.com</text>`, fontFamily)
	b.WriteString(`</svg>`)
	return b.String()
}

// accountAge renders the account's age in whole years, never negative,
// or "n/a" when the creation time is unknown.
func accountAge(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return unknownValue
	}
	days := int(now.Sub(createdAt).Hours() / 24)
	years := days / daysPerYear
	if years < 0 {
		years = 0
	}
	return fmt.Sprintf("%dy", years)
}

func updatedLabel(updatedAt time.Time) string {
	if updatedAt.IsZero() {
		return unknownValue
	}
	return updatedAt.Format(updatedAtLayout)
}

// formatCount renders a non-negative counter with thousands grouping.
func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

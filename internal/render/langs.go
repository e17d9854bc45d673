package render

import (
	"fmt"
	"strings"

	"github.com/yotsuba-lab/profile-cards/internal/domain"
)

const (
	topLanguageCount = 6
	barTrackWidth    = 280
	barMinWidth      = 2
	langRowStartY    = 60
	langRowSpacing   = 20
)

// TopLanguagesCard renders the ranked language breakdown card for
// username. With no language data it renders a placeholder line instead
// of the table.
func TopLanguagesCard(username string, langs domain.LanguageBytes) string {
	total := langs.Total()
	top := langs.Top(topLanguageCount)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s top languages">`,
		cardWidth, cardHeight, cardWidth, cardHeight, username)
	b.WriteString(`<defs>` +
		`<linearGradient id="g2" x1="0" y1="0" x2="1" y2="1">` +
		`<stop offset="0%" stop-color="#070d10"/>` +
		`<stop offset="100%" stop-color="#040709"/>` +
		`</linearGradient>` +
		`<pattern id="grid2" width="18" height="18" patternUnits="userSpaceOnUse">` +
		`<path d="M18 0H0V18" fill="none" stroke="#122028" stroke-width="1"/>` +
		`</pattern>` +
		`</defs>`)
	b.WriteString(`<rect width="495" height="195" fill="url(#g2)"/>`)
	b.WriteString(`<rect width="495" height="195" fill="url(#grid2)" opacity="0.5"/>`)
	b.WriteString(`<rect x="0.5" y="0.5" width="494" height="194" fill="none" stroke="#24414f"/>`)
	fmt.Fprintf(&b, `<text x="30" y="30" fill="#54d6ff" font-size="14" font-family="%s">[ STACK :: TOP LANGUAGES ]</text>`, fontFamily)

	if total <= 0 || len(top) == 0 {
		fmt.Fprintf(&b, `<text x="30" y="92" fill="#8fa7b2" font-size="14" font-family="%s">No public language data</text>`, fontFamily)
	} else {
		y := langRowStartY
		for _, share := range top {
			pct := float64(share.Bytes) / float64(total) * 100
			width := barWidth(share.Bytes, total)
			fmt.Fprintf(&b, `<text x="30" y="%d" fill="#d9f5ff" font-size="12" font-family="%s">%s</text>`, y, fontFamily, strings.ToLower(share.Name))
			fmt.Fprintf(&b, `<rect x="150" y="%d" width="280" height="8" fill="#0e151b"/>`, y-10)
			fmt.Fprintf(&b, `<rect x="150" y="%d" width="%d" height="8" fill="#54d6ff"/>`, y-10, width)
			fmt.Fprintf(&b, `<text x="462" y="%d" text-anchor="end" fill="#9fc8d8" font-size="12" font-family="%s">%.1f%%</text>`, y, fontFamily, pct)
			y += langRowSpacing
		}
	}

	fmt.Fprintf(&b, `<text x="30" y="174" fill="#6f95a8" font-size="10" font-family="%s">scope=owned_non_fork_repos</text>`, fontFamily)
	b.WriteString(`</svg>`)
	return b.String()
}

// barWidth scales a byte count onto the bar track, with a 2-unit floor so
// vanishingly small shares stay visible.
func barWidth(size, total int) int {
	width := size * barTrackWidth / total
	if width < barMinWidth {
		width = barMinWidth
	}
	return width
}

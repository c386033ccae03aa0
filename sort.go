package blogposts

import (
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-blogposts/internal/dateutil"
)

// SortByDate orders posts newest first. Dates are read leniently
// ("2024-01-01", "Jan 2, 2024", RFC 3339, ...). Posts whose date is missing
// or unreadable come last. Ties are broken by id.
func SortByDate(posts []Metadata) {
	type keyed struct {
		at time.Time
		ok bool
	}
	keys := make(map[string]keyed, len(posts))
	for _, p := range posts {
		at, ok := parsePostDate(p)
		keys[p.ID] = keyed{at: at, ok: ok}
	}

	slices.SortStableFunc(posts, func(a, b Metadata) int {
		ka, kb := keys[a.ID], keys[b.ID]
		switch {
		case ka.ok && !kb.ok:
			return -1
		case !ka.ok && kb.ok:
			return 1
		case ka.ok && kb.ok && !ka.at.Equal(kb.at):
			return kb.at.Compare(ka.at)
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// SortByName orders posts by id.
func SortByName(posts []Metadata) {
	slices.SortStableFunc(posts, func(a, b Metadata) int {
		return strings.Compare(a.ID, b.ID)
	})
}

// parsePostDate prefers the raw front-matter value so typed dates (YAML
// timestamps) keep their precision, then falls back to the promoted string.
func parsePostDate(m Metadata) (time.Time, bool) {
	if v, ok := m.Fields[KeyDate]; ok {
		if at, ok := dateutil.ParseDate(v); ok {
			return at, true
		}
	}
	return dateutil.ParseDate(m.Date)
}

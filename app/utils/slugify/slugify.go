package slugify

import (
	"fmt"
	"regexp"

	"github.com/gosimple/slug"
)

// Counter tracks how many times each slug has been handed out. It is
// threaded explicitly through batch operations so assignment stays
// deterministic and testable; there is no hidden global state.
type Counter map[string]int

// Make normalizes a name to its base slug: diacritics stripped,
// lowercased, non-alphanumerics collapsed to single hyphens, edge
// hyphens trimmed.
func Make(name string) string {
	return slug.Make(name)
}

// AssignUnique returns a unique slug for name. The first use of a base
// gets the base itself; the n-th use gets "base-{n+1}". Suffixes already
// marked seen are skipped, so a seeded counter with gaps (a deleted base
// row but a surviving "base-2") still yields a fresh slug. Both the base
// and the returned candidate are marked seen.
func AssignUnique(name string, seen Counter) string {
	base := Make(name)
	n := seen[base]
	if n == 0 {
		seen[base] = 1
		return base
	}
	for {
		n++
		candidate := fmt.Sprintf("%s-%d", base, n)
		if seen[candidate] == 0 {
			seen[base] = n
			seen[candidate] = 1
			return candidate
		}
	}
}

// SeedCounter builds a Counter from slugs already persisted for the same
// base, so single-entity creation against the database follows the same
// algorithm as an in-memory batch. Only the base itself and "base-{n}"
// forms count.
func SeedCounter(base string, existing []string) Counter {
	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(base) + `(-\d+)?$`)
	seen := Counter{}
	for _, s := range existing {
		if pattern.MatchString(s) {
			seen[base]++
			if s != base {
				seen[s]++
			}
		}
	}
	return seen
}

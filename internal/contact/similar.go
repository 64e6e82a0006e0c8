package contact

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// nameDistanceLimit is the normalised edit distance below which two names
// are considered lookalikes.
const nameDistanceLimit = 0.25

// Similar returns the entries of existing that look like c: same email
// (case-insensitive), same phone, or a name within nameDistanceLimit.
// Entries with c's own ID are skipped.
func Similar(existing []Contact, c Contact) []Contact {
	var out []Contact
	for _, e := range existing {
		if c.ID != "" && e.ID == c.ID {
			continue
		}
		if matchSimilar(e, c) {
			out = append(out, e)
		}
	}
	return out
}

func matchSimilar(a, b Contact) bool {
	if a.Email != "" && strings.EqualFold(a.Email, b.Email) {
		return true
	}
	if a.Phone != "" && a.Phone == b.Phone {
		return true
	}
	return nameDistance(a.Name, b.Name) < nameDistanceLimit
}

func nameDistance(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 1
	}
	maxlen := len([]rune(a))
	if n := len([]rune(b)); n > maxlen {
		maxlen = n
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(maxlen)
}

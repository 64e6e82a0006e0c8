package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/jask/contactbook/internal/contact"
)

var (
	firstNames = []string{"Ada", "Bea", "Cal", "Dev", "Eli", "Fay", "Gus", "Hal", "Ivy", "Jo", "Kai", "Lou"}
	lastNames  = []string{"Archer", "Baker", "Carver", "Dyer", "Fisher", "Mason", "Porter", "Turner", "Weaver"}
	domains    = []string{"example.com", "mail.test", "corp.example"}
)

// Adder is the part of the store Seed needs.
type Adder interface {
	Add(ctx context.Context, c contact.Contact) (contact.Contact, error)
}

// Contacts returns n valid contacts with predictable values:
// "Contact 01" / contact01@example.com / 5550000001 and so on.
func Contacts(n int) []contact.Contact {
	out := make([]contact.Contact, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, contact.Contact{
			Name:  fmt.Sprintf("Contact %02d", i),
			Email: fmt.Sprintf("contact%02d@example.com", i),
			Phone: fmt.Sprintf("555%07d", i),
		})
	}
	return out
}

// Random returns one valid contact drawn from rng.
func Random(rng *rand.Rand) contact.Contact {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	return contact.Contact{
		Name:  first + " " + last,
		Email: strings.ToLower(first+"."+last) + "@" + domains[rng.Intn(len(domains))],
		Phone: fmt.Sprintf("%d%09d", 2+rng.Intn(8), rng.Intn(1_000_000_000)),
	}
}

// Seed adds n random contacts to s and returns how many were added.
func Seed(ctx context.Context, s Adder, n int, rng *rand.Rand) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := s.Add(ctx, Random(rng)); err != nil {
			return i, err
		}
	}
	return n, nil
}

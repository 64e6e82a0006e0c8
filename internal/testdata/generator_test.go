package testdata

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/contactbook/internal/contact"
)

func TestGeneratedContactsAreValid(t *testing.T) {
	t.Parallel()

	for _, c := range Contacts(25) {
		require.True(t, contact.Validate(c).Valid, "%+v", c)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		c := Random(rng)
		require.True(t, contact.Validate(c).Valid, "%+v", c)
	}
}

type recorder struct {
	added  []contact.Contact
	failAt int
}

func (r *recorder) Add(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	if r.failAt > 0 && len(r.added) == r.failAt {
		return contact.Contact{}, errors.New("full")
	}
	r.added = append(r.added, c)
	return c, nil
}

func TestSeed(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	n, err := Seed(context.Background(), r, 8, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Len(t, r.added, 8)

	r = &recorder{failAt: 3}
	n, err = Seed(context.Background(), r, 8, rand.New(rand.NewSource(7)))
	require.Error(t, err)
	require.Equal(t, 3, n)
}

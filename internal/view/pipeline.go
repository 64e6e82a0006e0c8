// Package view derives the visible page of contacts from the stored
// sequence: filter by search term, optionally sort, then slice one page.
package view

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jask/contactbook/internal/contact"
)

// DefaultPageSize is used when a query asks for a page size below 1.
const DefaultPageSize = 5

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortSpec orders contacts by one field.
type SortSpec struct {
	Field     contact.Field
	Direction Direction
}

// Query is everything Derive needs besides the sequence.
type Query struct {
	Search   string
	Sort     *SortSpec
	Page     int
	PageSize int
}

// Page is the render-ready output.
type Page struct {
	Contacts      []contact.Contact `json:"contacts"`
	CurrentPage   int               `json:"currentPage"`
	TotalPages    int               `json:"totalPages"`
	TotalFiltered int               `json:"totalFiltered"`
}

// Pipeline holds the collator used for locale-aware ordering. A Pipeline is
// not safe for concurrent use.
type Pipeline struct {
	coll *collate.Collator
}

// New returns a pipeline collating for locale (a BCP 47 tag such as "en" or
// "sv"). Unparseable tags fall back to the root collation.
func New(locale string) *Pipeline {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Pipeline{coll: collate.New(tag)}
}

// Derive filters seq by q.Search, sorts it when q.Sort is set, and returns
// page q.Page of size q.PageSize. seq is not modified.
func (p *Pipeline) Derive(seq []contact.Contact, q Query) Page {
	size := q.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	filtered := Filter(seq, q.Search)
	if q.Sort != nil {
		p.Sort(filtered, *q.Sort)
	}

	total := len(filtered)
	out := Page{
		Contacts:      []contact.Contact{},
		CurrentPage:   page,
		TotalPages:    (total + size - 1) / size,
		TotalFiltered: total,
	}
	start := (page - 1) * size
	if start >= total {
		return out
	}
	end := min(start+size, total)
	out.Contacts = append(out.Contacts, filtered[start:end]...)
	return out
}

// Filter returns the contacts whose name or email contains term
// case-insensitively, or whose phone contains it verbatim. An empty term
// keeps everything. The result is a new slice.
func Filter(seq []contact.Contact, term string) []contact.Contact {
	out := make([]contact.Contact, 0, len(seq))
	if term == "" {
		return append(out, seq...)
	}
	lower := strings.ToLower(term)
	for _, c := range seq {
		if matches(c, term, lower) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c contact.Contact, term, lower string) bool {
	return strings.Contains(strings.ToLower(c.Name), lower) ||
		strings.Contains(strings.ToLower(c.Email), lower) ||
		strings.Contains(c.Phone, term)
}

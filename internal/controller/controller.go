// Package controller turns user actions into store mutations and derives the
// page the presentation layer renders. Rows are addressed by their position
// in the visible page and resolved to the contact's id before anything is
// changed, so a filtered or paged view never touches the wrong record.
package controller

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/contactbook/internal/contact"
	"github.com/jask/contactbook/internal/store"
	"github.com/jask/contactbook/internal/view"
)

// State is the session's UI state.
type State struct {
	DarkMode   bool
	SearchTerm string
	Sort       view.SortSpec
	SortActive bool
	Page       int
	PageSize   int
	// EditingID is the id of the contact open in the edit form, or "".
	EditingID string
}

// Options seeds the initial State.
type Options struct {
	PageSize int
	DarkMode bool
}

// Controller is not safe for concurrent use; the TUI calls it from its
// update loop only.
type Controller struct {
	ctx      context.Context
	store    *store.Store
	pipeline *view.Pipeline
	log      *zap.Logger

	state  State
	status string
}

func New(ctx context.Context, st *store.Store, p *view.Pipeline, log *zap.Logger, opts Options) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	size := opts.PageSize
	if size < 1 {
		size = view.DefaultPageSize
	}
	return &Controller{
		ctx:      ctx,
		store:    st,
		pipeline: p,
		log:      log,
		state:    State{DarkMode: opts.DarkMode, Page: 1, PageSize: size},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Status describes the outcome of the last add, edit, delete, sort or clear.
// It is empty when that action was a no-op.
func (c *Controller) Status() string { return c.status }

// Total is the number of stored contacts, ignoring the search term.
func (c *Controller) Total() int { return c.store.Len() }

// View derives the visible page. The stored order already reflects the last
// manual sort, so the sort is not applied again here.
func (c *Controller) View() view.Page {
	return c.pipeline.Derive(c.store.All(), view.Query{
		Search:   c.state.SearchTerm,
		Page:     c.state.Page,
		PageSize: c.state.PageSize,
	})
}

// AddContact validates and appends a contact. On success it also returns
// stored contacts that look like the new one.
func (c *Controller) AddContact(in contact.Contact) (contact.Result, []contact.Contact) {
	c.status = ""
	res := contact.Validate(in)
	if !res.Valid {
		return res, nil
	}
	similar := contact.Similar(c.store.All(), in)
	added, err := c.store.Add(c.ctx, in)
	if err != nil {
		c.fail("add contact", err)
		return res, similar
	}
	c.log.Info("contact added", zap.String("id", added.ID))
	c.status = "added " + added.Name
	if len(similar) > 0 {
		c.status += fmt.Sprintf(" (looks like %s)", similar[0].Name)
	}
	return res, similar
}

// RequestEdit opens the contact shown at row for editing. It reports false
// when row is not on the current page.
func (c *Controller) RequestEdit(row int) bool {
	id, ok := c.resolve(row)
	if !ok {
		return false
	}
	c.state.EditingID = id
	return true
}

// Editing returns the contact being edited. If it was removed in the
// meantime the edit is dropped.
func (c *Controller) Editing() (contact.Contact, bool) {
	if c.state.EditingID == "" {
		return contact.Contact{}, false
	}
	idx := c.store.IndexOf(c.state.EditingID)
	if idx < 0 {
		c.state.EditingID = ""
		return contact.Contact{}, false
	}
	cur, err := c.store.At(idx)
	if err != nil {
		c.state.EditingID = ""
		return contact.Contact{}, false
	}
	return cur, true
}

// ConfirmEdit validates in and replaces the edited contact's fields. An
// invalid result keeps the edit open.
func (c *Controller) ConfirmEdit(in contact.Contact) contact.Result {
	c.status = ""
	res := contact.Validate(in)
	if !res.Valid {
		return res
	}
	id := c.state.EditingID
	if id == "" {
		return res
	}
	c.state.EditingID = ""

	idx := c.store.IndexOf(id)
	if idx < 0 {
		c.log.Debug("edited contact vanished", zap.String("id", id))
		return res
	}
	if err := c.store.Update(c.ctx, idx, in); err != nil {
		c.fail("update contact", err)
		return res
	}
	c.log.Info("contact updated", zap.String("id", id))
	c.status = "updated " + in.Name
	return res
}

// CancelEdit closes the edit without changes.
func (c *Controller) CancelEdit() {
	c.state.EditingID = ""
}

// DeleteContact removes the contact shown at row. A row not on the current
// page is ignored.
func (c *Controller) DeleteContact(row int) bool {
	c.status = ""
	id, ok := c.resolve(row)
	if !ok {
		return false
	}
	idx := c.store.IndexOf(id)
	if idx < 0 {
		return false
	}
	if err := c.store.Delete(c.ctx, idx); err != nil {
		c.fail("delete contact", err)
		if errors.Is(err, store.ErrIndexOutOfRange) {
			return false
		}
	} else {
		c.log.Info("contact deleted", zap.String("id", id))
		c.status = "contact deleted"
	}
	if c.state.EditingID == id {
		c.state.EditingID = ""
	}
	c.clampPage()
	return true
}

// SetSearchTerm filters the view and returns to the first page.
func (c *Controller) SetSearchTerm(text string) {
	c.state.SearchTerm = text
	c.state.Page = 1
}

// SetSortField applies one press of the sort control for field. The whole
// stored sequence is reordered and persisted; later additions are appended
// unsorted.
func (c *Controller) SetSortField(field contact.Field) {
	c.status = ""
	next := view.SortState{Active: c.state.SortActive, Spec: c.state.Sort}.Toggle(field)
	c.state.Sort = next.Spec
	c.state.SortActive = next.Active
	if err := c.store.Sort(c.ctx, c.pipeline.Compare(next.Spec)); err != nil {
		c.fail("sort contacts", err)
		return
	}
	c.status = fmt.Sprintf("sorted by %s (%s)", field, next.Spec.Direction)
}

// SortState returns the sort control state for rendering indicators.
func (c *Controller) SortState() view.SortState {
	return view.SortState{Active: c.state.SortActive, Spec: c.state.Sort}
}

// SetPage moves to page n, clamped to the pages that exist.
func (c *Controller) SetPage(n int) {
	c.state.Page = n
	c.clampPage()
}

func (c *Controller) NextPage() { c.SetPage(c.state.Page + 1) }

func (c *Controller) PrevPage() { c.SetPage(c.state.Page - 1) }

// ToggleDarkMode flips the theme and returns the new value.
func (c *Controller) ToggleDarkMode() bool {
	c.state.DarkMode = !c.state.DarkMode
	return c.state.DarkMode
}

// ClearAll removes every stored contact.
func (c *Controller) ClearAll() {
	c.status = ""
	if err := c.store.Reset(c.ctx); err != nil {
		c.fail("clear contacts", err)
	} else {
		c.log.Info("contacts cleared")
		c.status = "all contacts removed"
	}
	c.state.EditingID = ""
	c.state.Page = 1
}

func (c *Controller) resolve(row int) (string, bool) {
	page := c.View()
	if row < 0 || row >= len(page.Contacts) {
		return "", false
	}
	return page.Contacts[row].ID, true
}

func (c *Controller) clampPage() {
	total := c.View().TotalPages
	if c.state.Page > total {
		c.state.Page = total
	}
	if c.state.Page < 1 {
		c.state.Page = 1
	}
}

// fail records a store error. Stale indexes stay out of the status line.
func (c *Controller) fail(op string, err error) {
	if errors.Is(err, store.ErrIndexOutOfRange) {
		c.log.Debug(op+" skipped", zap.Error(err))
		return
	}
	c.log.Error(op+" failed", zap.Error(err))
	c.status = fmt.Sprintf("%s: %v", op, err)
}

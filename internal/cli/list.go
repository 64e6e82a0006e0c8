package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/contactbook/internal/contact"
	"github.com/jask/contactbook/internal/view"
)

// ListOptions are the flags of the list command.
type ListOptions struct {
	Search   string
	Sort     string
	Desc     bool
	Page     int
	PageSize int
	JSON     bool
}

// NewListCommand prints one page of contacts without changing stored order.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of contacts",
		Long: `Print one page of contacts, filtered by --search and ordered by --sort.

Sorting here only affects the output; the stored order is left alone.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "only contacts whose name, email or phone contains this")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "sort by name, email or phone")
	cmd.Flags().BoolVar(&opts.Desc, "desc", false, "sort descending")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "contacts per page (default ui.page_size)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the page as JSON")

	return cmd
}

func runList(cmd *cobra.Command, rootOpts *RootOptions, opts *ListOptions) error {
	q := view.Query{Search: opts.Search, Page: opts.Page, PageSize: opts.PageSize}
	if opts.Sort != "" {
		field, err := contact.ParseField(opts.Sort)
		if err != nil {
			return fmt.Errorf("--sort: %w", err)
		}
		spec := view.SortSpec{Field: field}
		if opts.Desc {
			spec.Direction = view.Descending
		}
		q.Sort = &spec
	} else if opts.Desc {
		return fmt.Errorf("--desc needs --sort")
	}

	s, err := openSession(cmd.Context(), rootOpts)
	if err != nil {
		return err
	}
	defer s.close()

	if q.PageSize < 1 {
		q.PageSize = s.cfg.UI.PageSize
	}
	page := view.New(s.cfg.UI.Locale).Derive(s.store.All(), q)

	if opts.JSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}
	return writePage(cmd.OutOrStdout(), page)
}

func writePage(w io.Writer, page view.Page) error {
	if page.TotalFiltered == 0 {
		_, err := fmt.Fprintln(w, "no contacts")
		return err
	}
	if _, err := fmt.Fprintln(w, renderTable(page.Contacts)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "page %d of %d, %d matching\n", page.CurrentPage, page.TotalPages, page.TotalFiltered)
	return err
}

// renderTable lays contacts out in borderless columns two spaces apart.
func renderTable(contacts []contact.Contact) string {
	gap := lipgloss.NewStyle().PaddingRight(2)
	last := len(contact.Fields()) - 1

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderRow(false).
		BorderHeader(false).
		Headers("NAME", "EMAIL", "PHONE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == last {
				return lipgloss.NewStyle()
			}
			return gap
		})
	for _, c := range contacts {
		t.Row(c.Name, c.Email, c.Phone)
	}

	lines := strings.Split(strings.TrimRight(t.String(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

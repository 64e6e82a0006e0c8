package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/contactbook/internal/contact"
	"github.com/jask/contactbook/internal/view"
)

const (
	nameWidth  = 22
	emailWidth = 30
	phoneWidth = 16
)

func (a *App) View() string {
	page := a.ctl.View()
	th := a.theme

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(a.renderSearchLine())
	b.WriteString("\n\n")
	b.WriteString(a.renderTable(page))
	b.WriteString("\n\n")
	b.WriteString(th.dim.Render(a.pagerView(page)))
	body := b.String()

	statusLine := a.renderStatus()
	footer := a.renderFooter(a.keys.HelpBindings(a.scope()))

	switch a.mode {
	case modeForm:
		return a.composeModal(body, statusLine, footer, a.form.view(th))
	case modeConfirm:
		prompt := th.warning.Render("Remove all contacts?") + "\n\n" +
			fmt.Sprintf("%d contacts will be deleted. This cannot be undone.", a.ctl.Total())
		return a.composeModal(body, statusLine, footer, prompt)
	}
	return a.placeWithFooter(body, statusLine, footer)
}

func (a *App) scope() string {
	switch a.mode {
	case modeSearch:
		return scopeSearch
	case modeForm:
		return scopeForm
	case modeConfirm:
		return scopeConfirm
	}
	return scopeList
}

func (a *App) renderHeader() string {
	th := a.theme
	content := th.headerApp.Render("Contacts") + "  " + fmt.Sprintf("%d saved", a.ctl.Total())
	if a.width <= 0 {
		return th.headerBar.Render(content)
	}
	return th.headerBar.Width(a.width).Render(content)
}

func (a *App) renderSearchLine() string {
	if a.mode == modeSearch {
		return a.search.View()
	}
	term := a.ctl.State().SearchTerm
	if term == "" {
		return a.theme.dim.Render("/ to search")
	}
	return a.theme.label.Render("search: ") + term + a.theme.dim.Render("  (esc clears)")
}

func (a *App) renderTable(page view.Page) string {
	th := a.theme
	sort := a.ctl.SortState()
	head := func(label string, f contact.Field, width int) string {
		if ind := sort.Indicator(f); ind != "" {
			label += " " + ind
		}
		return fit(label, width)
	}
	header := "  " + th.tableHead.Render(
		head("1 Name", contact.FieldName, nameWidth)+" "+
			head("2 Email", contact.FieldEmail, emailWidth)+" "+
			head("3 Phone", contact.FieldPhone, phoneWidth))

	lines := []string{header}
	if len(page.Contacts) == 0 {
		empty := "No contacts yet. Press a to add one."
		if a.ctl.State().SearchTerm != "" {
			empty = "No contacts match the search."
		}
		lines = append(lines, "  "+th.dim.Render(empty))
		return strings.Join(lines, "\n")
	}
	for i, c := range page.Contacts {
		text := fit(c.Name, nameWidth) + " " + fit(c.Email, emailWidth) + " " + fit(c.Phone, phoneWidth)
		if i == a.cursor && a.mode == modeList {
			lines = append(lines, th.cursor.Render("> ")+th.cursorRow.Render(text))
			continue
		}
		lines = append(lines, "  "+th.row.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (a *App) pagerView(page view.Page) string {
	p := a.pager
	p.TotalPages = max(1, page.TotalPages)
	p.Page = page.CurrentPage - 1
	return p.View() + fmt.Sprintf("  (%d shown)", page.TotalFiltered)
}

func (a *App) renderStatus() string {
	text := strings.ReplaceAll(a.status, "\n", " ")
	if a.width <= 0 {
		return a.theme.statusBar.Render(text)
	}
	return a.theme.statusBar.Width(a.width).Render(text)
}

func (a *App) renderFooter(bindings []key.Binding) string {
	// every cell carries the footer background
	bg := a.theme.p.Mantle
	keyStyle := a.theme.helpKey.Background(bg)
	descStyle := a.theme.helpDesc.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if a.width <= 0 {
		return a.theme.footer.Render(content)
	}
	return a.theme.footer.Width(a.width).Render(content)
}

func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height <= 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := max(1, a.height-2)
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

// composeModal centres popup over the list screen, or appends it when the
// terminal size is not known yet.
func (a *App) composeModal(base, statusLine, footer, popup string) string {
	baseView := a.placeWithFooter(base, statusLine, footer)
	modal := a.theme.modal.Render(popup)
	if a.height <= 0 || a.width <= 0 {
		return baseView + "\n\n" + modal
	}
	lines := splitLines(modal)
	targetHeight := max(1, a.height-2)
	x := max(0, (a.width-maxLineWidth(lines))/2)
	y := max(0, (targetHeight-len(lines))/2)
	return overlayAt(baseView, modal, x, y, a.width, targetHeight)
}

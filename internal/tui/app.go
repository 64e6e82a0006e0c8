// Package tui is the bubbletea front end for the contact book.
package tui

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/contactbook/internal/config"
	"github.com/jask/contactbook/internal/contact"
	"github.com/jask/contactbook/internal/controller"
)

// App is the root tea.Model.
type App struct {
	ctl     *controller.Controller
	cfg     config.Config
	cfgPath string
	log     *zap.Logger
	keys    *KeyRegistry
	theme   theme
	saves   *themeSaves

	mode   modeState
	cursor int
	search textinput.Model
	form   contactForm
	pager  paginator.Model
	status string

	width  int
	height int
}

type modeState string

const (
	modeList    modeState = "list"
	modeSearch  modeState = "search"
	modeForm    modeState = "form"
	modeConfirm modeState = "confirm"
)

// Options configures New.
type Options struct {
	Config config.Config
	// ConfigPath is where the dark mode preference is saved; see config.Path.
	ConfigPath string
	Log        *zap.Logger
}

func New(ctl *controller.Controller, opts Options) *App {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "name, email or phone"
	search.CharLimit = 64

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.ArabicFormat = "page %d of %d"

	return &App{
		ctl:     ctl,
		cfg:     opts.Config,
		cfgPath: opts.ConfigPath,
		log:     log,
		keys:    NewKeyRegistry(),
		saves:   &themeSaves{},
		theme:   newTheme(ctl.State().DarkMode),
		mode:    modeList,
		search:  search,
		pager:   pager,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		switch a.mode {
		case modeSearch:
			return a.handleSearchKey(m)
		case modeForm:
			return a.handleFormKey(m)
		case modeConfirm:
			return a.handleConfirmKey(m)
		}
		return a.handleListKey(m)
	case themeSavedMsg:
		if m.gen != a.saves.latest.Load() {
			return a, nil
		}
		if m.err != nil {
			a.log.Error("save theme failed", zap.Error(m.err))
			a.status = "error: " + m.err.Error()
			return a, nil
		}
		a.cfg.UI.DarkMode = m.dark
		if m.dark {
			a.status = "dark mode on"
		} else {
			a.status = "dark mode off"
		}
	default:
		return a, a.updateInput(msg)
	}
	return a, nil
}

// updateInput hands non-key messages such as cursor blinks to the focused
// text input.
func (a *App) updateInput(msg tea.Msg) tea.Cmd {
	switch a.mode {
	case modeSearch:
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return cmd
	case modeForm:
		return a.form.update(msg)
	}
	return nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := a.keys.Lookup(m.String(), scopeList)
	if b == nil {
		return a, nil
	}
	switch b.Action {
	case actionQuit:
		return a, tea.Quit
	case actionNavigate:
		rows := len(a.ctl.View().Contacts)
		switch m.String() {
		case "up", "k":
			if a.cursor > 0 {
				a.cursor--
			}
		case "down", "j":
			if a.cursor < rows-1 {
				a.cursor++
			}
		}
	case actionPage:
		switch m.String() {
		case "left", "h":
			a.ctl.PrevPage()
		case "right", "l":
			a.ctl.NextPage()
		}
		a.cursor = 0
	case actionAdd:
		a.form = newContactForm(formAdd, contact.Contact{})
		a.mode = modeForm
		return a, textinput.Blink
	case actionEdit:
		if !a.ctl.RequestEdit(a.cursor) {
			return a, nil
		}
		cur, ok := a.ctl.Editing()
		if !ok {
			return a, nil
		}
		a.form = newContactForm(formEdit, cur)
		a.mode = modeForm
		return a, textinput.Blink
	case actionDelete:
		if a.ctl.DeleteContact(a.cursor) {
			a.status = a.ctl.Status()
			a.clampCursor()
		}
	case actionSearch:
		a.search.SetValue(a.ctl.State().SearchTerm)
		a.search.CursorEnd()
		a.mode = modeSearch
		return a, a.search.Focus()
	case actionSort:
		field := map[string]contact.Field{"1": contact.FieldName, "2": contact.FieldEmail, "3": contact.FieldPhone}[m.String()]
		a.ctl.SetSortField(field)
		a.status = a.ctl.Status()
		a.cursor = 0
	case actionToggleTheme:
		dark := a.ctl.ToggleDarkMode()
		a.theme = newTheme(dark)
		return a, a.saveThemeCmd(dark)
	case actionClearAll:
		if a.ctl.Total() > 0 {
			a.mode = modeConfirm
		}
	case actionClearSearch:
		if a.ctl.State().SearchTerm != "" {
			a.ctl.SetSearchTerm("")
			a.cursor = 0
		}
	}
	return a, nil
}

// handleSearchKey filters as the user types.
func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b := a.keys.Lookup(m.String(), scopeSearch); b != nil {
		switch b.Action {
		case actionQuit:
			return a, tea.Quit
		case actionConfirm:
			a.search.Blur()
			a.mode = modeList
			return a, nil
		case actionClearSearch:
			a.search.SetValue("")
			a.search.Blur()
			a.ctl.SetSearchTerm("")
			a.cursor = 0
			a.mode = modeList
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	if a.search.Value() != a.ctl.State().SearchTerm {
		a.ctl.SetSearchTerm(a.search.Value())
		a.cursor = 0
	}
	return a, cmd
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b := a.keys.Lookup(m.String(), scopeForm); b != nil {
		switch b.Action {
		case actionQuit:
			return a, tea.Quit
		case actionNextField:
			a.form.move(1)
			return a, textinput.Blink
		case actionPrevField:
			a.form.move(-1)
			return a, textinput.Blink
		case actionCancel:
			if a.form.kind == formEdit {
				a.ctl.CancelEdit()
			}
			a.mode = modeList
			return a, nil
		case actionSave:
			a.submitForm()
			return a, nil
		}
	}
	return a, a.form.update(m)
}

func (a *App) submitForm() {
	in := a.form.value()
	var res contact.Result
	if a.form.kind == formEdit {
		if _, ok := a.ctl.Editing(); !ok {
			a.status = "contact no longer exists"
			a.mode = modeList
			return
		}
		res = a.ctl.ConfirmEdit(in)
	} else {
		res, _ = a.ctl.AddContact(in)
	}
	if !res.Valid {
		a.form.errors = res.Errors
		return
	}
	a.status = a.ctl.Status()
	a.mode = modeList
	a.clampCursor()
}

func (a *App) handleConfirmKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := a.keys.Lookup(m.String(), scopeConfirm)
	if b == nil {
		return a, nil
	}
	switch b.Action {
	case actionQuit:
		return a, tea.Quit
	case actionConfirm:
		a.ctl.ClearAll()
		a.status = a.ctl.Status()
		a.cursor = 0
		a.mode = modeList
	case actionCancel:
		a.mode = modeList
	}
	return a, nil
}

func (a *App) clampCursor() {
	rows := len(a.ctl.View().Contacts)
	if a.cursor >= rows {
		a.cursor = rows - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// themeSaves serializes config writes. Only the latest toggle is written and
// only its reply is applied.
type themeSaves struct {
	mu     sync.Mutex
	latest atomic.Uint64
}

// saveThemeCmd writes the dark mode preference back to the config file.
func (a *App) saveThemeCmd(dark bool) tea.Cmd {
	cfg := a.cfg
	cfg.UI.DarkMode = dark
	path := a.cfgPath
	saves := a.saves
	gen := saves.latest.Add(1)
	return func() tea.Msg {
		saves.mu.Lock()
		defer saves.mu.Unlock()
		if gen != saves.latest.Load() {
			return nil
		}
		if err := config.Save(cfg, path); err != nil {
			return themeSavedMsg{dark: dark, gen: gen, err: fmt.Errorf("save theme: %w", err)}
		}
		return themeSavedMsg{dark: dark, gen: gen}
	}
}

type themeSavedMsg struct {
	dark bool
	gen  uint64
	err  error
}

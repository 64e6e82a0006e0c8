package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scope  string
}

// KeyRegistry maps key names to actions per input scope. The first key of a
// binding is what the footer shows, so it may be a label such as "j/k".
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal  = "global"
	scopeList    = "list"
	scopeSearch  = "search"
	scopeForm    = "form"
	scopeConfirm = "confirm"
)

const (
	actionQuit        Action = "quit"
	actionNavigate    Action = "navigate"
	actionPage        Action = "page"
	actionAdd         Action = "add"
	actionEdit        Action = "edit"
	actionDelete      Action = "delete"
	actionSearch      Action = "search"
	actionSort        Action = "sort"
	actionToggleTheme Action = "toggle_theme"
	actionClearAll    Action = "clear_all"
	actionClearSearch Action = "clear_search"
	actionConfirm     Action = "confirm"
	actionCancel      Action = "cancel"
	actionNextField   Action = "next_field"
	actionPrevField   Action = "prev_field"
	actionSave        Action = "save"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scope: scope})
	}

	// Global fallback lookup. Plain letters stay out of here so they can be
	// typed into inputs.
	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeList, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "move")
	reg(scopeList, actionPage, []string{"h/l", "h", "l", "left", "right"}, "page")
	reg(scopeList, actionAdd, []string{"a"}, "add")
	reg(scopeList, actionEdit, []string{"e", "enter"}, "edit")
	reg(scopeList, actionDelete, []string{"d"}, "delete")
	reg(scopeList, actionSearch, []string{"/"}, "search")
	reg(scopeList, actionSort, []string{"1/2/3", "1", "2", "3"}, "sort")
	reg(scopeList, actionToggleTheme, []string{"t"}, "theme")
	reg(scopeList, actionClearAll, []string{"X"}, "clear all")
	reg(scopeList, actionClearSearch, []string{"esc"}, "clear search")
	reg(scopeList, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeSearch, actionConfirm, []string{"enter"}, "done")
	reg(scopeSearch, actionClearSearch, []string{"esc"}, "clear")

	reg(scopeForm, actionNextField, []string{"tab", "down"}, "next field")
	reg(scopeForm, actionPrevField, []string{"shift+tab", "up"}, "prev field")
	reg(scopeForm, actionSave, []string{"enter"}, "save")
	reg(scopeForm, actionCancel, []string{"esc"}, "cancel")

	reg(scopeConfirm, actionConfirm, []string{"y", "enter"}, "confirm")
	reg(scopeConfirm, actionCancel, []string{"n", "esc"}, "cancel")

	return r
}

// Register adds b to its scope. A binding that reuses a key already taken
// in that scope is dropped and Register reports false.
func (r *KeyRegistry) Register(b Binding) bool {
	index := r.indexByScope[b.Scope]
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		k = canonicalKey(k)
		if k == "" || slices.Contains(keys, k) {
			continue
		}
		if _, taken := index[k]; taken {
			return false
		}
		keys = append(keys, k)
	}
	if b.Scope == "" || len(keys) == 0 {
		return false
	}
	if index == nil {
		index = make(map[string]*Binding)
		r.indexByScope[b.Scope] = index
	}
	b.Keys = keys
	r.bindingsByScope[b.Scope] = append(r.bindingsByScope[b.Scope], &b)
	for _, k := range keys {
		index[k] = &b
	}
	return true
}

// Lookup finds the binding for keyName in scope, falling back to the global
// scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	keyName = canonicalKey(keyName)
	if keyName == "" {
		return nil
	}
	if b := r.indexByScope[scope][keyName]; b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.indexByScope[scopeGlobal][keyName]
	}
	return nil
}

// HelpBindings returns the footer entries for scope.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.bindingsByScope[scope]
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// canonicalKey lowercases a key name. A lone capital letter is left alone
// so "X" and "x" stay different keys.
func canonicalKey(k string) string {
	k = strings.TrimSpace(k)
	if len(k) == 1 && k[0] >= 'A' && k[0] <= 'Z' {
		return k
	}
	return strings.ToLower(k)
}

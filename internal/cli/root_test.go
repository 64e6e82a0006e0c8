package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jask/contactbook/internal/config"
	"github.com/jask/contactbook/internal/contact"
	"github.com/jask/contactbook/internal/storage"
	"github.com/jask/contactbook/internal/store"
	"github.com/jask/contactbook/internal/testdata"
	"github.com/jask/contactbook/internal/view"
)

// writeConfig points the commands at a JSON file store inside a temp dir.
func writeConfig(t *testing.T) (cfgPath, dataPath string) {
	t.Helper()
	dir := t.TempDir()
	dataPath = filepath.Join(dir, "contacts.json")
	cfgPath = filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("[storage]\ndriver = \"file\"\npath = %q\n\n[ui]\npage_size = 5\n", dataPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))
	return cfgPath, dataPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "contactbook", cmd.Use)

	for _, name := range []string{"list", "seed"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("storage"))
}

func TestSeedThenList(t *testing.T) {
	cfgPath, dataPath := writeConfig(t)

	out, err := execute(t, "--config", cfgPath, "seed", "--count", "12", "--rand-seed", "42")
	require.NoError(t, err)
	assert.Equal(t, "added 12 contacts (12 total)\n", out)
	require.FileExists(t, dataPath)

	out, err = execute(t, "--config", cfgPath, "list", "--page", "3", "--json")
	require.NoError(t, err)

	var page view.Page
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 12, page.TotalFiltered)
	require.Len(t, page.Contacts, 2)
	for _, c := range page.Contacts {
		assert.NotEmpty(t, c.ID)
	}
}

func TestListGolden(t *testing.T) {
	cfgPath, dataPath := writeConfig(t)

	ctx := context.Background()
	st := store.New(storage.NewFileSlot(dataPath), zaptest.NewLogger(t))
	st.Load(ctx)
	for _, c := range testdata.Contacts(7) {
		_, err := st.Add(ctx, c)
		require.NoError(t, err)
	}

	out, err := execute(t, "--config", cfgPath, "list", "--sort", "name", "--desc", "--page-size", "3")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list_name_desc", []byte(out))

	// list never reorders what is stored
	reloaded := store.New(storage.NewFileSlot(dataPath), zaptest.NewLogger(t))
	got := reloaded.Load(ctx)
	assert.Equal(t, "Contact 01", got[0].Name)
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := renderTable([]contact.Contact{
		{Name: "Ann", Email: "ann@example.com", Phone: "5550000001"},
		{Name: "Bartholomew", Email: "b@x.io", Phone: "5550000002"},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"NAME", "EMAIL", "PHONE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Bartholomew", "b@x.io", "5550000002"}, strings.Fields(lines[2]))

	// columns start at the same offset on every line
	emailCol := len("Bartholomew") + 2
	phoneCol := emailCol + len("ann@example.com") + 2
	for _, line := range lines {
		assert.NotEqual(t, ' ', rune(line[emailCol]), line)
		assert.Equal(t, ' ', rune(line[emailCol-1]), line)
		assert.NotEqual(t, ' ', rune(line[phoneCol]), line)
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestListEmpty(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	out, err := execute(t, "--config", cfgPath, "list", "--search", "nobody")
	require.NoError(t, err)
	assert.Equal(t, "no contacts\n", out)
}

func TestListFlagErrors(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	_, err := execute(t, "--config", cfgPath, "list", "--sort", "age")
	require.ErrorContains(t, err, `unknown field "age"`)

	_, err = execute(t, "--config", cfgPath, "list", "--desc")
	require.ErrorContains(t, err, "--desc needs --sort")
}

func TestSeedRejectsZeroCount(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	_, err := execute(t, "--config", cfgPath, "seed", "--count", "0")
	require.Error(t, err)
}

func TestUnknownStorageDriver(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	_, err := execute(t, "--config", cfgPath, "--storage", "redis", "list")
	require.ErrorIs(t, err, storage.ErrUnknownDriver)
}

func TestStorageOptionsOverride(t *testing.T) {
	cfg := config.Config{Storage: config.StorageConfig{
		Driver: "sqlite",
		Path:   filepath.Join(config.DataDir(), "contactbook.db"),
		Key:    "contacts",
	}}

	got := storageOptions(cfg, "")
	assert.Equal(t, storage.Options{Driver: "sqlite", Path: cfg.Storage.Path, Key: "contacts"}, got)

	got = storageOptions(cfg, storage.DriverFile)
	assert.Equal(t, filepath.Join(config.DataDir(), "contacts.json"), got.Path)

	cfg.Storage.Path = "/srv/book.json"
	got = storageOptions(cfg, storage.DriverFile)
	assert.Equal(t, "/srv/book.json", got.Path)
}

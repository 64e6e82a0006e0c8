// Package cli holds the cobra commands of the contactbook binary.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/contactbook/internal/config"
	"github.com/jask/contactbook/internal/controller"
	"github.com/jask/contactbook/internal/logging"
	"github.com/jask/contactbook/internal/storage"
	"github.com/jask/contactbook/internal/store"
	"github.com/jask/contactbook/internal/tui"
	"github.com/jask/contactbook/internal/view"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Storage    string // overrides storage.driver when set
	Verbose    bool
}

// NewRootCommand creates the root command. Without a subcommand it starts
// the interactive contact book.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "contactbook",
		Short:         "Terminal contact book",
		Long:          "Keep a list of contacts (name, email, phone) and browse, search, sort and edit it in the terminal.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $CONTACTBOOK_CONFIG or ~/.config/contactbook/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.Storage, "storage", "", "storage driver: sqlite, file or memory")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// session is everything a command needs: loaded config, logger and a store
// holding the persisted contacts.
type session struct {
	cfg   config.Config
	log   *zap.Logger
	store *store.Store
	close func() error
}

func openSession(ctx context.Context, opts *RootOptions) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Log, opts.Verbose)
	if err != nil {
		return nil, err
	}
	slot, closeSlot, err := storage.Open(ctx, storageOptions(cfg, opts.Storage))
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	st := store.New(slot, log.Named("store"))
	st.Load(ctx)

	return &session{
		cfg:   cfg,
		log:   log,
		store: st,
		close: func() error {
			_ = log.Sync()
			return closeSlot()
		},
	}, nil
}

// storageOptions applies the --storage override. Switching to the file
// driver while the path still names the default database moves the data to
// contacts.json next to it.
func storageOptions(cfg config.Config, driver string) storage.Options {
	opts := storage.Options{Driver: cfg.Storage.Driver, Path: cfg.Storage.Path, Key: cfg.Storage.Key}
	if driver == "" {
		return opts
	}
	opts.Driver = driver
	if driver == storage.DriverFile && opts.Path == filepath.Join(config.DataDir(), "contactbook.db") {
		opts.Path = filepath.Join(config.DataDir(), "contacts.json")
	}
	return opts
}

func runTUI(ctx context.Context, opts *RootOptions) error {
	s, err := openSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	ctl := controller.New(ctx, s.store, view.New(s.cfg.UI.Locale), s.log.Named("controller"), controller.Options{
		PageSize: s.cfg.UI.PageSize,
		DarkMode: s.cfg.UI.DarkMode,
	})
	app := tui.New(ctl, tui.Options{Config: s.cfg, ConfigPath: config.Path(opts.ConfigPath), Log: s.log.Named("tui")})

	s.log.Info("starting tui", zap.Int("contacts", s.store.Len()))
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

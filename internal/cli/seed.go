package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/contactbook/internal/testdata"
)

// NewSeedCommand appends generated demo contacts.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		count    int
		randSeed int64
	)

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Append generated demo contacts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			if randSeed == 0 {
				randSeed = time.Now().UnixNano()
			}
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			n, err := testdata.Seed(cmd.Context(), s.store, count, rand.New(rand.NewSource(randSeed)))
			s.log.Info("seeded contacts", zap.Int("added", n), zap.Int64("seed", randSeed))
			if err != nil {
				return fmt.Errorf("seed after %d contacts: %w", n, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d contacts (%d total)\n", n, s.store.Len())
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of contacts to add")
	cmd.Flags().Int64Var(&randSeed, "rand-seed", 0, "random seed (default: current time)")

	return cmd
}

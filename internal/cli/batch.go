package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/anas-shakeel/go-bmp/internal/filters"
)

// Transforms available to the batch command, with their default settings
func (a *app) operations() map[string]func() (transform, error) {
	return map[string]func() (transform, error){
		"rotate":    func() (transform, error) { return rotateBy(1), nil },
		"sepia":     func() (transform, error) { return sepiaWith(a.cfg.Sepia.Mode) },
		"invert":    func() (transform, error) { return onCopy(filters.Invert), nil },
		"grayscale": func() (transform, error) { return onCopy(filters.Grayscale), nil },
	}
}

func operationNames(ops map[string]func() (transform, error)) []string {
	names := lo.Keys(ops)
	sort.Strings(names)
	return names
}

func (a *app) batchCommand() *cobra.Command {
	var op, outDir string
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Apply one transform to many bitmaps concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := a.operations()
			build, ok := ops[op]
			if !ok {
				return fmt.Errorf("unknown operation %q (want one of %s)", op, strings.Join(operationNames(ops), ", "))
			}
			fn, err := build()
			if err != nil {
				return err
			}

			inputs := lo.Uniq(args)
			bases := lo.Map(inputs, func(in string, _ int) string { return filepath.Base(in) })
			if dup := lo.FindDuplicates(bases); len(dup) > 0 {
				return fmt.Errorf("inputs share output names: %s", strings.Join(dup, ", "))
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			a.log.Info("batch started",
				zap.String("op", op),
				zap.Int("files", len(inputs)),
				zap.Int("workers", a.cfg.Batch.Workers))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Batch.Workers)
			for i, in := range inputs {
				out := filepath.Join(outDir, bases[i])
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					return a.convert(in, out, fn)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&op, "op", "sepia", "operation to apply: grayscale, invert, rotate or sepia")
	cmd.Flags().StringVar(&outDir, "out", "out", "directory receiving the results, named after the inputs")
	return cmd
}

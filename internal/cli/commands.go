package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/anas-shakeel/go-bmp/internal/adjustments"
	"github.com/anas-shakeel/go-bmp/internal/bmp"
	"github.com/anas-shakeel/go-bmp/internal/config"
	"github.com/anas-shakeel/go-bmp/internal/filters"
)

// transform produces a new image from src; src is left untouched.
type transform func(src *bmp.Image) (*bmp.Image, error)

// Reads in, applies fn and saves the result to out
func (a *app) convert(in, out string, fn transform) error {
	img, err := bmp.ReadBitmap(in, a.decodeOptions()...)
	if err != nil {
		return fmt.Errorf("reading '%s': %w", in, err)
	}

	res, err := fn(img)
	if err != nil {
		return fmt.Errorf("transforming '%s': %w", in, err)
	}

	if err := res.Save(out); err != nil {
		return fmt.Errorf("writing '%s': %w", out, err)
	}
	a.log.Info("converted",
		zap.String("in", in),
		zap.String("out", out),
		zap.Uint32("width", res.Width),
		zap.Uint32("height", res.Height))
	return nil
}

func rotateBy(turns int) transform {
	return func(src *bmp.Image) (*bmp.Image, error) {
		return adjustments.Rotate(src, turns), nil
	}
}

func sepiaWith(mode string) (transform, error) {
	switch mode {
	case config.SepiaScalar:
		return func(src *bmp.Image) (*bmp.Image, error) { return filters.Sepia(src), nil }, nil
	case config.SepiaBatched:
		return func(src *bmp.Image) (*bmp.Image, error) { return filters.SepiaBatched(src), nil }, nil
	default:
		return nil, fmt.Errorf("unknown sepia mode %q", mode)
	}
}

// Wraps an in-place filter so it runs on a copy
func onCopy(filter func(*bmp.Image)) transform {
	return func(src *bmp.Image) (*bmp.Image, error) {
		dst := src.Copy()
		filter(dst)
		return dst, nil
	}
}

func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print the header fields of a bitmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() {
				err = multierr.Append(err, file.Close())
			}()

			header, err := bmp.DecodeHeader(bufio.NewReader(file))
			if err != nil {
				return fmt.Errorf("reading '%s': %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			for _, f := range header.Fields() {
				if f.Name == "bfType" {
					fmt.Fprintf(out, "%-16s %#x\n", f.Name+":", f.Value)
					continue
				}
				fmt.Fprintf(out, "%-16s %d\n", f.Name+":", f.Value)
			}
			fmt.Fprintf(out, "%-16s %d\n", "stride:", bmp.Stride(header.Width))
			fmt.Fprintf(out, "%-16s %d\n", "padding:", bmp.Padding(header.Width))
			if status := header.Validate(); status != bmp.ReadOK {
				fmt.Fprintf(out, "%-16s %s\n", "status:", status)
			}
			return nil
		},
	}
}

func (a *app) rotateCommand() *cobra.Command {
	var turns int
	cmd := &cobra.Command{
		Use:   "rotate <in> <out>",
		Short: "Rotate a bitmap by quarter turns clockwise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args[0], args[1], rotateBy(turns))
		},
	}
	cmd.Flags().IntVar(&turns, "turns", 1, "number of 90 degree clockwise turns (negative turns counter-clockwise)")
	return cmd
}

func (a *app) sepiaCommand() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "sepia <in> <out>",
		Short: "Apply a sepia tone to a bitmap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("mode") {
				mode = a.cfg.Sepia.Mode
			}
			fn, err := sepiaWith(mode)
			if err != nil {
				return err
			}
			return a.convert(args[0], args[1], fn)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", config.SepiaScalar, "sepia implementation: scalar (truncating) or batched (rounding)")
	return cmd
}

func (a *app) invertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "invert <in> <out>",
		Short: "Invert the colors of a bitmap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args[0], args[1], onCopy(filters.Invert))
		},
	}
}

func (a *app) grayscaleCommand() *cobra.Command {
	var luma bool
	cmd := &cobra.Command{
		Use:   "grayscale <in> <out>",
		Short: "Convert a bitmap to black and white",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := filters.Grayscale
			if luma {
				filter = filters.GrayscaleLuma
			}
			return a.convert(args[0], args[1], onCopy(filter))
		},
	}
	cmd.Flags().BoolVar(&luma, "luma", false, "use the ITU-R 601-2 luma transform instead of the channel average")
	return cmd
}

func (a *app) brightnessCommand() *cobra.Command {
	var factor float32
	var method string
	cmd := &cobra.Command{
		Use:   "brightness <in> <out>",
		Short: "Brighten or darken a bitmap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args[0], args[1], func(src *bmp.Image) (*bmp.Image, error) {
				dst := src.Copy()
				if err := filters.Brightness(dst, factor, method); err != nil {
					return nil, err
				}
				return dst, nil
			})
		},
	}
	cmd.Flags().Float32Var(&factor, "factor", 1, "value added to or multiplied with each channel")
	cmd.Flags().StringVar(&method, "method", "multiply", "add or multiply")
	return cmd
}

func (a *app) contrastCommand() *cobra.Command {
	var factor float32
	cmd := &cobra.Command{
		Use:   "contrast <in> <out>",
		Short: "Stretch (factor > 1) or flatten (factor < 1) the contrast of a bitmap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args[0], args[1], onCopy(func(img *bmp.Image) {
				filters.Contrast(img, factor)
			}))
		},
	}
	cmd.Flags().Float32Var(&factor, "factor", 1, "contrast factor")
	return cmd
}

func (a *app) channelCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "channel <in> <out>",
		Short: "Keep a single color channel of a bitmap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args[0], args[1], func(src *bmp.Image) (*bmp.Image, error) {
				return src.GetChannel(name)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "red", "channel to keep: red, green or blue")
	return cmd
}

func (a *app) cropCommand() *cobra.Command {
	var x, y, width, height int
	cmd := &cobra.Command{
		Use:   "crop <in> <out>",
		Short: "Crop a region of a bitmap (origin at the top-left corner)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args[0], args[1], func(src *bmp.Image) (*bmp.Image, error) {
				return adjustments.Crop(src, x, y, width, height)
			})
		},
	}
	cmd.Flags().IntVar(&x, "x", 0, "left edge of the region")
	cmd.Flags().IntVar(&y, "y", 0, "top edge of the region")
	cmd.Flags().IntVar(&width, "width", 0, "width of the region")
	cmd.Flags().IntVar(&height, "height", 0, "height of the region")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func (a *app) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <file>",
		Short: "Print a bitmap as colored terminal blocks (small images only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := bmp.ReadBitmap(args[0], a.decodeOptions()...)
			if err != nil {
				return fmt.Errorf("reading '%s': %w", args[0], err)
			}
			return img.Preview(cmd.OutOrStdout())
		},
	}
}

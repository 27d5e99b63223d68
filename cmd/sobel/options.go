package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/ironsheep/image-sobel/internal/imaging"
)

const defaultOutput = "out.jpg"

var errUsage = errors.New("invalid usage")

// options holds the resolved command line.
type options struct {
	imagePath string
	workers   int
	output    string
	quality   int
	gray      bool
	debug     bool
	version   bool
	help      bool
}

func newFlagSet(o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("sobel", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.IntVarP(&o.workers, "workers", "w", 1, "number of row ranges each pass is split into")
	fs.StringVarP(&o.output, "output", "o", defaultOutput, "edge map destination (.jpg, .png, .gif, .bmp, .tif)")
	fs.IntVarP(&o.quality, "quality", "q", imaging.DefaultQuality, "JPEG quality 1-100")
	fs.BoolVar(&o.gray, "gray", false, "reduce the image to luminance before detection")
	fs.BoolVar(&o.debug, "debug", false, "log per-pass timing")
	fs.BoolVarP(&o.version, "version", "v", false, "print version information")
	fs.BoolVarP(&o.help, "help", "h", false, "print this help message")
	return fs
}

// parseOptions resolves args into options. Every configuration problem is
// reported here, before any image is decoded or any worker started.
func parseOptions(args []string) (*options, *pflag.FlagSet, error) {
	o := &options{}
	fs := newFlagSet(o)
	if err := fs.Parse(args); err != nil {
		return nil, fs, fmt.Errorf("%w: %w", errUsage, err)
	}
	if o.help || o.version {
		return o, fs, nil
	}

	pos := fs.Args()
	switch len(pos) {
	case 0:
		return nil, fs, fmt.Errorf("%w: missing image_file", errUsage)
	case 1, 2:
		o.imagePath = pos[0]
	default:
		return nil, fs, fmt.Errorf("%w: too many arguments", errUsage)
	}

	if len(pos) == 2 {
		n, err := strconv.Atoi(pos[1])
		if err != nil {
			return nil, fs, fmt.Errorf("%w: num_workers must be an integer, got %q", errUsage, pos[1])
		}
		if fs.Changed("workers") && n != o.workers {
			return nil, fs, fmt.Errorf("%w: num_workers %d conflicts with --workers %d", errUsage, n, o.workers)
		}
		o.workers = n
	}

	if o.workers < 1 {
		return nil, fs, fmt.Errorf("%w: num_workers must be positive, got %d", errUsage, o.workers)
	}
	if o.quality < 1 || o.quality > 100 {
		return nil, fs, fmt.Errorf("%w: quality must be between 1 and 100, got %d", errUsage, o.quality)
	}
	if err := imaging.CheckOutputPath(o.output); err != nil {
		return nil, fs, fmt.Errorf("%w: %w", errUsage, err)
	}
	return o, fs, nil
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "sobel - Sobel gradient-magnitude edge map")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: sobel [options] image_file [num_workers]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
}

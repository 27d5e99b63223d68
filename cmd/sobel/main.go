package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/ironsheep/image-sobel/internal/imaging"
	"github.com/ironsheep/image-sobel/internal/sobel"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status: 0 on success, 2 for
// a configuration error and 1 when the run itself fails.
func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseOptions(args)
	if err != nil {
		fmt.Fprintf(stderr, "sobel: %v\n\n", err)
		printUsage(stderr, fs)
		return 2
	}

	if opts.help {
		printUsage(stdout, fs)
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "sobel %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	}

	logger := bslogger.NewLogger("Sobel", bslogger.Normal, nil)
	if opts.debug {
		logger = bslogger.NewLogger("Sobel", bslogger.All, nil)
	}

	if err := process(opts, &logger); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}

// process decodes the input, runs both passes and the combine step, and
// writes the magnitude image.
func process(opts *options, logger *bslogger.Logger) error {
	img, err := imaging.Decode(opts.imagePath)
	if err != nil {
		return err
	}

	src, err := imaging.ToBuffer(img, opts.gray)
	if err != nil {
		return fmt.Errorf("failed to allocate source buffer: %w", err)
	}
	logger.Info(fmt.Sprintf("output_width=%d, output_height=%d, output_components=%d",
		src.Width, src.Height, src.Channels))

	det, err := sobel.NewDetector(opts.workers, sobel.WithLogger(logger))
	if err != nil {
		return err
	}
	defer det.Close()

	res, err := det.Detect(src)
	if err != nil {
		return fmt.Errorf("edge detection failed: %w", err)
	}

	if err := imaging.Save(opts.output, res.Magnitude, opts.quality); err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("Wrote %s using %d workers in %s", opts.output, res.Stats.Workers, res.Stats.Total))
	return nil
}

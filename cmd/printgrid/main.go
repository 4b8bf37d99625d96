package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bodgit/printgrid"
	"github.com/bodgit/printgrid/imagefile"
	"github.com/bodgit/printgrid/paper"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func expand(c *cli.Context, name string) (string, error) {
	return homedir.Expand(c.String(name))
}

// source treats an existing directory as a list of its images and anything
// else as a glob pattern
func source(arg string) (printgrid.Source, error) {
	path, err := homedir.Expand(arg)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return printgrid.Directory(path), nil
	}
	return printgrid.Glob(path), nil
}

func imageOptions(c *cli.Context) imagefile.Options {
	return imagefile.Options{
		Quality: c.Int("quality"),
		Colors:  c.Int("colors"),
	}
}

// exit converts err for the cli package, running out of input is only
// logged as a warning
func exit(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, printgrid.ErrNoInput):
		logrus.Warn(err)
		return nil
	default:
		return cli.Exit(err, 1)
	}
}

var encodingFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "quality",
		Value: imagefile.DefaultQuality,
		Usage: "JPEG quality, 1-100",
	},
	&cli.IntFlag{
		Name:  "colors",
		Usage: "reduce output to at most this many colors, 0 for no limit",
	},
}

func main() {
	app := cli.NewApp()

	app.Name = "printgrid"
	app.Usage = "Image grid and printable page utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "cut",
			Usage:       "Cut an image into a grid of tiles",
			Description: "Each tile is written as <name>_<row>_<col>.png",
			ArgsUsage:   "FILE",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:    "cols",
					Aliases: []string{"x"},
					Value:   2,
					Usage:   "number of horizontal divisions",
				},
				&cli.IntFlag{
					Name:    "rows",
					Aliases: []string{"y"},
					Value:   2,
					Usage:   "number of vertical divisions",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   ".",
					Usage:   "directory to write tiles to",
				},
			}, encodingFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				file, err := homedir.Expand(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				dir, err := expand(c, "output")
				if err != nil {
					return cli.Exit(err, 1)
				}

				p := printgrid.New(newLogger(c))

				files, err := p.Cut(file, c.Int("cols"), c.Int("rows"), dir, imageOptions(c))
				if err != nil {
					return exit(err)
				}

				fmt.Printf("Images saved in %s (%d tiles)\n", dir, len(files))

				return nil
			},
		},
		{
			Name:        "grid",
			Usage:       "Compose images into a single grid image",
			Description: "SOURCE is a directory of images or a glob pattern",
			ArgsUsage:   "SOURCE OUTPUT",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:    "cols",
					Aliases: []string{"x"},
					Value:   2,
					Usage:   "number of columns",
				},
				&cli.IntFlag{
					Name:    "rows",
					Aliases: []string{"y"},
					Value:   2,
					Usage:   "number of rows",
				},
				&cli.IntFlag{
					Name:    "spacing",
					Aliases: []string{"s"},
					Usage:   "white space between images in pixels",
				},
			}, encodingFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				src, err := source(c.Args().Get(0))
				if err != nil {
					return cli.Exit(err, 1)
				}

				output, err := homedir.Expand(c.Args().Get(1))
				if err != nil {
					return cli.Exit(err, 1)
				}

				p := printgrid.New(newLogger(c))

				if err := p.Grid(src, c.Int("cols"), c.Int("rows"), c.Int("spacing"), output, imageOptions(c)); err != nil {
					return exit(err)
				}

				fmt.Printf("Grid image saved to %s\n", output)

				return nil
			},
		},
		{
			Name:        "print",
			Usage:       "Lay out images onto printable pages",
			Description: "Paper sizes: " + strings.Join(paper.Names(), ", "),
			ArgsUsage:   "SOURCE",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "paper",
					Aliases: []string{"p"},
					EnvVars: []string{"PRINTGRID_PAPER"},
					Value:   paper.A4.Name,
					Usage:   "paper size",
				},
				&cli.BoolFlag{
					Name:  "landscape",
					Usage: "use the paper in landscape orientation",
				},
				&cli.Float64Flag{
					Name:     "size",
					Required: true,
					Usage:    "image size in millimetres",
				},
				&cli.StringFlag{
					Name:  "by",
					Value: printgrid.ByHeight.String(),
					Usage: "apply the size to the image 'height' or 'width'",
				},
				&cli.Float64Flag{
					Name:    "spacing",
					Aliases: []string{"s"},
					Value:   5,
					Usage:   "space between images in millimetres",
				},
				&cli.IntFlag{
					Name:    "dpi",
					EnvVars: []string{"PRINTGRID_DPI"},
					Value:   paper.DefaultDPI,
					Usage:   "rendering density in dots per inch",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					EnvVars: []string{"PRINTGRID_OUTPUT"},
					Value:   "./print_ready/",
					Usage:   "directory to write pages to",
				},
				&cli.StringFlag{
					Name:  "format",
					Value: "jpg",
					Usage: "page file format",
				},
			}, encodingFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				src, err := source(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				opts := printgrid.DefaultPrintOptions()

				if opts.Paper, err = paper.Lookup(c.String("paper")); err != nil {
					return cli.Exit(err, 1)
				}
				if c.Bool("landscape") {
					opts.Paper = opts.Paper.Landscape()
				}

				if opts.Axis, err = printgrid.ParseAxis(c.String("by")); err != nil {
					return cli.Exit(err, 1)
				}

				if opts.Output, err = expand(c, "output"); err != nil {
					return cli.Exit(err, 1)
				}

				opts.ImageSize = c.Float64("size")
				opts.Spacing = c.Float64("spacing")
				opts.DPI = c.Int("dpi")
				opts.Format = strings.TrimPrefix(c.String("format"), ".")
				opts.Image = imageOptions(c)

				p := printgrid.New(newLogger(c))

				files, err := p.Printable(src, opts)
				if err != nil {
					return exit(err)
				}

				for i, file := range files {
					fmt.Printf("Page %d saved to %s\n", i+1, file)
				}
				fmt.Println("All pages created.")

				return nil
			},
		},
		{
			Name:        "check",
			Usage:       "Check images share the same aspect ratio",
			Description: "SOURCE is a directory of images or a glob pattern",
			ArgsUsage:   "SOURCE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				src, err := source(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				p := printgrid.New(newLogger(c))

				if err := p.CheckAspectRatios(src); err != nil {
					return exit(err)
				}

				fmt.Println("All images have the same aspect ratio.")

				return nil
			},
		},
		{
			Name:        "download",
			Usage:       "Download an image",
			Description: "",
			ArgsUsage:   "URL FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				output, err := homedir.Expand(c.Args().Get(1))
				if err != nil {
					return cli.Exit(err, 1)
				}

				ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
				defer cancel()

				p := printgrid.New(newLogger(c))

				if err := p.Download(ctx, c.Args().First(), output); err != nil {
					return exit(err)
				}

				fmt.Printf("Image downloaded and saved to %s\n", output)

				return nil
			},
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}

/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/pic2term"
	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "0.0.2"

func init() {
	log.SetHandler(clihander.Default)
}

type options struct {
	verbose  bool
	width    sizeValue
	height   sizeValue
	filter   filterValue
	encoding encodingValue
	detect   pic2term.GridDetector
}

// newRootCmd builds the base command. detect finds the terminal size when
// neither --width nor --height is given.
func newRootCmd(detect pic2term.GridDetector) *cobra.Command {
	opts := &options{
		filter:   filterValue(pic2term.Nearest),
		encoding: encodingValue(pic2term.Halfblocks),
		detect:   detect,
	}

	cmd := &cobra.Command{
		Use:           "pic2term [flags] FILE",
		Short:         "Renders images to the terminal with Unicode characters",
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "V", false, "Enable verbose logging")
	cmd.Flags().VarP(&opts.width, "width", "W", "The width (in columns) to resize the image to")
	cmd.Flags().VarP(&opts.height, "height", "H", "The height (in rows) to resize the image to")
	cmd.Flags().VarP(&opts.filter, "filter", "f", "The filter to use when downscaling the image "+choices(pic2term.Filters()))
	cmd.Flags().VarP(&opts.encoding, "encoding", "e", "The output encoding "+choices(pic2term.Encodings()))

	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	img, err := pic2term.Open(path)
	if err != nil {
		return err
	}
	img.Size(int(opts.width), int(opts.height)).
		Filter(pic2term.Filter(opts.filter)).
		Encoding(pic2term.Encoding(opts.encoding)).
		Grid(opts.detect)

	if opts.verbose {
		if err := logGeometry(img, opts); err != nil {
			return err
		}
	}

	start := time.Now()
	if err := img.Print(cmd.OutOrStdout()); err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Debug("rendered image")

	return nil
}

// logGeometry reports the sizes Print is about to use. It resolves the
// geometry on its own, so it is only called in verbose mode.
func logGeometry(img *pic2term.Image, opts *options) error {
	bounds, err := img.Bounds()
	if err != nil {
		return err
	}
	geometry, err := img.Geometry()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"source":   fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"geometry": geometry.String(),
		"cells":    fmt.Sprintf("%dx%d", geometry.Cols(), geometry.Rows()),
		"filter":   pic2term.Filter(opts.filter).String(),
		"encoding": pic2term.Encoding(opts.encoding).String(),
	}).Debug("resolved output size")
	return nil
}

var rootCmd = newRootCmd(pic2term.DetectGrid)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command birp converts between the PGM, BIRP, and ASCII-preview raster
// representations of a grayscale image, optionally applying one
// structure-preserving transform along the way. It never touches a BDD node
// directly except by calling into the birp package.
package main

import (
	"fmt"
	"os"

	"github.com/birp-run/birp"
	"github.com/birp-run/birp/internal/ascii"
	"github.com/birp-run/birp/internal/pgm"
)

const usage = `usage: birp [-h] [-i {pgm|birp}] [-o {pgm|birp|ascii}] [transform] [debug]
  -h             print this message and exit
  -i FORMAT      input format, default birp; must precede any transform
  -o FORMAT      output format, default birp; must precede any transform
  -n             negate every pixel (birp -> birp only)
  -t N           threshold at N, 0 <= N <= 255 (birp -> birp only)
  -r             rotate 180 degrees (birp -> birp only)
  -z N           zoom out by 2^N, 1 <= N <= 16 (birp -> birp only)
  -Z N           zoom in by 2^N, 0 <= N <= 16 (birp -> birp only)
  -d FILE        dump a Graphviz description of the output node to FILE
                 ("-" for standard output)
  -s             print store occupancy statistics to standard error
`

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if opts.help {
		fmt.Fprint(os.Stdout, usage)
		return
	}
	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options, in *os.File, out *os.File) error {
	s, err := birp.New()
	if err != nil {
		return fmt.Errorf("create node store: %w", err)
	}

	switch {
	case opts.in == formatPgm && opts.out == formatBirp:
		width, height, buf, err := pgm.Read(in)
		if err != nil {
			return err
		}
		root, err := s.FromRaster(width, height, buf)
		if err != nil {
			return err
		}
		if err := debugDump(s, root, opts); err != nil {
			return err
		}
		return writeContainer(out, s, root, width, height)

	case opts.in == formatBirp && opts.out == formatPgm:
		root, width, height, err := readContainer(in, s)
		if err != nil {
			return err
		}
		if err := debugDump(s, root, opts); err != nil {
			return err
		}
		buf, err := s.ToRaster(root, width, height)
		if err != nil {
			return err
		}
		return pgm.Write(out, width, height, buf)

	case opts.in == formatBirp && opts.out == formatBirp:
		root, width, height, err := readContainer(in, s)
		if err != nil {
			return err
		}
		root, level, err := applyTransform(s, opts, root, width, height)
		if err != nil {
			return err
		}
		if err := debugDump(s, root, opts); err != nil {
			return err
		}
		side := 1 << (level / 2)
		return writeContainer(out, s, root, side, side)

	case opts.in == formatPgm && opts.out == formatAscii:
		width, height, buf, err := pgm.Read(in)
		if err != nil {
			return err
		}
		return ascii.Write(out, width, height, buf)

	case opts.in == formatBirp && opts.out == formatAscii:
		root, width, height, err := readContainer(in, s)
		if err != nil {
			return err
		}
		if err := debugDump(s, root, opts); err != nil {
			return err
		}
		buf, err := s.ToRaster(root, width, height)
		if err != nil {
			return err
		}
		return ascii.Write(out, width, height, buf)
	}
	return fmt.Errorf("unsupported conversion")
}

// debugDump writes the optional "-d"/"-s" diagnostics for root: a Graphviz
// description of its BDD and a report of the store's occupancy. Either or
// both may be disabled in opts, in which case the corresponding write is
// skipped.
func debugDump(s *birp.Store, root birp.Node, opts options) error {
	if opts.dotFile != "" {
		if err := s.PrintDot(root, opts.dotFile); err != nil {
			return err
		}
	}
	if opts.stats {
		fmt.Fprint(os.Stderr, s.Stats())
	}
	return nil
}

// applyTransform dispatches on the single optional transform and returns the
// resulting node together with its level (the level changes under zoom).
func applyTransform(s *birp.Store, opts options, root birp.Node, width, height int) (birp.Node, int32, error) {
	level := birp.MinLevel(width, height)
	switch opts.xform {
	case transformNone:
		return root, level, nil
	case transformNegative:
		n, err := s.Map(root, func(v byte) byte { return 255 - v })
		return n, level, err
	case transformThreshold:
		t := byte(opts.thresholdArg)
		n, err := s.Map(root, func(v byte) byte {
			if v < t {
				return 0
			}
			return 255
		})
		return n, level, err
	case transformRotate:
		n, err := s.Rotate(root, level)
		return n, level, err
	case transformZoom:
		n, err := s.Zoom(root, level, int8(opts.zoomArg))
		if err != nil {
			return 0, 0, err
		}
		// The new level follows from the factor rather than s.Level(n): a
		// result that collapsed under hash-consing is stored at a lower level.
		out := level + 2*int32(opts.zoomArg)
		if out < 0 {
			out = 0
		}
		return n, out, nil
	}
	return root, level, nil
}

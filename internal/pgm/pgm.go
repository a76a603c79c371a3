// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package pgm reads and writes the binary PGM (Portable Graymap, "P5")
// format used as one of the raster collaborators of the BDD image engine.
// It does nothing beyond marshaling bytes to and from a row-major buffer;
// it has no notion of a BDD.
package pgm

import (
	"bufio"
	"fmt"
	"io"
)

// MaxDimension bounds both the width and height of a decoded image, mirroring
// the node store's own maximum raster dimension.
const MaxDimension = 8192

// MaxValue is the only maxval this package ever reads or writes: PGM allows
// larger sample depths, but every value in this format is a single byte.
const MaxValue = 255

// Read parses a binary PGM ("P5") stream and returns its width, height, and
// row-major pixel buffer.
func Read(r io.Reader) (width, height int, buf []byte, err error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("pgm: read magic: %w", err)
	}
	if magic != "P5" {
		return 0, 0, nil, fmt.Errorf("pgm: unsupported magic %q, want P5", magic)
	}
	width, err = readIntToken(br)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("pgm: read width: %w", err)
	}
	height, err = readIntToken(br)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("pgm: read height: %w", err)
	}
	maxval, err := readIntToken(br)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("pgm: read maxval: %w", err)
	}
	if maxval != MaxValue {
		return 0, 0, nil, fmt.Errorf("pgm: unsupported maxval %d, want %d", maxval, MaxValue)
	}
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return 0, 0, nil, fmt.Errorf("pgm: invalid dimensions %dx%d", width, height)
	}
	// Exactly one whitespace byte separates the header from the binary data;
	// readIntToken has already consumed it when it stopped at the delimiter.
	buf = make([]byte, width*height)
	if _, err := io.ReadFull(br, buf); err != nil {
		return 0, 0, nil, fmt.Errorf("pgm: read raster: %w", err)
	}
	return width, height, buf, nil
}

// Write emits buf as a binary PGM ("P5") stream with the given dimensions.
func Write(w io.Writer, width, height int, buf []byte) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("pgm: invalid dimensions %dx%d", width, height)
	}
	if len(buf) < width*height {
		return fmt.Errorf("pgm: raster buffer too small: got %d bytes, want %d", len(buf), width*height)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n%d\n", width, height, MaxValue); err != nil {
		return fmt.Errorf("pgm: write header: %w", err)
	}
	if _, err := bw.Write(buf[:width*height]); err != nil {
		return fmt.Errorf("pgm: write raster: %w", err)
	}
	return bw.Flush()
}

// readToken skips leading whitespace and '#'-comments, then reads one
// whitespace-delimited token.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			if len(tok) > 0 {
				return string(tok), nil
			}
			continue
		}
		if b == '#' {
			if err := skipLine(br); err != nil {
				return "", err
			}
			continue
		}
		tok = append(tok, b)
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range []byte(tok) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a decimal integer: %q", tok)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func skipLine(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

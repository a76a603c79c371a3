// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/birp-run/birp"
)

// magic and version identify the concrete on-disk framing this entry point
// chooses for the BIRP container header: 4-byte magic, 1-byte version,
// little-endian width and height, then the node stream.
var magic = [4]byte{'B', 'I', 'R', 'P'}

const containerVersion byte = 1

func writeContainer(w io.Writer, s *birp.Store, node birp.Node, width, height int) error {
	var header [13]byte
	copy(header[0:4], magic[:])
	header[4] = containerVersion
	binary.LittleEndian.PutUint32(header[5:9], uint32(width))
	binary.LittleEndian.PutUint32(header[9:13], uint32(height))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write container header: %w", err)
	}
	if err := s.Serialize(node, w); err != nil {
		return fmt.Errorf("serialize node stream: %w", err)
	}
	return nil
}

func readContainer(r io.Reader, s *birp.Store) (node birp.Node, width, height int, err error) {
	var header [13]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, 0, 0, fmt.Errorf("read container header: %w", err)
	}
	if header[0] != magic[0] || header[1] != magic[1] || header[2] != magic[2] || header[3] != magic[3] {
		return 0, 0, 0, fmt.Errorf("bad container magic %q", header[0:4])
	}
	if header[4] != containerVersion {
		return 0, 0, 0, fmt.Errorf("unsupported container version %d", header[4])
	}
	width = int(binary.LittleEndian.Uint32(header[5:9]))
	height = int(binary.LittleEndian.Uint32(header[9:13]))
	node, err = s.Deserialize(r)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("deserialize node stream: %w", err)
	}
	return node, width, height, nil
}

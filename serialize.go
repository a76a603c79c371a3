// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

import (
	"bufio"
	"encoding/binary"
	"io"
)

// tagLeaf is the record tag for a leaf: byte '@' (0x40).
const tagLeaf byte = 0x40

// Serialize writes node, and everything reachable from it, to w using a
// binary preorder-with-back-references format: a topological sort of the
// DAG in which a node already written (via structural sharing) is never
// re-emitted, only referenced by its first-encounter serial number. The
// stream is deterministic for a fixed DAG: the DFS always visits left
// before right, and only a first encounter emits a record.
func (s *Store) Serialize(node Node, w io.Writer) error {
	visited := make(map[Node]uint32)
	var serial uint32
	var record [9]byte

	var emit func(n Node) (uint32, error)
	emit = func(n Node) (uint32, error) {
		if label, ok := visited[n]; ok {
			return label, nil
		}
		if s.Level(n) == 0 {
			serial++
			if _, err := w.Write([]byte{tagLeaf, byte(n)}); err != nil {
				return 0, wrapError(Io, err, "write leaf record")
			}
			visited[n] = serial
			return serial, nil
		}
		level := s.Level(n)
		if level > MaxLevel {
			return 0, newError(BadFormat, "level %d exceeds serializer maximum %d", level, MaxLevel)
		}
		lS, err := emit(s.Left(n))
		if err != nil {
			return 0, err
		}
		rS, err := emit(s.Right(n))
		if err != nil {
			return 0, err
		}
		serial++
		record[0] = tagLeaf + byte(level)
		binary.LittleEndian.PutUint32(record[1:5], lS)
		binary.LittleEndian.PutUint32(record[5:9], rS)
		if _, err := w.Write(record[:]); err != nil {
			return 0, wrapError(Io, err, "write internal record")
		}
		visited[n] = serial
		return serial, nil
	}

	_, err := emit(node)
	return err
}

// Deserialize reads a stream written by Serialize and returns the node it
// represents: the last record in the stream is the root. Deserialize fails
// with a BadFormat error on any malformed byte, premature EOF, or reference
// to a serial that was never labeled.
func (s *Store) Deserialize(r io.Reader) (Node, error) {
	br := bufio.NewReader(r)
	labels := make(map[uint32]Node)
	var serial uint32
	var buf [8]byte

	for {
		tag, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, wrapError(Io, err, "read record tag")
		}
		serial++
		switch {
		case tag == tagLeaf:
			v, err := br.ReadByte()
			if err != nil {
				return 0, wrapError(BadFormat, err, "read leaf value")
			}
			labels[serial] = s.Leaf(v)
		case tag > tagLeaf && tag <= tagLeaf+MaxLevel:
			level := int32(tag - tagLeaf)
			if _, err := io.ReadFull(br, buf[:]); err != nil {
				return 0, wrapError(BadFormat, err, "read internal record")
			}
			lS := binary.LittleEndian.Uint32(buf[0:4])
			rS := binary.LittleEndian.Uint32(buf[4:8])
			left, ok := labels[lS]
			if !ok {
				return 0, newError(BadFormat, "reference to unlabeled serial %d", lS)
			}
			right, ok := labels[rS]
			if !ok {
				return 0, newError(BadFormat, "reference to unlabeled serial %d", rS)
			}
			n, err := s.Lookup(level, left, right)
			if err != nil {
				return 0, err
			}
			labels[serial] = n
		default:
			return 0, newError(BadFormat, "unexpected record tag 0x%02x", tag)
		}
	}
	if serial == 0 {
		return 0, newError(BadFormat, "empty stream")
	}
	return labels[serial], nil
}

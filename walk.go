// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

import (
	set3 "github.com/TomTonic/Set3"
)

// Allnodes calls f once for every node reachable from node, including node
// itself and the leaves it reaches, in an unspecified order. Each node is
// visited exactly once: the traversal keeps an external set of already-
// visited nodes, since nodeEntry carries no spare bit to mark in place.
// Traversal stops at the first error returned by f.
func (s *Store) Allnodes(node Node, f func(n Node) error) error {
	seen := set3.EmptyWithCapacity[Node](64)
	var walk func(n Node) error
	walk = func(n Node) error {
		if seen.Contains(n) {
			return nil
		}
		seen.Add(n)
		if err := f(n); err != nil {
			return err
		}
		if s.Level(n) == 0 {
			return nil
		}
		if err := walk(s.Left(n)); err != nil {
			return err
		}
		return walk(s.Right(n))
	}
	return walk(node)
}

// Reachable returns the number of distinct nodes reachable from node,
// counting leaves.
func (s *Store) Reachable(node Node) int {
	seen := set3.EmptyWithCapacity[Node](64)
	var walk func(n Node)
	walk = func(n Node) {
		if seen.Contains(n) {
			return
		}
		seen.Add(n)
		if s.Level(n) == 0 {
			return
		}
		walk(s.Left(n))
		walk(s.Right(n))
	}
	walk(node)
	return seen.Len()
}

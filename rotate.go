// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

// Rotate returns the BDD of node's image rotated 180 degrees: a point
// reflection that swaps the top-left/bottom-right and top-right/bottom-left
// quadrants at every paired-level split. This is a point reflection, not a
// single-axis flip.
//
// level is the level node is being rotated at (the side of the square being
// rotated is 2^(level/2)); it must be even and non-negative. It need not
// equal s.Level(node): a solid-color node collapses to a leaf well below
// its caller's conceptual level, and that collapsed level must not leak
// into the Apply calls rotateRegion uses to sample pixels of node.
func (s *Store) Rotate(node Node, level int32) (Node, error) {
	if level < 0 || level%2 != 0 {
		return 0, newError(BadArg, "rotate requires a non-negative even level (%d)", level)
	}
	side := 1 << (level / 2)
	return s.rotateRegion(node, level, level, 0, 0, side)
}

// rotateRegion recurses over quadrants of side d at a time. evalLevel is
// node's fixed conceptual level, passed unchanged to every Apply call,
// since node itself is never replaced by a subtree as the recursion
// descends — only the sampled region (r, c, d) shrinks. level is the
// label the output quadrants are reassembled under, which does shrink by
// two on every recursive call.
//
// The recursion base (d == 1) reads a single pixel through Apply rather
// than following node.left/node.right directly, since doing so would
// mishandle "useless test" elimination when the region's nominal level
// exceeds a subtree's actual stored level.
func (s *Store) rotateRegion(node Node, evalLevel, level int32, r, c, d int) (Node, error) {
	if d == 1 {
		v, err := s.Apply(node, evalLevel, r, c)
		if err != nil {
			return 0, err
		}
		return s.Leaf(v), nil
	}
	half := d / 2
	tl, err := s.rotateRegion(node, evalLevel, level-2, r, c, half)
	if err != nil {
		return 0, err
	}
	tr, err := s.rotateRegion(node, evalLevel, level-2, r, c+half, half)
	if err != nil {
		return 0, err
	}
	bl, err := s.rotateRegion(node, evalLevel, level-2, r+half, c, half)
	if err != nil {
		return 0, err
	}
	br, err := s.rotateRegion(node, evalLevel, level-2, r+half, c+half, half)
	if err != nil {
		return 0, err
	}
	top, err := s.Lookup(level-1, br, bl)
	if err != nil {
		return 0, err
	}
	bottom, err := s.Lookup(level-1, tr, tl)
	if err != nil {
		return 0, err
	}
	return s.Lookup(level, top, bottom)
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

// Zoom scales node by a power-of-two factor. factor is interpreted as a
// signed byte: positive values zoom in by pixel
// duplication, negative values (two's complement) zoom out by OR-reducing
// 2^s x 2^s source blocks (255 if any source pixel in the block is
// non-zero, else 0). factor == 0 returns node unchanged. level is the level
// node is being zoomed at; it need not equal s.Level(node), since a
// solid-color node collapses to a leaf well below its caller's conceptual
// level.
//
// Zooming in fails with an OutOfRange error if level+2k would exceed
// MaxLevel, where k is the zoom-in magnitude.
func (s *Store) Zoom(node Node, level int32, factor int8) (Node, error) {
	if factor == 0 {
		return node, nil
	}
	side := 1 << (level / 2)
	if factor > 0 {
		k := int32(factor)
		if level+2*k > MaxLevel {
			return 0, newError(OutOfRange, "zoom-in would exceed level %d (level=%d, k=%d)", MaxLevel, level, k)
		}
		return s.zoomIn(node, level, level, 0, 0, side, side, 2*k)
	}
	// Two's complement magnitude of a negative byte, clamped to level/2.
	magnitude := -int32(factor)
	if magnitude > level/2 {
		magnitude = level / 2
	}
	return s.zoomOut(node, level, level, 0, 0, side, side, 2*magnitude)
}

// zoomIn recurses through the source at its natural levels, reading each
// leaf through Apply, and relabels every resulting internal node at
// level+shift (the same constant shift at every depth). Because Lookup
// already collapsed the source into a shared DAG, the result reuses the
// same structure under a higher notional level. evalLevel is node's fixed
// conceptual level, passed unchanged to every Apply call since node itself
// is never replaced by a subtree as level descends through logical bit
// positions.
func (s *Store) zoomIn(node Node, evalLevel, level int32, r, c, w, h int, shift int32) (Node, error) {
	if level == 0 {
		v, err := s.Apply(node, evalLevel, r, c)
		if err != nil {
			return 0, err
		}
		return s.Leaf(v), nil
	}
	if level%2 == 0 {
		left, err := s.zoomIn(node, evalLevel, level-1, r, c, w, h/2, shift)
		if err != nil {
			return 0, err
		}
		right, err := s.zoomIn(node, evalLevel, level-1, r+h/2, c, w, h/2, shift)
		if err != nil {
			return 0, err
		}
		return s.Lookup(level+shift, left, right)
	}
	left, err := s.zoomIn(node, evalLevel, level-1, r, c, w/2, h, shift)
	if err != nil {
		return 0, err
	}
	right, err := s.zoomIn(node, evalLevel, level-1, r, c+w/2, w/2, h, shift)
	if err != nil {
		return 0, err
	}
	return s.Lookup(level+shift, left, right)
}

// zoomOut recurses down to the block size named by shift (the clamped,
// doubled zoom-out magnitude) and OR-reduces every source pixel in that
// block via Apply, then relabels the surviving internal nodes at
// level-shift. evalLevel is node's fixed conceptual level, passed unchanged
// to every Apply call for the same reason as in zoomIn.
func (s *Store) zoomOut(node Node, evalLevel, level int32, r, c, w, h int, shift int32) (Node, error) {
	if level == shift {
		for i := r; i < r+w; i++ {
			for j := c; j < c+h; j++ {
				v, err := s.Apply(node, evalLevel, i, j)
				if err != nil {
					return 0, err
				}
				if v != 0 {
					return s.Leaf(255), nil
				}
			}
		}
		return s.Leaf(0), nil
	}
	if level%2 == 0 {
		left, err := s.zoomOut(node, evalLevel, level-1, r, c, w, h/2, shift)
		if err != nil {
			return 0, err
		}
		right, err := s.zoomOut(node, evalLevel, level-1, r+h/2, c, w, h/2, shift)
		if err != nil {
			return 0, err
		}
		return s.Lookup(level-shift, left, right)
	}
	left, err := s.zoomOut(node, evalLevel, level-1, r, c, w/2, h, shift)
	if err != nil {
		return 0, err
	}
	right, err := s.zoomOut(node, evalLevel, level-1, r, c+w/2, w/2, h, shift)
	if err != nil {
		return 0, err
	}
	return s.Lookup(level-shift, left, right)
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

// Apply walks node, following row bits at even levels and column bits at
// odd levels, and returns the grayscale value at the leaf it reaches. level
// is the conceptual level node is being queried at — not necessarily
// s.Level(node): a node whose subtree has collapsed under hash-consing (a
// solid-color region, say) is stored at a lower level than the square its
// caller means to address, and re-deriving the bound from s.Level(node)
// would reject every in-range coordinate but (0,0). Callers must pass the
// level their node logically represents, the same way Rotate and Zoom do.
// Apply returns 0 if r or c is negative or falls outside the square side
// 2^(level/2), without touching the Store.
func (s *Store) Apply(node Node, level int32, r, c int) (byte, error) {
	side := 1 << (level / 2)
	if r < 0 || c < 0 || r >= side || c >= side {
		return 0, nil
	}
	cur := node
	for s.Level(cur) > 0 {
		l := s.Level(cur)
		var bit int
		if l%2 == 0 {
			bit = (r >> ((l - 2) / 2)) & 1
		} else {
			bit = (c >> ((l - 1) / 2)) & 1
		}
		if bit == 0 {
			cur = s.Left(cur)
		} else {
			cur = s.Right(cur)
		}
	}
	return byte(cur), nil
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

// Map returns the BDD obtained by applying f to every leaf value of node,
// leaving the diagram's branching structure otherwise untouched. A
// post-order recursion over a shared DAG does not need to memoize for
// correctness, since Lookup itself collapses the output to structural
// uniqueness; this still memoizes by input-node index to avoid revisiting
// shared subtrees.
func (s *Store) Map(node Node, f func(byte) byte) (Node, error) {
	memo := make(map[Node]Node)
	return s.mapRec(node, f, memo)
}

func (s *Store) mapRec(node Node, f func(byte) byte, memo map[Node]Node) (Node, error) {
	if res, ok := memo[node]; ok {
		return res, nil
	}
	if s.Level(node) == 0 {
		res := s.Leaf(f(byte(node)))
		memo[node] = res
		return res, nil
	}
	left, err := s.mapRec(s.Left(node), f, memo)
	if err != nil {
		return 0, err
	}
	right, err := s.mapRec(s.Right(node), f, memo)
	if err != nil {
		return 0, err
	}
	res, err := s.Lookup(s.Level(node), left, right)
	if err != nil {
		return 0, err
	}
	memo[node] = res
	return res, nil
}

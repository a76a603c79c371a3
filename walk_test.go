// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

import "testing"

//********************************************************************************************

func TestAllnodesVisitsOnce(t *testing.T) {
	s, _ := New()
	root, _ := s.FromRaster(4, 4, []byte{
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
	})
	count := 0
	err := s.Allnodes(root, func(n Node) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("Allnodes: unexpected error %v", err)
	}
	if count != 1 {
		t.Errorf("Allnodes over a constant image: expected 1 node visited, actual %d", count)
	}
}

func TestReachableCountsSharing(t *testing.T) {
	s, _ := New()
	root, _ := s.FromRaster(4, 4, []byte{
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 1, 2, 2,
		1, 1, 2, 2,
	})
	n := s.Reachable(root)
	if n < 1 {
		t.Errorf("Reachable: expected at least one node, got %d", n)
	}
	if int64(n)-1 > s.Produced() {
		t.Errorf("Reachable: %d nodes counted but only %d were ever produced", n, s.Produced())
	}
}

func TestAllnodesStopsOnError(t *testing.T) {
	s, _ := New()
	root, _ := s.FromRaster(4, 4, []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	sentinel := newError(BadArg, "stop")
	err := s.Allnodes(root, func(n Node) error {
		return sentinel
	})
	if err != sentinel {
		t.Errorf("Allnodes: expected the callback's error to propagate, got %v", err)
	}
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

import "testing"

func negative(v byte) byte { return 255 - v }

func threshold128(v byte) byte {
	if v < 128 {
		return 0
	}
	return 255
}

//********************************************************************************************

// TestMapIdentity checks that mapping with the identity function is a no-op.
func TestMapIdentity(t *testing.T) {
	s, _ := New()
	root, _ := s.FromRaster(2, 2, []byte{1, 2, 3, 4})
	out, err := s.Map(root, func(v byte) byte { return v })
	if err != nil {
		t.Fatalf("Map: unexpected error %v", err)
	}
	if out != root {
		t.Errorf("Map(root, identity): expected %d, actual %d", root, out)
	}
}

// TestMapComposition checks that map(., f o g) == map(map(., g), f).
func TestMapComposition(t *testing.T) {
	s, _ := New()
	root, _ := s.FromRaster(2, 2, []byte{10, 200, 5, 128})

	direct, err := s.Map(root, func(v byte) byte { return threshold128(negative(v)) })
	if err != nil {
		t.Fatalf("Map: unexpected error %v", err)
	}
	step1, err := s.Map(root, negative)
	if err != nil {
		t.Fatalf("Map: unexpected error %v", err)
	}
	step2, err := s.Map(step1, threshold128)
	if err != nil {
		t.Fatalf("Map: unexpected error %v", err)
	}
	if direct != step2 {
		t.Errorf("Map composition mismatch: direct %d, staged %d", direct, step2)
	}
}

// TestMapNegativeRoundtrip checks that negating a negated image recovers
// the same DAG.
func TestMapNegativeRoundtrip(t *testing.T) {
	s, _ := New()
	root, _ := s.FromRaster(2, 2, []byte{0, 60, 120, 255})
	once, err := s.Map(root, negative)
	if err != nil {
		t.Fatalf("Map: unexpected error %v", err)
	}
	twice, err := s.Map(once, negative)
	if err != nil {
		t.Fatalf("Map: unexpected error %v", err)
	}
	if twice != root {
		t.Errorf("Map(Map(root, negative), negative): expected %d, actual %d", root, twice)
	}
}

// TestMapThreshold checks that a 128 threshold maps 100 to 0 and 200 to 255.
func TestMapThreshold(t *testing.T) {
	s, _ := New()
	root, _ := s.FromRaster(2, 1, []byte{100, 200})
	out, err := s.Map(root, threshold128)
	if err != nil {
		t.Fatalf("Map: unexpected error %v", err)
	}
	level := MinLevel(2, 1)
	v, _ := s.Apply(out, level, 0, 0)
	if v != 0 {
		t.Errorf("threshold(100): expected 0, actual %d", v)
	}
	v, _ = s.Apply(out, level, 0, 1)
	if v != 255 {
		t.Errorf("threshold(200): expected 255, actual %d", v)
	}
}

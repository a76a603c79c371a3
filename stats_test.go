// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

import (
	"strings"
	"testing"
)

//********************************************************************************************

// TestStatsReflectsProduced checks that Stats reports the node count built
// by FromRaster and grows after further construction.
func TestStatsReflectsProduced(t *testing.T) {
	s, _ := New()
	if _, err := s.FromRaster(2, 2, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("FromRaster: unexpected error %v", err)
	}
	before := s.Stats()
	if !strings.Contains(before, "Produced:   3") {
		t.Errorf("Stats: expected 3 produced nodes, got %q", before)
	}

	if _, err := s.FromRaster(4, 4, []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}); err != nil {
		t.Fatalf("FromRaster: unexpected error %v", err)
	}
	after := s.Stats()
	if after == before {
		t.Errorf("Stats: expected report to change after further construction")
	}
}

func TestStatsFields(t *testing.T) {
	s, _ := New()
	out := s.Stats()
	for _, field := range []string{"Capacity:", "Used:", "Produced:", "Hash size:"} {
		if !strings.Contains(out, field) {
			t.Errorf("Stats: expected field %q, got %q", field, out)
		}
	}
}

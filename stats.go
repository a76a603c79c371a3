// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

import "fmt"

// Stats returns a short human-readable report on the store's occupancy.
// There is no garbage collector and no free list to report on, since the
// store only ever grows.
func (s *Store) Stats() string {
	used := int(s.cursor) - NumLeaves
	capacity := int(s.capacity) - NumLeaves
	res := fmt.Sprintf("Capacity:   %d\n", capacity)
	res += fmt.Sprintf("Used:       %d (%.3g %%)\n", used, (float64(used)/float64(capacity))*100)
	res += fmt.Sprintf("Produced:   %d\n", s.produced)
	res += fmt.Sprintf("Hash size:  %d\n", len(s.table))
	return res
}

// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

// configs stores the tunable parameters of a Store (see New).
type configs struct {
	nodeCapacity int // fixed capacity of the node table
	hashSize     int // fixed capacity of the unicity hash table
}

func makeconfigs() *configs {
	c := &configs{
		nodeCapacity: _DEFAULTNODECAP,
	}
	c.hashSize = primeGte(2 * c.nodeCapacity)
	return c
}

// NodeCapacity is a configuration option (function). Used as a parameter in
// New, it sets the maximum number of internal nodes the Store can hold,
// beyond the 256 permanently occupied leaves. Lookup calls that would exceed
// this capacity fail with a StoreFull error instead of growing the table:
// the node table never resizes or garbage collects once the Store exists.
// A non-positive n makes New fail with a BadArg error.
func NodeCapacity(n int) func(*configs) {
	return func(c *configs) {
		c.nodeCapacity = n
	}
}

// HashSize is a configuration option (function). Used as a parameter in New,
// it sets the capacity of the open-addressed unicity table used for
// hash-consing. It is rounded up to the nearest prime (see primeGte) to
// spread out linear-probing collisions. If left unset, it is the smallest
// prime at or above twice the default node capacity; a capacity set with
// NodeCapacity does not change this default. A non-positive n makes New fail
// with a BadArg error.
func HashSize(n int) func(*configs) {
	return func(c *configs) {
		if n > 0 {
			c.hashSize = primeGte(n)
		} else {
			c.hashSize = n
		}
	}
}

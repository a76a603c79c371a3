// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package birp defines a concrete type for hash-consed Binary Decision Diagrams
(BDD) used as a compact representation of 2-D grayscale raster images.

Basics

An image is described by a logical square canvas of side 2^(L/2), for an even
level L big enough to contain the image's true width and height; pixels
outside the true dimensions read as zero (padding). Every node in the diagram
carries a level: even levels dispatch on a row bit of the pixel coordinate,
odd levels dispatch on a column bit, and a level-0 node is a leaf holding one
of the 256 possible grayscale values. A Node is an index in the interval
[0..256) for a leaf and [256..) for an internal node, with the convention
that the leaf at index v represents the constant grayscale value v.

Hash-consing

The defining invariant of the Store is that no two internal nodes are ever
stored with the same (level, low, high) triple: the lookup method collapses
structurally identical subtrees to the same index, using an open-addressed
table with linear probing rather than a language-level map, so that the
node store can be serialized byte for byte. An entry whose two children are
equal is never stored at all; the common child is returned directly ("useless
test" elimination). Because the table is append-only and never garbage
collected, a Node remains a valid reference for the lifetime of its Store.

Transforms

Map, Rotate and Zoom all build their result through lookup, so the output
diagram is automatically as compact as hash-consing allows; none of them
need to run a separate minimization pass.

Serialization

Serialize and Deserialize implement a binary preorder-with-back-references
format: a topological sort of the DAG where repeated subtrees are referenced
by their first-encounter serial number rather than re-emitted.
*/
package birp

// Package order merges discovered pages with extracted navigation entries
// into a single total order with hierarchy depths.
//
// The primary ordering is a walk of the navigation entries in document
// order: each entry whose normalized href exactly matches a discovered
// page's URL path assigns that page the next order index and the entry's
// depth. Discovered pages no navigation entry points at (orphans) are
// appended afterwards in path-sorted order at depth 0; they are never
// dropped. When navigation extraction produced nothing, the whole set falls
// back to path-sorted order at uniform depth 0.
//
// Order indexes are unique and contiguous from 0. An optional page ceiling
// truncates the sequence after ordering, so the ceiling always cuts from
// the tail of the resolved order.
package order

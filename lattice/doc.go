// Package lattice works with nets: ordered sets of unit squares on the
// integer lattice that describe one fixed polyomino.
//
// What:
//
//   - Normalize puts a net in canonical form: sorted by X ascending then
//     Y descending, and translated so the first point is (0,0). Two nets
//     are translates of each other iff their canonical forms are equal.
//   - FindEquivalent tests a net against a Bucket under all 8 symmetries
//     of the square (4 rotations × optional reflection).
//   - Bucket groups canonical nets by size.
//
// Complexity:
//
//   - Normalize: O(k log k) for a net of k points.
//   - FindEquivalent: O(8 × (k log k + m×k)) for m stored nets of size k.
//
// The Y-descending tie-break is load-bearing: it fixes which point becomes
// the origin and therefore which sequence represents a shape.
package lattice

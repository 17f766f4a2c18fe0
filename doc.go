// Package dmbc builds and canonically encodes the transaction set of a
// permissioned asset-trading blockchain. It does not submit, sign, or
// verify transactions; it only constructs the deterministic byte
// representation a node or wallet hands off to its own signing and
// broadcast layers.
//
// Every transaction shares a common envelope (see wrapEnvelope) and a
// segment-pointer discipline for variable-length fields (see
// segmentWriter). Value objects, offers, and transaction builders are
// split across files named after the concept they implement.
package dmbc

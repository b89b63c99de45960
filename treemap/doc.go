// Package treemap implements a mutable ordered map on a B+Tree. The
// map satisfies maptrait.Map and additionally ranges over its entries
// in ascending key order. Clone is constant time: the clone and the
// original share nodes until either of them writes to one.
package treemap

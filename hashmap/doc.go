// Package hashmap implements a mutable hash map that satisfies
// maptrait.Map. Keys are indexed by the hash of their borrowed view,
// so a map holding owned keys of type K can be queried with any view
// Q that the map's Hasher understands.
//
// A note about key equality. The Hasher decides both the hash of a
// view and whether two views are equal. The default hasher uses
// XXH3 for strings and hash/maphash for other comparable types,
// comparing with '=='. Types needing a different equality must be
// given a Hasher whose Hash agrees with its Equal.
package hashmap

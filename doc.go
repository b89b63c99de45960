// Package maptrait defines capability interfaces for maps and sets.
//
// Code written against Map and Set runs unchanged over any conforming
// container: the hash based hashmap and hashset packages, the ordered
// treemap and treeset packages, or a wrapper such as the lastinsert
// decorators. The async package lifts any Map into a deferred-value
// shape.
//
// Values are read through a Guard, a borrowed handle that points into
// the container rather than copying the value out. A guard is valid
// only until the container that produced it is next modified.
//
// Containers are keyed by an owned key type K and queried with a
// borrowed view Q of that key. The view is produced by a borrow
// function supplied when the container is built; Identity is used when
// the key is its own query type. Because the container indexes entries
// by the view it computed at insert time, a query equal to the view of
// a stored key always finds that key.
//
// Q carries no hash, equality or ordering constraint of its own. Each
// container takes the discipline it needs when it is built: a Hasher
// for the hash containers and a comparison function for the ordered
// ones.
//
// None of the containers in this module are safe for concurrent
// mutation.
package maptrait

// Package lastinsert provides decorators that wrap any maptrait.Map or
// maptrait.Set and remember the most recent insert. A decorator
// satisfies the interface of the container it wraps, so decorators
// nest and can stand in wherever the wrapped container is used.
//
// A decorator is constructed with a seed entry that is inserted into
// the wrapped container, so there is always a last insert to report.
package lastinsert

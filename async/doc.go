// Package async exposes maptrait maps through deferred values. The
// adapter returned by Wrap performs each operation eagerly and hands
// back a Future that is already complete, so code structured around
// futures can run over a synchronous map unchanged.
package async

// Package internal contains the keel application core: the request
// Context, the chi-backed router, the HTTP error model, and the App
// type that turns registered controller metadata into live routes.
//
// The root keel package re-exports the public pieces of this package;
// application code should import keel, not internal.
package internal

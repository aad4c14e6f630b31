// Package resolve answers lookup queries against a populated source registry.
//
// ResolveURL and ResolveName turn a single query into a model.Resolution.
// BatchResolver runs many queries concurrently with a bounded number of
// goroutines and returns the results in input order.
package resolve

// SPDX-License-Identifier: MIT

// Package batch runs shot scoring and pair validation over a worker pool.
//
// Runner fans work out with golang.org/x/sync/errgroup, bounded by the
// configured worker count. Results are written by index, so output order
// always matches input order and equals what a sequential loop produces.
// The first failing job cancels the rest; a cancelled context stops
// scheduling new jobs and is returned as the error.
//
// Batch-level timeouts are the caller's: pass a context from
// context.WithTimeout.
package batch

// Package runner solves whole batches of machines and aggregates the
// per-variant press totals across them.
package runner

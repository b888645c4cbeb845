// Package invoice holds the line-item editor state and its rules.
//
// Allowed here:
// - amount derivation from raw form input
// - create/update reconciliation of submitted forms into the record list
// - record identifier generation
//
// Not allowed here:
// - terminal rendering, key handling, or any I/O
package invoice

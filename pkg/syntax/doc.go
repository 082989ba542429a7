// Package syntax provides the lossless syntax tree engine shared by the
// surface-language front ends. It defines:
//   - Green nodes/tokens/trivia: the immutable, position-independent core
//     form. A green element carries no parent pointer and no absolute
//     offset, which is what lets an unchanged subtree be shared between the
//     trees produced by successive incremental reparses.
//   - Red nodes and NodeOrToken handles: transient, position-aware wrappers
//     computed on demand during traversal. A red node knows its parent and
//     absolute position; handle identity carries no meaning beyond the
//     (owner, green, slot) triple.
//   - Side tables: diagnostics and annotations attached out-of-band, keyed
//     by green identity and preserved across structural copies.
//
// Every byte of the parsed source is represented: tokens own their
// surrounding whitespace, comments and directives as trivia, and
// Node.ToFullString reproduces the original text exactly.
//
// The package performs no I/O, never blocks, and uses no locks. Any number
// of goroutines may traverse a shared tree concurrently; lazily memoized
// values are published with a single atomic compare-and-swap.
package syntax

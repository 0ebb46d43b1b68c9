// Package refname validates and normalizes Git object names: branches,
// tags, remote names, remote URLs, file paths, and stash messages.
//
// The validators mirror the grammar enforced by git check-ref-format so the
// user hears about a bad name before an external git process would reject
// it. Every function is a pure computation over its input; the package
// holds no state and never performs I/O.
package refname

// Package shell implements the interactive bus search session.
//
// A Session keeps the active result set of one user explicitly, so the
// Search, Swap, Cheapest, Fastest and Show commands always act on what was
// last displayed. Shell wraps a Session in a line-editing REPL.
package shell

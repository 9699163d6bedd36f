// Package main hosts the overlap CLI entrypoint and command graph.
//
// The Cobra command tree loads configuration once, builds a corpus loader and
// a comparer from it, and renders results as tables or JSON. Flags override
// configuration only when they are set explicitly on the command line.
//
// Keep this package lean: scoring and file handling belong in the internal
// packages, and commands here only translate between them and the terminal.
package main

// Package corpus loads the text documents that overlap compares.
//
// A Loader reads explicit files as-is and walks directories for files whose
// extension is configured, skipping hidden entries. The file system is an
// afero.Fs so callers and tests can substitute an in-memory tree.
package corpus

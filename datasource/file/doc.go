// Package file provides a DataSource which reads tables from a set of files on disk
// matched by a glob, and merges them into a single Table. Files are parsed concurrently,
// and merged in lexical order of their paths.
package file

// Package tsvframe contains the core components of tsvframe, a small container for string-valued
// tabular data backed by tab-separated files. This root package defines the interfaces shared by
// the schema, table and datasource packages, and the coercion rule used to store every value as
// a string.
package tsvframe

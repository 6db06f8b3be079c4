// Package catalog defines the canonical film record schema and the
// normalization rules that reconcile the two historical field-naming
// schemes found in persisted stores.
package catalog

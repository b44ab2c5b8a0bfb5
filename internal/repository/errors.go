// Package repository provides data access for recs and everything hanging
// off them.
package repository

import "errors"

// ErrNotFound is returned when a lookup that expects exactly one row finds none.
var ErrNotFound = errors.New("record not found")

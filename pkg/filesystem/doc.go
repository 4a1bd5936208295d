// Package filesystem provides filesystem implementations for shellkit.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem used in production.
package filesystem

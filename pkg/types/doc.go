// Package types contains the shared types used across shellkit.
//
// Keeping these in a leaf package avoids import cycles between the
// linker, bootstrap, and CLI layers.
package types

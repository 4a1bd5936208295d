// Package linker implements the idempotent link/backup/restore procedure
// at the heart of shellkit.
//
// Each managed file is described by a types.LinkSpec. Install moves any
// pre-existing target content to <target>.bak and replaces the target
// with a symlink to the repo source. Restore undoes this, but only for
// backups that actually exist: unrecognized content at the target is
// never destroyed, only warned about.
//
// Both procedures are idempotent. Running either twice in a row leaves
// the filesystem exactly as one run would.
package linker

package types

import "io/fs"

// FS abstracts the filesystem operations the linker and scaffolder
// perform, for testability. The production implementation lives in
// pkg/filesystem.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

package linker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shellkit/shellkit/pkg/errors"
	"github.com/shellkit/shellkit/pkg/logging"
	"github.com/shellkit/shellkit/pkg/types"
)

// Options controls how the linker mutates the filesystem.
type Options struct {
	// DryRun reports the action that would be taken without touching
	// the filesystem.
	DryRun bool
}

// Linker installs and restores managed symlinks over a types.FS.
type Linker struct {
	fs   types.FS
	opts Options
}

// New creates a Linker operating on the given filesystem.
func New(filesystem types.FS, opts Options) *Linker {
	return &Linker{fs: filesystem, opts: opts}
}

// Install ensures spec.Target is a symlink to spec.Source, moving any
// pre-existing non-symlink content to the backup path first.
//
// A missing source is not an error: the spec is skipped with a warning
// so one broken entry never blocks the others.
func (l *Linker) Install(spec types.LinkSpec) (types.LinkResult, error) {
	logger := logging.GetLogger("linker")

	if _, err := l.fs.Stat(spec.Source); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().
				Str("link", spec.Name).
				Str("source", spec.Source).
				Msg("source missing, skipping")
			return types.LinkResult{
				Spec:    spec,
				Action:  types.ActionSkipped,
				Warning: "source does not exist",
			}, nil
		}
		return types.LinkResult{}, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot stat source for %q", spec.Name)
	}

	info, lerr := l.fs.Lstat(spec.Target)
	action := types.ActionLinked
	switch {
	case lerr == nil && info.Mode()&fs.ModeSymlink != 0:
		action = types.ActionRelinked
	case lerr == nil:
		action = types.ActionBackedUp
	case !os.IsNotExist(lerr):
		return types.LinkResult{}, errors.Wrapf(lerr, errors.ErrFileAccess,
			"cannot stat target for %q", spec.Name)
	}

	if l.opts.DryRun {
		return types.LinkResult{Spec: spec, Action: action}, nil
	}

	if err := l.fs.MkdirAll(filepath.Dir(spec.Target), 0755); err != nil {
		return types.LinkResult{}, errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create parent directory for %q", spec.Name)
	}

	switch action {
	case types.ActionRelinked:
		// Stale or foreign symlink: discard, never back up.
		if err := l.fs.Remove(spec.Target); err != nil {
			return types.LinkResult{}, errors.Wrapf(err, errors.ErrFileAccess,
				"cannot remove existing symlink for %q", spec.Name)
		}
	case types.ActionBackedUp:
		// Unconditional rename: an older backup at this path is clobbered.
		if err := l.fs.Rename(spec.Target, spec.BackupPath()); err != nil {
			return types.LinkResult{}, errors.Wrapf(err, errors.ErrBackupMove,
				"cannot back up existing target for %q", spec.Name)
		}
		logger.Info().
			Str("link", spec.Name).
			Str("backup", spec.BackupPath()).
			Msg("existing target backed up")
	}

	if err := l.fs.Symlink(spec.Source, spec.Target); err != nil {
		return types.LinkResult{}, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"cannot create symlink for %q", spec.Name)
	}

	logger.Info().
		Str("link", spec.Name).
		Str("target", spec.Target).
		Str("source", spec.Source).
		Msg("linked")

	return types.LinkResult{Spec: spec, Action: action}, nil
}

// Restore reverses Install for one spec. The target symlink is removed
// and the backup, if any, is moved back. A non-symlink target is left
// untouched with a warning since it may be a user-modified file.
func (l *Linker) Restore(spec types.LinkSpec) (types.LinkResult, error) {
	logger := logging.GetLogger("linker")

	targetOccupied := false
	removedLink := false
	if info, err := l.fs.Lstat(spec.Target); err == nil {
		if info.Mode()&fs.ModeSymlink != 0 {
			removedLink = true
			if !l.opts.DryRun {
				if rerr := l.fs.Remove(spec.Target); rerr != nil {
					return types.LinkResult{}, errors.Wrapf(rerr, errors.ErrFileAccess,
						"cannot remove symlink for %q", spec.Name)
				}
			}
		} else {
			targetOccupied = true
			logger.Warn().
				Str("link", spec.Name).
				Str("target", spec.Target).
				Msg("target is not a symlink, leaving untouched")
		}
	} else if !os.IsNotExist(err) {
		return types.LinkResult{}, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot stat target for %q", spec.Name)
	}

	backupExists := false
	if _, err := l.fs.Lstat(spec.BackupPath()); err == nil {
		backupExists = true
	} else if !os.IsNotExist(err) {
		return types.LinkResult{}, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot stat backup for %q", spec.Name)
	}

	switch {
	case backupExists && targetOccupied:
		logger.Warn().
			Str("link", spec.Name).
			Str("backup", spec.BackupPath()).
			Msg("backup present but target occupied, skipping restore")
		return types.LinkResult{
			Spec:    spec,
			Action:  types.ActionSkipped,
			Warning: "target occupied by non-symlink content",
		}, nil
	case backupExists:
		if !l.opts.DryRun {
			if err := l.fs.Rename(spec.BackupPath(), spec.Target); err != nil {
				return types.LinkResult{}, errors.Wrapf(err, errors.ErrBackupMove,
					"cannot restore backup for %q", spec.Name)
			}
		}
		logger.Info().
			Str("link", spec.Name).
			Str("target", spec.Target).
			Msg("backup restored")
		return types.LinkResult{Spec: spec, Action: types.ActionRestored}, nil
	case targetOccupied:
		return types.LinkResult{
			Spec:    spec,
			Action:  types.ActionSkipped,
			Warning: "target is not a symlink",
		}, nil
	case removedLink:
		return types.LinkResult{Spec: spec, Action: types.ActionRemoved}, nil
	default:
		return types.LinkResult{Spec: spec, Action: types.ActionNone}, nil
	}
}

// InstallAll runs Install over every spec in order. The first hard
// error aborts the run; skip-and-warn results do not.
func (l *Linker) InstallAll(specs []types.LinkSpec) ([]types.LinkResult, error) {
	results := make([]types.LinkResult, 0, len(specs))
	for _, spec := range specs {
		res, err := l.Install(spec)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RestoreAll runs Restore over every spec in order.
func (l *Linker) RestoreAll(specs []types.LinkSpec) ([]types.LinkResult, error) {
	results := make([]types.LinkResult, 0, len(specs))
	for _, spec := range specs {
		res, err := l.Restore(spec)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

package linker

import (
	"io/fs"
	"os"

	"github.com/shellkit/shellkit/pkg/errors"
	"github.com/shellkit/shellkit/pkg/types"
)

// Status inspects a spec's target without mutating anything.
func (l *Linker) Status(spec types.LinkSpec) (types.LinkStatus, error) {
	status := types.LinkStatus{Spec: spec, State: types.StateAbsent}

	info, err := l.fs.Lstat(spec.Target)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink != 0:
		dest, rerr := l.fs.Readlink(spec.Target)
		if rerr != nil {
			return status, errors.Wrapf(rerr, errors.ErrFileAccess,
				"cannot read symlink for %q", spec.Name)
		}
		status.LinkDest = dest
		if dest == spec.Source {
			status.State = types.StateLinked
		} else {
			status.State = types.StateForeignLink
		}
	case err == nil:
		status.State = types.StateFile
	case !os.IsNotExist(err):
		return status, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot stat target for %q", spec.Name)
	}

	if _, err := l.fs.Lstat(spec.BackupPath()); err == nil {
		status.HasBackup = true
	} else if !os.IsNotExist(err) {
		return status, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot stat backup for %q", spec.Name)
	}

	return status, nil
}

// StatusAll reports the state of every spec.
func (l *Linker) StatusAll(specs []types.LinkSpec) ([]types.LinkStatus, error) {
	statuses := make([]types.LinkStatus, 0, len(specs))
	for _, spec := range specs {
		st, err := l.Status(spec)
		if err != nil {
			return statuses, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

package types

// BackupSuffix is appended to a link target's path to name its backup.
// It is deliberately not configurable: restore must be able to find the
// backup for any target regardless of which config produced it.
const BackupSuffix = ".bak"

// LinkSpec describes one managed configuration file: a canonical source
// inside the shellkit repository and the target path where the owning
// tool expects to find it.
type LinkSpec struct {
	// Name identifies the spec in logs and status output ("zshrc", ...)
	Name string

	// Source is the absolute path of the canonical file in the repo.
	Source string

	// Target is the absolute path the source is linked to.
	Target string
}

// BackupPath returns the path pre-existing target content is moved to.
func (s LinkSpec) BackupPath() string {
	return s.Target + BackupSuffix
}

// LinkState is the observed state of a LinkSpec's target path.
type LinkState int

const (
	// StateAbsent means the target path does not exist.
	StateAbsent LinkState = iota

	// StateFile means the target exists and is a regular file or directory.
	StateFile

	// StateLinked means the target is a symlink resolving to the source.
	StateLinked

	// StateForeignLink means the target is a symlink to some other path.
	StateForeignLink
)

// String returns the state name used in status output.
func (s LinkState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateFile:
		return "file"
	case StateLinked:
		return "linked"
	case StateForeignLink:
		return "foreign link"
	default:
		return "unknown"
	}
}

// LinkAction is what the installer or restorer did to a target.
type LinkAction int

const (
	// ActionNone means nothing was changed (dry run or already restored).
	ActionNone LinkAction = iota

	// ActionLinked means a symlink was created at a previously absent target.
	ActionLinked

	// ActionRelinked means an existing symlink was replaced.
	ActionRelinked

	// ActionBackedUp means existing content was moved aside and linked over.
	ActionBackedUp

	// ActionRestored means a backup was moved back over the target.
	ActionRestored

	// ActionRemoved means the target symlink was removed with no backup left.
	ActionRemoved

	// ActionSkipped means the spec was left untouched with a warning.
	ActionSkipped
)

// String returns the action name used in logs and run summaries.
func (a LinkAction) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionLinked:
		return "linked"
	case ActionRelinked:
		return "relinked"
	case ActionBackedUp:
		return "backed up and linked"
	case ActionRestored:
		return "restored"
	case ActionRemoved:
		return "removed"
	case ActionSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// LinkResult reports the outcome of one installer or restorer pass over
// a single spec.
type LinkResult struct {
	Spec   LinkSpec
	Action LinkAction

	// Warning carries the reason for ActionSkipped outcomes. It is not
	// an error: skip-and-warn cases never abort a run.
	Warning string
}

// LinkStatus is the non-mutating view of a spec used by the status command.
type LinkStatus struct {
	Spec      LinkSpec
	State     LinkState
	HasBackup bool

	// LinkDest is the symlink destination when State is StateLinked or
	// StateForeignLink.
	LinkDest string
}

package shellkit

// Message constants for the root command and shared CLI output
const (
	MsgRootShort = "Bootstrap a personal shell environment"
	MsgRootLong  = `shellkit installs and maintains a personal shell environment: the zsh
login shell, the starship prompt, the sheldon plugin manager, fzf, and
a pinned hugo release, with the related configuration files symlinked
from a single managed repository into their standard locations.

Pre-existing configuration is moved aside to <file>.bak on install and
moved back on uninstall. Both directions are idempotent.`

	MsgFallbackWarning = "Warning: SHELLKIT_ROOT is not set, using %s\n"

	MsgInstallShort = "Run the bootstrap steps and link the managed files"
	MsgInstallLong  = `Install runs the external bootstrap steps in order (apt packages,
Homebrew, login shell, starship, sheldon, fzf, pinned hugo), then links
every managed configuration file into place, then locks the shell
plugins.

Each step is checked first and skipped when already satisfied, so
re-running install is safe. A failing step aborts the run immediately.`
	MsgInstallExample = `  # Full bootstrap
  shellkit install

  # Only manage symlinks, skip external installers
  shellkit install --links-only

  # Preview without changing anything
  shellkit install --dry-run`

	MsgUninstallShort = "Remove the managed symlinks and restore backups"
	MsgUninstallLong  = `Uninstall removes each managed symlink and moves the corresponding
.bak backup into place when one exists. Files at a target location that
are not shellkit's symlinks are left untouched with a warning.

Installed tools and packages are not removed; only the link table is
reversed.`

	MsgStatusShort = "Show the state of managed links and bootstrap steps"

	MsgInitShort = "Scaffold missing source files in the managed repository"
	MsgInitLong  = `Init writes the embedded starter templates (zshrc, sheldon plugins,
starship config) into the managed repository for every link table entry
whose source file does not exist yet. Existing files are never touched.`

	MsgGenconfigShort = "Print the effective configuration as TOML"

	MsgTopicsShort = "Show documentation on a topic"
)

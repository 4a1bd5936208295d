// Package bootstrap runs the external installation steps of a shellkit
// install: apt packages, the Homebrew bootstrap, the login shell change,
// the prompt, the plugin manager, the fuzzy finder, and the pinned hugo
// release.
//
// Each step is idempotent: Check reports whether the step is already
// satisfied and Run performs the work. Steps execute strictly in order
// and the first Run failure aborts the whole sequence. External tools
// are invoked through the CommandRunner interface so tests never shell
// out.
package bootstrap

// Package ui renders shellkit's terminal output: format detection,
// lipgloss styles, and progress views for bootstrap and link runs.
package ui

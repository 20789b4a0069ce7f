// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Bubble Tea planner, SQLite mission history, JSON export
// 0.3.0 - Capability flags replace name matching, injectable catalog
// 0.2.0 - Launch window projection, gravity-assist transit, report files
// 0.1.0 - Initial release: numbered menu, rocket equation, strategy selection

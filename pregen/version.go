/*

Package pregen contains constants which are pre-generated from ChangeLog.md as part of
the release process. Do not edit by hand.

*/
package pregen

const (
	// Version is auto-generated from ChangeLog.md
	Version = "v1.2.0"
	// ReleaseDate is also auto-generated from ChangeLog.md
	ReleaseDate = "2026-07-03"
)

/*
Package log provides global output control across the whole application. Logging comes in
four levels: Silent, Major, Minor and Debug with each level more detailed than the
previous. Levels are inclusive, so, e.g., if MinorLevel is set that implies MajorLevel
logging.

Output which must always reach the user, such as the final resolution results, is written
directly to log.Out() rather than via a level function. Tests rely on log.SetOut() to
capture all of that output in one place.
*/
package log

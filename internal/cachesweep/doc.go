// Package cachesweep provides cache directory analysis and cleanup.
//
// It measures directory sizes, reads last-access times, renders an annotated
// tree report for each directory, collects entries that have not been
// accessed within the configured number of months, and drives an interactive
// workflow that deletes all, some, or none of them.
package cachesweep

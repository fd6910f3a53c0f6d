// Package analytics derives series and summaries from a snapshot of workout
// sessions. Every function is pure: no I/O, no clock reads, no errors. Days
// are always bucketed through the domain.Calendar passed in.
package analytics

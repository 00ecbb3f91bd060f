// Package magetasks provides organized build tasks for the asciitable project.
//
// The Magefile delegates to this package so the tasks can be unit tested.
// Every task records a Step, and PrintSummary renders the steps as an
// asciitable table.
package magetasks

// Package startscript renders the aggregate POSIX start script that launches
// every emitted unit from its deployed location.
//
// Lines follow emission order except for the db role, which starts first and
// is followed by a settle delay so game processes find it listening.
package startscript

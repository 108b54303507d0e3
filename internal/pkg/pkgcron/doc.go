// Package pkgcron runs jobs on a cron schedule inside the process.
//
// Jobs are dispatched through a pkgroutine.Manager so a slow run never piles up
// behind itself: when the manager has no free slot the tick is skipped. Each run
// gets its own correlation ID so its log lines can be told apart from HTTP
// triggered runs.
package pkgcron

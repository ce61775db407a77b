// Package grades keeps an in-memory ledger of (subject, activity, score)
// entries and derives averages, medians and grouped reports from it. The
// ledger lives for the lifetime of the process and is never persisted.
package grades

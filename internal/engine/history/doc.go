// Package history provides grouped undo for buffer edits.
//
// Edits are recorded as Operations. A Transaction groups every operation
// recorded while it is open into one undo entry; nested Begin calls join
// the outer transaction rather than opening their own, so a macro run
// that invokes another macro still undoes as a single unit. Transactions
// must be closed on every exit path; Complete and Cancel are idempotent.
package history

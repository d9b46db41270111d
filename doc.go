// Package secondbrain implements the data-management core of a single-user
// productivity application: notes, calendar events, habits, a lightweight
// CRM (projects, tasks, contacts) and a personal finance wallet.
//
// All persistent state lives in a Store, a key-partitioned set of typed
// record collections with full-replace write semantics. Repositories are
// methods on Store grouped by entity family; they enforce the cross-entity
// invariants (project deletion cascades to tasks, transactions mutate card
// balances reversibly, completion timestamps track completion state).
// Derived views (net worth history, habit streaks, CRM metrics, activity
// counts) are computed on every read from the stored facts, never cached.
//
// Execution is single-threaded and synchronous: every mutation runs to
// completion, writes the store, then notifies Bus subscribers so consumers
// can re-query derived state. Nothing in this package performs network I/O;
// the AI command bar lives in the assistant package and only ever hands the
// core already-resolved data.
package secondbrain

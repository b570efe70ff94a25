// Package history persists check runs to a local SQLite database.
//
// Each recorded run stores the checked directory, overall status, error
// count, and timing, plus one row per submission file with its status and
// error messages. The store is optional: the checker itself never touches
// it, and the CLI only records runs when a database path is configured.
package history

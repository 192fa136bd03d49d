// Package audit records which wallet entries the CLI touched.
//
// Every get, set and show run by the command line appends one line to a
// per-user log. Values are never written to it, only where the operation
// happened: wallet, folder, entry and field.
//
// # Log Format
//
// The log is stored as JSON Lines next to the config file:
//
//	~/.config/kwallet/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Application id used to open the wallet
//   - Operation name
//   - Wallet, folder, entry and field
//
// # Usage
//
//	audit.Log(audit.Entry{Operation: "set", Wallet: "kdewallet", Folder: "Passwords", Entry: "github"})
//
// # Failure Handling
//
// Logging is best-effort. A failure to write the log never fails the
// operation being logged.
//
// # Reading Logs
//
// ReadEntries parses the log for display. Malformed lines are skipped so a
// partial write does not hide the rest of the history.
package audit

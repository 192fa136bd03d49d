// Package workflows provides high-level orchestration for kwallet commands.
//
// Each workflow runs one complete exchange with the wallet daemon: connect,
// open the wallet, select the folder, perform the operation, close. The
// handle is released on every path, including errors.
//
// The cmd/ package stays a thin layer that parses flags, calls a workflow and
// formats the result.
//
// # Available Workflows
//
//   - Get: reads one field of an entry
//   - Set: writes one field of an entry, keeping the others
//   - Show: reads every field of an entry
//
// # Connecting
//
// Every workflow takes a Connection. When Connection.Service is nil the
// workflow dials the session bus with Connection.Bus and closes the bus
// connection when done; tests set Service to an in-memory mock.
//
// # Error Handling
//
// Workflows return the sentinel errors of internal/errors, wrapped with
// context. Use errors.Is() to check for specific conditions:
//
//	result, err := workflows.Get(ctx, opts)
//	if errors.Is(err, kerrors.ErrEntryNotFound) {
//	    // Show user-friendly message
//	}
package workflows

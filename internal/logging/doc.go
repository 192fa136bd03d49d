// Package logger provides leveled console logging for kwallet commands.
//
// Output is prefixed with a coloured tag and gated by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug messages, including the client's trace of
//     every daemon call
//
// Warnings and errors are always written to stderr.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose
//	Logger.Debugf()          // Shown with --debug
//	Logger.Warnf()           // Always shown
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
// Command groups build a logger in PersistentPreRun from their flags:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Reading entry %s", entry)
//
// Logger satisfies kwallet.Logger, so it can be passed to kwallet.WithLogger.
package logger

// Package utils provides terminal and stdin helpers for the kwallet command.
//
// # I/O Utilities
//
//   - ReadStdin: reads a piped value from standard input
//   - TrimValue: drops the trailing newline a pipe usually adds
//
// # Terminal Utilities
//
//   - IsTerminal: checks whether stdin is a terminal
//   - ReadSecret: prompts for a value without echo
//   - ReadSecretConfirmed: prompts twice and compares
package utils

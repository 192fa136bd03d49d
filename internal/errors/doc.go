// Package errors provides typed error values for the kwallet client.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. The public
// wiremap and kwallet packages re-export these values, so code outside this
// module never needs to import this package.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Connection errors: the session bus or the wallet is unreachable (ErrConnection, ErrOpenRefused)
//   - Lookup errors: the requested data does not exist (ErrEntryNotFound, ErrFieldNotFound)
//   - Codec errors: wire maps that cannot be built or parsed (ErrMalformedWireMap, ErrEncoding)
//   - Usage errors: calls made out of order (ErrInvalidState)
//
// # Usage
//
// Return errors from internal packages:
//
//	if !c.opened {
//	    return errors.ErrInvalidState
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("entry %q: %w", entry, errors.ErrEntryNotFound)
//
// Handle errors in the CLI layer:
//
//	value, err := workflows.Get(ctx, opts)
//	if errors.Is(err, kerrors.ErrEntryNotFound) {
//	    // Show user-friendly message
//	}
package errors

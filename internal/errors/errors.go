package errors

import "errors"

// Connection errors indicate the daemon could not be reached or refused a handle.
var (
	// ErrConnection indicates the message-bus session could not be established.
	ErrConnection = errors.New("cannot connect to the wallet service")

	// ErrOpenRefused indicates the daemon answered but would not open the wallet.
	ErrOpenRefused = errors.New("wallet service refused to open the wallet")
)

// Lookup errors indicate the requested data does not exist.
var (
	// ErrEntryNotFound indicates the entry has no map in the active folder.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrFieldNotFound indicates the entry exists but lacks the requested field.
	ErrFieldNotFound = errors.New("field not found in entry")

	// ErrFolderCreate indicates the daemon did not create the requested folder.
	ErrFolderCreate = errors.New("wallet service could not create folder")
)

// Codec errors indicate a wire map could not be produced or parsed.
var (
	// ErrMalformedWireMap indicates bytes that do not follow the wire map framing.
	ErrMalformedWireMap = errors.New("malformed wire map")

	// ErrEncoding indicates text that cannot be represented as UTF-16.
	ErrEncoding = errors.New("text is not representable in UTF-16")
)

// Usage errors indicate the client was driven out of order.
var (
	// ErrInvalidState indicates an operation was called outside its required sequence.
	ErrInvalidState = errors.New("invalid client state")
)

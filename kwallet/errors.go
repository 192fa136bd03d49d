package kwallet

import (
	kerrors "github.com/kdewallet/kwallet-go/internal/errors"
	"github.com/kdewallet/kwallet-go/wiremap"
)

var (
	// ErrConnection is returned when the session bus cannot be reached.
	ErrConnection = kerrors.ErrConnection

	// ErrOpenRefused is returned when the daemon will not open the wallet.
	ErrOpenRefused = kerrors.ErrOpenRefused

	// ErrEntryNotFound is returned when an entry has no map in the active folder.
	ErrEntryNotFound = kerrors.ErrEntryNotFound

	// ErrFieldNotFound is returned when an entry exists but lacks the field.
	ErrFieldNotFound = kerrors.ErrFieldNotFound

	// ErrFolderCreate is returned when the daemon does not create a folder.
	ErrFolderCreate = kerrors.ErrFolderCreate

	// ErrInvalidState is returned for calls made out of order.
	ErrInvalidState = kerrors.ErrInvalidState

	// ErrMalformedWireMap is returned when the daemon sends an undecodable map.
	ErrMalformedWireMap = wiremap.ErrMalformedWireMap

	// ErrEncoding is returned when a field or value is not valid UTF-8.
	ErrEncoding = wiremap.ErrEncoding
)

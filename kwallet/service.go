package kwallet

import "context"

// Handle identifies an open wallet on the daemon side.
type Handle int32

// Service is the remote interface of the wallet daemon.
//
// Implementations report transport failures as errors and must not retry.
type Service interface {
	// LocalWallet returns the name of the daemon's default wallet.
	LocalWallet(ctx context.Context) (string, error)

	// Open acquires a handle for wallet on behalf of appID.
	Open(ctx context.Context, wallet, appID string) (Handle, error)

	// Close releases h. With force set the wallet closes even if other
	// applications still use it.
	Close(ctx context.Context, h Handle, force bool, appID string) error

	HasFolder(ctx context.Context, h Handle, folder, appID string) (bool, error)
	CreateFolder(ctx context.Context, h Handle, folder, appID string) error

	// ReadMap returns the serialized map stored under entry. found is false
	// when the entry does not exist; payload is nil in that case.
	ReadMap(ctx context.Context, h Handle, folder, entry, appID string) (payload []byte, found bool, err error)

	// WriteMap replaces the map stored under entry, creating it if needed.
	WriteMap(ctx context.Context, h Handle, folder, entry string, payload []byte, appID string) error
}

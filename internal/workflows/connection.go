package workflows

import (
	"context"
	"fmt"

	kerrors "github.com/kdewallet/kwallet-go/internal/errors"
	"github.com/kdewallet/kwallet-go/kwallet"
)

// Connection describes how a workflow reaches the wallet daemon.
type Connection struct {
	// AppID identifies the caller to the daemon.
	AppID string

	// Wallet is the wallet to open; empty means the daemon's local wallet.
	Wallet string

	// Folder is the folder entries are read from and written to.
	Folder string

	// Bus names the daemon on the session bus. Used when Service is nil.
	Bus kwallet.DBusConfig

	// Service overrides the D-Bus connection, mainly for tests.
	Service kwallet.Service

	// Logger receives the client's debug trace. Optional.
	Logger kwallet.Logger
}

// inFolder opens the wallet, selects conn.Folder and runs fn. The wallet is
// closed and any bus connection it dialed is released before returning.
func inFolder(ctx context.Context, conn Connection, fn func(*kwallet.Client) error) (string, error) {
	if conn.AppID == "" {
		return "", fmt.Errorf("application id is empty: %w", kerrors.ErrInvalidState)
	}
	if conn.Folder == "" {
		return "", fmt.Errorf("folder is empty: %w", kerrors.ErrInvalidState)
	}

	svc := conn.Service
	if svc == nil {
		bus, err := kwallet.DialSession(conn.Bus)
		if err != nil {
			return "", err
		}
		defer bus.Disconnect()
		svc = bus
	}

	client := kwallet.New(svc, conn.AppID,
		kwallet.WithWallet(conn.Wallet),
		kwallet.WithLogger(conn.Logger),
	)

	err := client.WithOpen(ctx, func(c *kwallet.Client) error {
		if err := c.SetFolder(ctx, conn.Folder); err != nil {
			return err
		}
		return fn(c)
	})
	return client.Wallet(), err
}

func fieldOrDefault(field string) string {
	if field == "" {
		return kwallet.DefaultField
	}
	return field
}

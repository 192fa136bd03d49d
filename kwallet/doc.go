// Package kwallet stores and retrieves secrets in the KDE wallet daemon.
//
// A Client talks to the daemon through a Service, the daemon's remote
// interface. DBusService implements Service over the D-Bus session bus; the
// mock subpackage provides an in-memory Service for tests.
//
// # Connecting
//
//	svc, err := kwallet.DialSession(kwallet.DBusConfig{})
//	if err != nil {
//	    return err // wraps ErrConnection
//	}
//	defer svc.Disconnect()
//
// An empty DBusConfig targets org.kde.kwalletd. Plasma 5 and 6 sessions
// register the daemon as BusNameKF5 and BusNameKF6 with matching object paths.
//
// # Lifecycle
//
// Calls on a Client must follow this order:
//
//	c := kwallet.New(svc, "my-app")
//	c.Open(ctx)                      // acquire a wallet handle
//	c.SetFolder(ctx, "Passwords")    // create the folder if missing
//	c.Set(ctx, "github", "s3cret")   // any number of Get/Set calls
//	c.Close(ctx)                     // release the handle
//
// WithOpen wraps Open and Close so the handle is released on every path:
//
//	err := c.WithOpen(ctx, func(c *kwallet.Client) error {
//	    if err := c.SetFolder(ctx, "Passwords"); err != nil {
//	        return err
//	    }
//	    return c.Set(ctx, "github", "s3cret")
//	})
//
// Calling Open on an open client, Close on a closed one, or Get/Set before
// Open and SetFolder fails with ErrInvalidState.
//
// # Records
//
// Every entry is a map entry holding a wiremap.Record. A plain password is a
// record with a single "password" field, which is what Get and Set use. GetField
// and SetField address other fields of the same entry.
//
// # Concurrency
//
// A Client holds a single handle and an active folder and does no locking.
// Callers sharing one across goroutines must serialize access themselves.
// SetField reads the whole record, changes one field and writes the whole
// record back; two writers updating different fields of one entry at the same
// time can lose an update.
package kwallet

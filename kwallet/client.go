package kwallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/kdewallet/kwallet-go/wiremap"
)

// DefaultField is the record field used by Get and Set.
const DefaultField = "password"

// Logger receives debug output from a Client.
type Logger interface {
	Debugf(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Option configures a Client.
type Option func(*Client)

// WithWallet selects a wallet by name instead of the daemon's local wallet.
func WithWallet(name string) Option {
	return func(c *Client) {
		c.wallet = name
	}
}

// WithLogger sends the client's debug output to l.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// Client reads and writes entries of one wallet through a Service.
// It is not safe for concurrent use.
type Client struct {
	svc    Service
	appID  string
	wallet string
	log    Logger

	handle Handle
	opened bool
	folder string
}

// New returns a closed client that identifies itself to the daemon as appID.
func New(svc Service, appID string, opts ...Option) *Client {
	c := &Client{
		svc:   svc,
		appID: appID,
		log:   nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wallet returns the wallet name. Before the first Open it is empty unless
// WithWallet was given.
func (c *Client) Wallet() string {
	return c.wallet
}

// Folder returns the active folder, or "" if none is selected.
func (c *Client) Folder() string {
	return c.folder
}

// Open acquires a handle for the client's wallet. Opening an open client
// fails with ErrInvalidState.
func (c *Client) Open(ctx context.Context) error {
	if c.opened {
		return fmt.Errorf("open: wallet %q already open: %w", c.wallet, ErrInvalidState)
	}

	if c.wallet == "" {
		name, err := c.svc.LocalWallet(ctx)
		if err != nil {
			return fmt.Errorf("resolving local wallet: %w", err)
		}
		c.log.Debugf("Resolved local wallet: %s", name)
		c.wallet = name
	}

	h, err := c.svc.Open(ctx, c.wallet, c.appID)
	if err != nil {
		return fmt.Errorf("opening wallet %q: %w", c.wallet, err)
	}
	c.log.Debugf("Opened wallet %s for %s (handle %d)", c.wallet, c.appID, h)

	c.handle = h
	c.opened = true
	return nil
}

// Close releases the handle. The client is closed afterwards even when the
// daemon reports an error.
func (c *Client) Close(ctx context.Context) error {
	if !c.opened {
		return fmt.Errorf("close: %w", ErrInvalidState)
	}

	h := c.handle
	c.handle = 0
	c.opened = false
	c.folder = ""

	if err := c.svc.Close(ctx, h, false, c.appID); err != nil {
		return fmt.Errorf("closing wallet %q: %w", c.wallet, err)
	}
	c.log.Debugf("Closed wallet %s (handle %d)", c.wallet, h)
	return nil
}

// WithOpen opens the client, runs fn and closes the client again, whatever
// fn returns. An error from fn takes precedence over one from Close.
func (c *Client) WithOpen(ctx context.Context, fn func(*Client) error) (err error) {
	if err := c.Open(ctx); err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(c)
}

// SetFolder creates folder if it does not exist and makes it the target of
// later entry operations.
func (c *Client) SetFolder(ctx context.Context, folder string) error {
	if !c.opened {
		return fmt.Errorf("set folder %q: wallet not open: %w", folder, ErrInvalidState)
	}
	if folder == "" {
		return fmt.Errorf("set folder: empty folder name: %w", ErrInvalidState)
	}

	ok, err := c.svc.HasFolder(ctx, c.handle, folder, c.appID)
	if err != nil {
		return fmt.Errorf("checking folder %q: %w", folder, err)
	}
	if !ok {
		c.log.Debugf("Creating folder %s in wallet %s", folder, c.wallet)
		if err := c.svc.CreateFolder(ctx, c.handle, folder, c.appID); err != nil {
			return fmt.Errorf("creating folder %q: %w", folder, err)
		}
	}

	c.folder = folder
	return nil
}

// Get returns the password stored in entry.
func (c *Client) Get(ctx context.Context, entry string) (string, error) {
	return c.GetField(ctx, entry, DefaultField)
}

// GetField returns one field of entry. It fails with ErrEntryNotFound when the
// entry does not exist and ErrFieldNotFound when it lacks the field.
func (c *Client) GetField(ctx context.Context, entry, field string) (string, error) {
	record, err := c.Record(ctx, entry)
	if err != nil {
		return "", err
	}

	value, ok := record[field]
	if !ok {
		return "", fmt.Errorf("entry %q field %q: %w", entry, field, ErrFieldNotFound)
	}
	return value, nil
}

// Record returns every field stored in entry.
func (c *Client) Record(ctx context.Context, entry string) (wiremap.Record, error) {
	if err := c.ready("read", entry); err != nil {
		return nil, err
	}

	payload, found, err := c.svc.ReadMap(ctx, c.handle, c.folder, entry, c.appID)
	if err != nil {
		return nil, fmt.Errorf("reading entry %q: %w", entry, err)
	}
	if !found {
		return nil, fmt.Errorf("entry %q in folder %q: %w", entry, c.folder, ErrEntryNotFound)
	}

	record, err := wiremap.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding entry %q: %w", entry, err)
	}
	c.log.Debugf("Read entry %s/%s with %d fields", c.folder, entry, len(record))
	return record, nil
}

// Set stores value as the password of entry.
func (c *Client) Set(ctx context.Context, entry, value string) error {
	return c.SetField(ctx, entry, DefaultField, value)
}

// SetField stores value under field in entry, keeping the entry's other
// fields. A missing entry is created.
func (c *Client) SetField(ctx context.Context, entry, field, value string) error {
	record, err := c.Record(ctx, entry)
	switch {
	case errors.Is(err, ErrEntryNotFound):
		c.log.Debugf("Entry %s/%s does not exist yet, creating it", c.folder, entry)
		record = wiremap.Record{}
	case err != nil:
		return err
	}

	record[field] = value

	payload, err := wiremap.Encode(record)
	if err != nil {
		return fmt.Errorf("encoding entry %q: %w", entry, err)
	}

	if err := c.svc.WriteMap(ctx, c.handle, c.folder, entry, payload, c.appID); err != nil {
		return fmt.Errorf("writing entry %q: %w", entry, err)
	}
	c.log.Debugf("Wrote entry %s/%s (%d bytes)", c.folder, entry, len(payload))
	return nil
}

func (c *Client) ready(op, entry string) error {
	if !c.opened {
		return fmt.Errorf("%s entry %q: wallet not open: %w", op, entry, ErrInvalidState)
	}
	if c.folder == "" {
		return fmt.Errorf("%s entry %q: no folder selected: %w", op, entry, ErrInvalidState)
	}
	return nil
}

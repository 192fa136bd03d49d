package workflows

import (
	"context"

	"github.com/kdewallet/kwallet-go/kwallet"
	"github.com/kdewallet/kwallet-go/wiremap"
)

// ShowOptions configures the show workflow.
type ShowOptions struct {
	Connection Connection

	// Entry is the entry to read.
	Entry string
}

// ShowResult contains every field of an entry.
type ShowResult struct {
	Wallet string
	Folder string
	Entry  string
	Record wiremap.Record
}

// Show reads every field of an entry.
//
// Returns ErrEntryNotFound if the entry does not exist.
func Show(ctx context.Context, opts ShowOptions) (*ShowResult, error) {
	result := &ShowResult{
		Folder: opts.Connection.Folder,
		Entry:  opts.Entry,
	}

	wallet, err := inFolder(ctx, opts.Connection, func(c *kwallet.Client) error {
		record, err := c.Record(ctx, result.Entry)
		result.Record = record
		return err
	})
	result.Wallet = wallet
	if err != nil {
		return nil, err
	}
	return result, nil
}

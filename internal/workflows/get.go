package workflows

import (
	"context"

	"github.com/kdewallet/kwallet-go/kwallet"
)

// GetOptions configures the get workflow.
type GetOptions struct {
	Connection Connection

	// Entry is the entry to read.
	Entry string

	// Field is the record field to return; empty means "password".
	Field string
}

// GetResult contains the outcome of a get operation.
type GetResult struct {
	Wallet string
	Folder string
	Entry  string
	Field  string
	Value  string
}

// Get reads one field of an entry.
//
// Returns ErrEntryNotFound if the entry does not exist.
// Returns ErrFieldNotFound if the entry lacks the field.
// Returns ErrMalformedWireMap if the stored map cannot be decoded.
func Get(ctx context.Context, opts GetOptions) (*GetResult, error) {
	result := &GetResult{
		Folder: opts.Connection.Folder,
		Entry:  opts.Entry,
		Field:  fieldOrDefault(opts.Field),
	}

	wallet, err := inFolder(ctx, opts.Connection, func(c *kwallet.Client) error {
		value, err := c.GetField(ctx, result.Entry, result.Field)
		result.Value = value
		return err
	})
	result.Wallet = wallet
	if err != nil {
		return nil, err
	}
	return result, nil
}

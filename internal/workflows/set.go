package workflows

import (
	"context"

	"github.com/kdewallet/kwallet-go/kwallet"
)

// SetOptions configures the set workflow.
type SetOptions struct {
	Connection Connection

	// Entry is the entry to write. It is created if missing.
	Entry string

	// Field is the record field to set; empty means "password".
	Field string

	// Value is stored under Field.
	Value string
}

// SetResult contains the outcome of a set operation.
type SetResult struct {
	Wallet string
	Folder string
	Entry  string
	Field  string
}

// Set writes one field of an entry and keeps its other fields.
//
// The update is a read followed by a write of the whole record; a concurrent
// writer to the same entry can be overwritten.
//
// Returns ErrEncoding if the field or value is not valid UTF-8.
// Returns ErrMalformedWireMap if the existing map cannot be decoded; nothing
// is written in that case.
func Set(ctx context.Context, opts SetOptions) (*SetResult, error) {
	result := &SetResult{
		Folder: opts.Connection.Folder,
		Entry:  opts.Entry,
		Field:  fieldOrDefault(opts.Field),
	}

	wallet, err := inFolder(ctx, opts.Connection, func(c *kwallet.Client) error {
		return c.SetField(ctx, result.Entry, result.Field, opts.Value)
	})
	result.Wallet = wallet
	if err != nil {
		return nil, err
	}
	return result, nil
}

/*
Package mock provides an in-memory implementation of kwallet.Service.

It keeps wallets, folders and entries in memory, hands out handles the way the
daemon does, records every call for assertions, and can be told to fail a
given operation.

# Basic Usage

	svc := mock.New(mock.Config{})
	c := kwallet.New(svc, "test-app")
	// drive c; inspect svc.Calls()

# Seeding

Seed pre-populates folders of the local wallet with raw payloads, which is
also how tests hand malformed bytes to a client:

	svc := mock.New(mock.Config{
		Seed: map[string]map[string][]byte{
			"Passwords": {"broken": {0, 0, 0, 9}},
		},
	})

# Failures

	svc.FailOn(mock.OpWriteMap, errors.New("disk full"))
*/
package mock

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kdewallet/kwallet-go/kwallet"
)

// Operation names, as used in Call.Op and FailOn.
const (
	OpLocalWallet  = "localWallet"
	OpOpen         = "open"
	OpClose        = "close"
	OpHasFolder    = "hasFolder"
	OpCreateFolder = "createFolder"
	OpReadMap      = "readMap"
	OpWriteMap     = "writeMap"
)

// DefaultLocalWallet is the wallet name reported when Config.LocalWallet is empty.
const DefaultLocalWallet = "kdewallet"

// ErrUnknownHandle is returned for handles that are not open.
var ErrUnknownHandle = errors.New("mock: unknown wallet handle")

// Config configures the mock service.
type Config struct {
	// LocalWallet is the name returned by LocalWallet.
	LocalWallet string

	// Seed pre-populates the local wallet: folder -> entry -> payload.
	Seed map[string]map[string][]byte
}

// Call records one operation performed against the mock.
type Call struct {
	Op      string
	Handle  kwallet.Handle
	Wallet  string
	Folder  string
	Entry   string
	AppID   string
	Force   bool
	Payload []byte
}

type folder map[string][]byte

// Service implements kwallet.Service in memory. It is safe for concurrent use.
type Service struct {
	mu          sync.Mutex
	localWallet string
	wallets     map[string]walletFolders
	handles     map[kwallet.Handle]string
	nextHandle  kwallet.Handle
	failures    map[string]error
	calls       []Call
}

var _ kwallet.Service = (*Service)(nil)

// New creates a mock service.
func New(cfg Config) *Service {
	local := cfg.LocalWallet
	if local == "" {
		local = DefaultLocalWallet
	}

	s := &Service{
		localWallet: local,
		wallets:     make(map[string]walletFolders),
		handles:     make(map[kwallet.Handle]string),
		failures:    make(map[string]error),
	}
	for name, entries := range cfg.Seed {
		f := s.folders(local).ensure(name)
		for entry, payload := range entries {
			f[entry] = append([]byte(nil), payload...)
		}
	}
	return s
}

// FailOn makes every later call of op return err. A nil err clears it.
func (s *Service) FailOn(op string, err error) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
	} else {
		s.failures[op] = err
	}
	return s
}

// Calls returns a copy of the recorded calls.
func (s *Service) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Ops returns the names of the recorded calls in order.
func (s *Service) Ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops := make([]string, len(s.calls))
	for i, c := range s.calls {
		ops[i] = c.Op
	}
	return ops
}

// OpenHandles returns the number of handles not yet closed.
func (s *Service) OpenHandles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Payload returns the raw bytes stored for an entry.
func (s *Service) Payload(wallet, folderName, entry string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.wallets[wallet][folderName]
	if !ok {
		return nil, false
	}
	p, ok := f[entry]
	return append([]byte(nil), p...), ok
}

// HasFolderNamed reports whether wallet contains folderName.
func (s *Service) HasFolderNamed(wallet, folderName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.wallets[wallet][folderName]
	return ok
}

// LocalWallet implements kwallet.Service.
func (s *Service) LocalWallet(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, Call{Op: OpLocalWallet}); err != nil {
		return "", err
	}
	return s.localWallet, nil
}

// Open implements kwallet.Service.
func (s *Service) Open(ctx context.Context, wallet, appID string) (kwallet.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, Call{Op: OpOpen, Wallet: wallet, AppID: appID}); err != nil {
		return 0, err
	}
	s.folders(wallet)
	s.nextHandle++
	s.handles[s.nextHandle] = wallet
	return s.nextHandle, nil
}

// Close implements kwallet.Service.
func (s *Service) Close(ctx context.Context, h kwallet.Handle, force bool, appID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, Call{Op: OpClose, Handle: h, Force: force, AppID: appID}); err != nil {
		return err
	}
	if _, err := s.wallet(h); err != nil {
		return err
	}
	delete(s.handles, h)
	return nil
}

// HasFolder implements kwallet.Service.
func (s *Service) HasFolder(ctx context.Context, h kwallet.Handle, folderName, appID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, Call{Op: OpHasFolder, Handle: h, Folder: folderName, AppID: appID}); err != nil {
		return false, err
	}
	w, err := s.wallet(h)
	if err != nil {
		return false, err
	}
	_, ok := w[folderName]
	return ok, nil
}

// CreateFolder implements kwallet.Service.
func (s *Service) CreateFolder(ctx context.Context, h kwallet.Handle, folderName, appID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, Call{Op: OpCreateFolder, Handle: h, Folder: folderName, AppID: appID}); err != nil {
		return err
	}
	w, err := s.wallet(h)
	if err != nil {
		return err
	}
	w.ensure(folderName)
	return nil
}

// ReadMap implements kwallet.Service.
func (s *Service) ReadMap(ctx context.Context, h kwallet.Handle, folderName, entry, appID string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record(ctx, Call{Op: OpReadMap, Handle: h, Folder: folderName, Entry: entry, AppID: appID}); err != nil {
		return nil, false, err
	}
	w, err := s.wallet(h)
	if err != nil {
		return nil, false, err
	}
	payload, ok := w[folderName][entry]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

// WriteMap implements kwallet.Service.
func (s *Service) WriteMap(ctx context.Context, h kwallet.Handle, folderName, entry string, payload []byte, appID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := append([]byte(nil), payload...)
	if err := s.record(ctx, Call{Op: OpWriteMap, Handle: h, Folder: folderName, Entry: entry, AppID: appID, Payload: stored}); err != nil {
		return err
	}
	w, err := s.wallet(h)
	if err != nil {
		return err
	}
	w.ensure(folderName)[entry] = stored
	return nil
}

// record logs c and returns the configured failure for its operation, or the
// context error if ctx is done. Callers hold s.mu.
func (s *Service) record(ctx context.Context, c Call) error {
	s.calls = append(s.calls, c)
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.failures[c.Op]
}

func (s *Service) wallet(h kwallet.Handle) (walletFolders, error) {
	name, ok := s.handles[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return s.folders(name), nil
}

type walletFolders map[string]folder

func (s *Service) folders(wallet string) walletFolders {
	w, ok := s.wallets[wallet]
	if !ok {
		w = make(walletFolders)
		s.wallets[wallet] = w
	}
	return w
}

func (w walletFolders) ensure(name string) folder {
	f, ok := w[name]
	if !ok {
		f = make(folder)
		w[name] = f
	}
	return f
}

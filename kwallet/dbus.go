package kwallet

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Well-known bus names and object paths of the wallet daemon. KDE 4 used the
// unversioned names; Plasma 5 and 6 register their own.
const (
	DefaultBusName    = "org.kde.kwalletd"
	DefaultObjectPath = "/modules/kwalletd"
	DefaultInterface  = "org.kde.KWallet"

	BusNameKF5    = "org.kde.kwalletd5"
	ObjectPathKF5 = "/modules/kwalletd5"
	BusNameKF6    = "org.kde.kwalletd6"
	ObjectPathKF6 = "/modules/kwalletd6"
)

// DBusConfig names the daemon on the session bus. Zero fields take the
// Default* values.
type DBusConfig struct {
	BusName    string
	ObjectPath string
	Interface  string
}

func (cfg DBusConfig) withDefaults() DBusConfig {
	if cfg.BusName == "" {
		cfg.BusName = DefaultBusName
	}
	if cfg.ObjectPath == "" {
		cfg.ObjectPath = DefaultObjectPath
	}
	if cfg.Interface == "" {
		cfg.Interface = DefaultInterface
	}
	return cfg
}

var _ Service = (*DBusService)(nil)

// DBusService is a Service backed by the wallet daemon on D-Bus.
type DBusService struct {
	conn  *dbus.Conn
	obj   dbus.BusObject
	iface string
}

// DialSession connects to the session bus and binds to the daemon described by
// cfg. Connection failures wrap ErrConnection. The daemon itself is not
// contacted until the first call.
func DialSession(cfg DBusConfig) (*DBusService, error) {
	cfg = cfg.withDefaults()

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: session bus: %v", ErrConnection, err)
	}

	obj := conn.Object(cfg.BusName, dbus.ObjectPath(cfg.ObjectPath))
	return &DBusService{conn: conn, obj: obj, iface: cfg.Interface}, nil
}

// NewDBusService binds to an object obtained elsewhere. The caller keeps
// ownership of the underlying connection.
func NewDBusService(obj dbus.BusObject, iface string) *DBusService {
	if iface == "" {
		iface = DefaultInterface
	}
	return &DBusService{obj: obj, iface: iface}
}

// Disconnect closes the bus connection opened by DialSession. It does not
// close any wallet handle.
func (s *DBusService) Disconnect() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *DBusService) call(ctx context.Context, method string, args ...any) *dbus.Call {
	return s.obj.CallWithContext(ctx, s.iface+"."+method, 0, args...)
}

// LocalWallet implements Service.
func (s *DBusService) LocalWallet(ctx context.Context) (string, error) {
	var name string
	if err := s.call(ctx, "localWallet").Store(&name); err != nil {
		return "", fmt.Errorf("localWallet: %w", err)
	}
	return name, nil
}

// Open implements Service. The window id is always 0: no parent window.
func (s *DBusService) Open(ctx context.Context, wallet, appID string) (Handle, error) {
	var h int32
	if err := s.call(ctx, "open", wallet, int64(0), appID).Store(&h); err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	if h < 0 {
		return 0, fmt.Errorf("wallet %q (code %d): %w", wallet, h, ErrOpenRefused)
	}
	return Handle(h), nil
}

// Close implements Service.
func (s *DBusService) Close(ctx context.Context, h Handle, force bool, appID string) error {
	var rc int32
	if err := s.call(ctx, "close", int32(h), force, appID).Store(&rc); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if rc < 0 {
		return fmt.Errorf("close: handle %d: daemon returned %d", h, rc)
	}
	return nil
}

// HasFolder implements Service.
func (s *DBusService) HasFolder(ctx context.Context, h Handle, folder, appID string) (bool, error) {
	var ok bool
	if err := s.call(ctx, "hasFolder", int32(h), folder, appID).Store(&ok); err != nil {
		return false, fmt.Errorf("hasFolder: %w", err)
	}
	return ok, nil
}

// CreateFolder implements Service.
func (s *DBusService) CreateFolder(ctx context.Context, h Handle, folder, appID string) error {
	var ok bool
	if err := s.call(ctx, "createFolder", int32(h), folder, appID).Store(&ok); err != nil {
		return fmt.Errorf("createFolder: %w", err)
	}
	if !ok {
		return fmt.Errorf("folder %q: %w", folder, ErrFolderCreate)
	}
	return nil
}

// ReadMap implements Service. The daemon answers an empty byte array for a
// missing entry, and a stored map is never shorter than its count field.
func (s *DBusService) ReadMap(ctx context.Context, h Handle, folder, entry, appID string) ([]byte, bool, error) {
	var payload []byte
	if err := s.call(ctx, "readMap", int32(h), folder, entry, appID).Store(&payload); err != nil {
		return nil, false, fmt.Errorf("readMap: %w", err)
	}
	if len(payload) == 0 {
		return nil, false, nil
	}
	return payload, true, nil
}

// WriteMap implements Service.
func (s *DBusService) WriteMap(ctx context.Context, h Handle, folder, entry string, payload []byte, appID string) error {
	var rc int32
	if err := s.call(ctx, "writeMap", int32(h), folder, entry, payload, appID).Store(&rc); err != nil {
		return fmt.Errorf("writeMap: %w", err)
	}
	if rc != 0 {
		return fmt.Errorf("writeMap: entry %q: daemon returned %d", entry, rc)
	}
	return nil
}

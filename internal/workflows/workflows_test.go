package workflows

import (
	"context"
	"errors"
	"reflect"
	"testing"

	kerrors "github.com/kdewallet/kwallet-go/internal/errors"
	"github.com/kdewallet/kwallet-go/kwallet/mock"
	"github.com/kdewallet/kwallet-go/wiremap"
)

func testConnection(svc *mock.Service) Connection {
	return Connection{
		AppID:   "test_kwallet",
		Folder:  "test_folder",
		Service: svc,
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := mock.New(mock.Config{})

	_, err := Get(context.Background(), GetOptions{Connection: testConnection(svc), Entry: "test1"})
	if !errors.Is(err, kerrors.ErrEntryNotFound) {
		t.Fatalf("Expected ErrEntryNotFound, got: %v", err)
	}
	if svc.OpenHandles() != 0 {
		t.Errorf("Expected wallet to be closed after failure, got %d open handles", svc.OpenHandles())
	}
}

func TestSetThenGet(t *testing.T) {
	ctx := context.Background()
	svc := mock.New(mock.Config{})
	conn := testConnection(svc)

	setResult, err := Set(ctx, SetOptions{Connection: conn, Entry: "test2", Value: "test_value"})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if setResult.Field != "password" {
		t.Errorf("Expected default field %q, got %q", "password", setResult.Field)
	}
	if setResult.Wallet != mock.DefaultLocalWallet {
		t.Errorf("Expected wallet %q, got %q", mock.DefaultLocalWallet, setResult.Wallet)
	}

	getResult, err := Get(ctx, GetOptions{Connection: conn, Entry: "test2"})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if getResult.Value != "test_value" {
		t.Errorf("Expected %q, got %q", "test_value", getResult.Value)
	}
	if getResult.Folder != "test_folder" || getResult.Entry != "test2" {
		t.Errorf("Unexpected result: %+v", getResult)
	}
	if svc.OpenHandles() != 0 {
		t.Errorf("Expected no open handles, got %d", svc.OpenHandles())
	}
}

func TestSetFieldsThenShow(t *testing.T) {
	ctx := context.Background()
	svc := mock.New(mock.Config{})
	conn := testConnection(svc)

	if _, err := Set(ctx, SetOptions{Connection: conn, Entry: "e", Field: "password", Value: "v1"}); err != nil {
		t.Fatalf("Set password failed: %v", err)
	}
	if _, err := Set(ctx, SetOptions{Connection: conn, Entry: "e", Field: "note", Value: "v2"}); err != nil {
		t.Fatalf("Set note failed: %v", err)
	}

	result, err := Show(ctx, ShowOptions{Connection: conn, Entry: "e"})
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	want := wiremap.Record{"password": "v1", "note": "v2"}
	if !reflect.DeepEqual(result.Record, want) {
		t.Errorf("Expected %v, got %v", want, result.Record)
	}
}

func TestGet_MissingField(t *testing.T) {
	ctx := context.Background()
	svc := mock.New(mock.Config{})
	conn := testConnection(svc)

	if _, err := Set(ctx, SetOptions{Connection: conn, Entry: "e", Field: "user", Value: "alice"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	_, err := Get(ctx, GetOptions{Connection: conn, Entry: "e"})
	if !errors.Is(err, kerrors.ErrFieldNotFound) {
		t.Fatalf("Expected ErrFieldNotFound, got: %v", err)
	}
}

func TestExplicitWallet(t *testing.T) {
	ctx := context.Background()
	svc := mock.New(mock.Config{})
	conn := testConnection(svc)
	conn.Wallet = "work"

	result, err := Set(ctx, SetOptions{Connection: conn, Entry: "e", Value: "v"})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if result.Wallet != "work" {
		t.Errorf("Expected wallet %q, got %q", "work", result.Wallet)
	}
	if _, ok := svc.Payload("work", "test_folder", "e"); !ok {
		t.Errorf("Expected entry to be written to wallet %q", "work")
	}
}

func TestConnectionValidation(t *testing.T) {
	svc := mock.New(mock.Config{})

	tests := []struct {
		name string
		conn Connection
	}{
		{"missing app id", Connection{Folder: "f", Service: svc}},
		{"missing folder", Connection{AppID: "a", Service: svc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Get(context.Background(), GetOptions{Connection: tt.conn, Entry: "e"})
			if !errors.Is(err, kerrors.ErrInvalidState) {
				t.Fatalf("Expected ErrInvalidState, got: %v", err)
			}
		})
	}
	if len(svc.Calls()) != 0 {
		t.Errorf("Expected no remote calls, got %v", svc.Ops())
	}
}

func TestOpenFailureIsReported(t *testing.T) {
	svc := mock.New(mock.Config{}).FailOn(mock.OpOpen, kerrors.ErrOpenRefused)

	_, err := Show(context.Background(), ShowOptions{Connection: testConnection(svc), Entry: "e"})
	if !errors.Is(err, kerrors.ErrOpenRefused) {
		t.Fatalf("Expected ErrOpenRefused, got: %v", err)
	}
}

func TestFieldOrDefault(t *testing.T) {
	if got := fieldOrDefault(""); got != "password" {
		t.Errorf("Expected %q, got %q", "password", got)
	}
	if got := fieldOrDefault("note"); got != "note" {
		t.Errorf("Expected %q, got %q", "note", got)
	}
}

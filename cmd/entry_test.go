package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/kdewallet/kwallet-go/internal/configs"
	"github.com/kdewallet/kwallet-go/kwallet"
	"github.com/kdewallet/kwallet-go/kwallet/mock"
	"github.com/kdewallet/kwallet-go/wiremap"
)

func TestEntrySetThenGet(t *testing.T) {
	svc := setupEntryTest(t)

	output, err := runEntry(t, "set", "github", "hunter2")
	if err != nil {
		t.Fatalf("Set failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Stored password of entry 'github' in folder 'Passwords' of wallet 'kdewallet'") {
		t.Errorf("Expected success message, got: %s", output)
	}

	payload, ok := svc.Payload(mock.DefaultLocalWallet, configs.DefaultFolder, "github")
	if !ok {
		t.Fatalf("Expected entry to be written to the wallet")
	}
	record, err := wiremap.Decode(payload)
	if err != nil {
		t.Fatalf("Stored payload does not decode: %v", err)
	}
	if record["password"] != "hunter2" {
		t.Errorf("Expected stored password %q, got %q", "hunter2", record["password"])
	}

	output, err = runEntry(t, "get", "github")
	if err != nil {
		t.Fatalf("Get failed: %v\nOutput: %s", err, output)
	}
	if strings.TrimSpace(output) != "hunter2" {
		t.Errorf("Expected output %q, got %q", "hunter2", output)
	}
	if svc.OpenHandles() != 0 {
		t.Errorf("Expected every wallet handle to be closed, got %d open", svc.OpenHandles())
	}
}

func TestEntryGetMissing(t *testing.T) {
	setupEntryTest(t)

	output, err := runEntry(t, "get", "nothing")
	if !errors.Is(err, kwallet.ErrEntryNotFound) {
		t.Fatalf("Expected ErrEntryNotFound, got: %v", err)
	}
	if !IsReported(err) {
		t.Errorf("Expected error to be marked as reported")
	}
	if !strings.Contains(output, "Entry 'nothing' was not found in folder 'Passwords'") {
		t.Errorf("Expected not found message, got: %s", output)
	}
	if !strings.Contains(output, "kwallet entry set nothing") {
		t.Errorf("Expected hint to create the entry, got: %s", output)
	}
}

func TestEntryFields(t *testing.T) {
	setupEntryTest(t)

	if output, err := runEntry(t, "set", "github", "alice", "--field", "user"); err != nil {
		t.Fatalf("Set failed: %v\nOutput: %s", err, output)
	}

	output, err := runEntry(t, "get", "github", "--field", "user")
	if err != nil {
		t.Fatalf("Get failed: %v\nOutput: %s", err, output)
	}
	if strings.TrimSpace(output) != "alice" {
		t.Errorf("Expected %q, got %q", "alice", output)
	}

	output, err = runEntry(t, "get", "github")
	if !errors.Is(err, kwallet.ErrFieldNotFound) {
		t.Fatalf("Expected ErrFieldNotFound, got: %v", err)
	}
	if !strings.Contains(output, "has no field password") {
		t.Errorf("Expected missing field message, got: %s", output)
	}
}

func TestEntryShow(t *testing.T) {
	setupEntryTest(t)

	if _, err := runEntry(t, "set", "github", "hunter2"); err != nil {
		t.Fatalf("Set password failed: %v", err)
	}
	if _, err := runEntry(t, "set", "github", "alice", "--field", "user"); err != nil {
		t.Fatalf("Set user failed: %v", err)
	}

	t.Run("Masked", func(t *testing.T) {
		output, err := runEntry(t, "show", "github")
		if err != nil {
			t.Fatalf("Show failed: %v", err)
		}
		if strings.Contains(output, "hunter2") || strings.Contains(output, "alice") {
			t.Errorf("Expected values to be masked, got: %s", output)
		}
		if !strings.Contains(output, "password  ********") || !strings.Contains(output, "user      ********") {
			t.Errorf("Expected masked field list, got: %s", output)
		}
	})

	t.Run("Revealed", func(t *testing.T) {
		output, err := runEntry(t, "show", "github", "--reveal")
		if err != nil {
			t.Fatalf("Show failed: %v", err)
		}
		if !strings.Contains(output, "password  hunter2") || !strings.Contains(output, "user      alice") {
			t.Errorf("Expected revealed values, got: %s", output)
		}
	})
}

func TestEntryFolderAndWalletFlags(t *testing.T) {
	svc := setupEntryTest(t)

	output, err := runEntry(t, "set", "db", "s3cret", "--folder", "Work", "--wallet", "office", "--app-id", "deploy")
	if err != nil {
		t.Fatalf("Set failed: %v\nOutput: %s", err, output)
	}

	if !svc.HasFolderNamed("office", "Work") {
		t.Errorf("Expected folder Work to be created in wallet office")
	}
	if _, ok := svc.Payload("office", "Work", "db"); !ok {
		t.Errorf("Expected entry to be written to office/Work")
	}
	for _, call := range svc.Calls() {
		if call.Op != mock.OpLocalWallet && call.AppID != "deploy" {
			t.Errorf("Expected app id %q on %s, got %q", "deploy", call.Op, call.AppID)
		}
	}
}

func TestEntryUsesConfigFile(t *testing.T) {
	svc := setupEntryTest(t)

	config := configs.Defaults()
	config.Client.AppID = "from-config"
	config.Client.Wallet = "personal"
	config.Client.Folder = "Web"
	if err := configs.SaveConfig(config); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if output, err := runEntry(t, "set", "site", "pw"); err != nil {
		t.Fatalf("Set failed: %v\nOutput: %s", err, output)
	}

	if _, ok := svc.Payload("personal", "Web", "site"); !ok {
		t.Errorf("Expected entry in personal/Web")
	}
	calls := svc.Calls()
	if len(calls) == 0 || calls[0].Op != mock.OpOpen || calls[0].AppID != "from-config" {
		t.Errorf("Expected first call to open with the configured app id, got %+v", calls)
	}
}

func TestEntryOpenRefused(t *testing.T) {
	svc := setupEntryTest(t)
	svc.FailOn(mock.OpOpen, kwallet.ErrOpenRefused)

	output, err := runEntry(t, "show", "github")
	if !errors.Is(err, kwallet.ErrOpenRefused) {
		t.Fatalf("Expected ErrOpenRefused, got: %v", err)
	}
	if !strings.Contains(output, "refused to open the wallet") {
		t.Errorf("Expected refusal message, got: %s", output)
	}
}

func TestEntryMalformedStoredMap(t *testing.T) {
	setupTestEnvironment(t)
	svc := mock.New(mock.Config{
		Seed: map[string]map[string][]byte{
			configs.DefaultFolder: {"broken": {0, 0, 0, 1}},
		},
	})
	SetService(svc)

	output, err := runEntry(t, "set", "broken", "value")
	if !errors.Is(err, kwallet.ErrMalformedWireMap) {
		t.Fatalf("Expected ErrMalformedWireMap, got: %v", err)
	}
	if !strings.Contains(output, "not a readable map entry") {
		t.Errorf("Expected malformed entry message, got: %s", output)
	}
	for _, op := range svc.Ops() {
		if op == mock.OpWriteMap {
			t.Errorf("Expected no write after a failed read")
		}
	}
}

func TestEntryArgumentValidation(t *testing.T) {
	setupEntryTest(t)

	tests := []struct {
		name string
		args []string
	}{
		{"get without entry", []string{"get"}},
		{"get with extra argument", []string{"get", "a", "b"}},
		{"show without entry", []string{"show"}},
		{"set with too many arguments", []string{"set", "a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runEntry(t, tt.args...)
			if err == nil {
				t.Fatalf("Expected an argument error")
			}
			if IsReported(err) {
				t.Errorf("Expected argument error to be left for the caller to print")
			}
		})
	}
}

func TestEntryLog(t *testing.T) {
	setupEntryTest(t)

	output, err := runEntry(t, "log")
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if !strings.Contains(output, "No operations recorded yet") {
		t.Errorf("Expected empty log message, got: %s", output)
	}

	if _, err := runEntry(t, "set", "github", "hunter2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := runEntry(t, "get", "github"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, err := runEntry(t, "get", "missing"); err == nil {
		t.Fatalf("Expected get of a missing entry to fail")
	}

	output, err = runEntry(t, "log")
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 logged operations, got %d: %s", len(lines), output)
	}
	if !strings.Contains(lines[0], "set ") || !strings.Contains(lines[0], "'kdewallet/Passwords/github' password") {
		t.Errorf("Unexpected first line: %s", lines[0])
	}
	if strings.Contains(output, "hunter2") {
		t.Errorf("Expected values to stay out of the log, got: %s", output)
	}

	output, err = runEntry(t, "log", "-n", "1")
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if got := strings.Count(strings.TrimSpace(output), "\n"); got != 0 {
		t.Errorf("Expected a single line with -n 1, got: %s", output)
	}
}

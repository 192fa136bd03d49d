package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/kdewallet/kwallet-go/internal/configs"
	"github.com/kdewallet/kwallet-go/kwallet/mock"

	"github.com/fatih/color"
)

// setupTestEnvironment points the user config at a temporary directory,
// disables colour and resets command state. It returns the config directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	configDir := filepath.Join(t.TempDir(), "kwallet")

	originalSettings := configs.UserKwalletSettings
	originalNoColor := color.NoColor
	configs.UserKwalletSettings = &configs.UserSettings{UserConfigsPath: configDir}
	color.NoColor = true
	ResetEntryState()
	ResetConfigState()

	t.Cleanup(func() {
		configs.UserKwalletSettings = originalSettings
		color.NoColor = originalNoColor
		SetService(nil)
		ResetEntryState()
		ResetConfigState()
	})
	return configDir
}

// setupEntryTest prepares the environment and routes entry commands to an
// in-memory wallet service.
func setupEntryTest(t *testing.T) *mock.Service {
	t.Helper()
	setupTestEnvironment(t)
	svc := mock.New(mock.Config{})
	SetService(svc)
	return svc
}

// runEntry executes the entry command with args and captures its output.
func runEntry(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetEntryState()
	return captureOutput(func() error {
		EntryCmd.SetArgs(args)
		return EntryCmd.Execute()
	})
}

// runConfig executes the config command with args and captures its output.
func runConfig(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetConfigState()
	return captureOutput(func() error {
		ConfigCmd.SetArgs(args)
		return ConfigCmd.Execute()
	})
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

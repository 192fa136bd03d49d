package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadTOML(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "client.toml")

	original := ClientConfig{AppID: "app", Wallet: "δοκιμή", Folder: "Passwords"}
	if err := SaveTOML(testFile, original); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded := ClientConfig{}
	if err := LoadTOML(testFile, &loaded); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if loaded != original {
		t.Errorf("Expected %+v, got %+v", original, loaded)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "nonexistent.toml")

	if err := LoadTOML(testFile, &ClientConfig{}); err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestSaveTOMLCreatesDirectory(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "kwallet", "config.toml")

	if err := SaveTOML(testFile, Defaults()); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}
	if _, err := os.Stat(testFile); os.IsNotExist(err) {
		t.Fatal("File was not created")
	}
}

func TestSaveTOMLTruncatesExistingFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "client.toml")

	long := ClientConfig{AppID: "a-very-long-application-identifier", Folder: "Some Folder With A Long Name"}
	if err := SaveTOML(testFile, long); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}
	short := ClientConfig{AppID: "a"}
	if err := SaveTOML(testFile, short); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded := ClientConfig{}
	if err := LoadTOML(testFile, &loaded); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if loaded != short {
		t.Errorf("Expected %+v, got %+v", short, loaded)
	}
}

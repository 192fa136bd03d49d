package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/kdewallet/kwallet-go/internal/configs"
	"github.com/kdewallet/kwallet-go/internal/ui"
	"github.com/kdewallet/kwallet-go/internal/workflows"
	"github.com/kdewallet/kwallet-go/kwallet"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// serviceOverride replaces the session bus when set. Tests use an in-memory service.
var serviceOverride kwallet.Service

// SetService makes entry commands talk to svc instead of the session bus.
// Passing nil restores the default.
func SetService(svc kwallet.Service) {
	serviceOverride = svc
}

// reportedError marks an error whose message the command already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user by a command.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// entryConnection merges the config file with the entry command flags.
func entryConnection() (workflows.Connection, error) {
	Logger.Debugf("Loading config from %s", configs.ConfigPath())
	config, err := configs.LoadConfig()
	if err != nil {
		return workflows.Connection{}, err
	}

	conn := workflows.Connection{
		AppID:   config.Client.AppID,
		Wallet:  config.Client.Wallet,
		Folder:  config.Client.Folder,
		Bus:     config.BusConfig(),
		Service: serviceOverride,
		Logger:  Logger,
	}
	if entryAppID != "" {
		conn.AppID = entryAppID
	}
	if entryWallet != "" {
		conn.Wallet = entryWallet
	}
	if entryFolder != "" {
		conn.Folder = entryFolder
	}

	Logger.Debugf("Connection: app_id=%s, wallet=%q, folder=%s, service=%s", conn.AppID, conn.Wallet, conn.Folder, conn.Bus.BusName)
	return conn, nil
}

func fieldOrDefault(field string) string {
	if field == "" {
		return kwallet.DefaultField
	}
	return field
}

// failureMessage turns a workflow error into the message shown to the user.
func failureMessage(err error, folder, entry, field string) string {
	cross := color.RedString("✗")
	arrow := color.CyanString("→")

	switch {
	case errors.Is(err, kwallet.ErrEntryNotFound):
		return cross + " Entry " + ui.Entry.Sprint(entry) + " was not found in folder " + ui.Entry.Sprint(folder) + "\n" +
			arrow + " Run " + ui.Code.Sprint("kwallet entry set "+entry) + " to create it"
	case errors.Is(err, kwallet.ErrFieldNotFound):
		return cross + " Entry " + ui.Entry.Sprint(entry) + " has no field " + ui.Field.Sprint(field) + "\n" +
			arrow + " Run " + ui.Code.Sprint("kwallet entry show "+entry) + " to list its fields"
	case errors.Is(err, kwallet.ErrConnection):
		return cross + " Could not connect to the session bus\n" +
			arrow + " Check that a desktop session is running and " + ui.Code.Sprint("DBUS_SESSION_BUS_ADDRESS") + " is set"
	case errors.Is(err, kwallet.ErrOpenRefused):
		return cross + " The wallet daemon refused to open the wallet\n" +
			arrow + " Unlock the wallet or check the " + ui.Code.Sprint("--wallet") + " name"
	case errors.Is(err, kwallet.ErrMalformedWireMap):
		return cross + " Entry " + ui.Entry.Sprint(entry) + " is not a readable map entry\n" +
			color.RedString("Error: ") + err.Error()
	case errors.Is(err, kwallet.ErrEncoding):
		return cross + " Field names and values must be valid UTF-8"
	case errors.Is(err, kwallet.ErrInvalidState):
		return cross + " Invalid configuration\n" +
			color.RedString("Error: ") + err.Error() + "\n" +
			arrow + " Run " + ui.Code.Sprint("kwallet config show") + " to check your settings"
	default:
		return cross + " Wallet operation failed\n" +
			color.RedString("Error: ") + err.Error()
	}
}

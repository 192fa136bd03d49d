// Package configs manages the kwallet command's configuration file.
//
// Configuration is stored in TOML format at:
//
//	$XDG_CONFIG_HOME/kwallet/config.toml   (usually ~/.config/kwallet/config.toml)
//
// # Contents
//
// The [client] table holds the defaults used by entry commands:
//   - app_id: application identifier presented to the wallet daemon
//   - wallet: wallet name, empty for the daemon's local wallet
//   - folder: folder used when --folder is not given
//
// The [dbus] table names the daemon on the session bus (service, path,
// interface). Plasma 5 and 6 sessions register kwalletd5 and kwalletd6.
//
// A missing file yields Defaults(). Fields left empty in the file fall back to
// their defaults as well, so a file may set only what it changes.
//
// # Settings
//
// UserKwalletSettings is initialised at startup with the config directory.
// Tests point it at a temporary directory.
//
// The kwallet library packages never read this file; it only feeds the CLI.
package configs

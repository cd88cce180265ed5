// Package vscode drives the VS Code command-line interface: it locates the
// `code` executable, reads the installed-extensions list and installs
// extensions that are missing.
package vscode

import "time"

// KanbnBoardsExtensionID is the VS Code Kanbn Boards extension.
const KanbnBoardsExtensionID = "samgiz.vscode-kanbn-boards"

// Default bounds for the two CLI invocations.
const (
	DefaultListTimeout    = 30 * time.Second
	DefaultInstallTimeout = 120 * time.Second
)

// MarketplaceURL returns the marketplace page for an extension ID.
func MarketplaceURL(extensionID string) string {
	return "https://marketplace.visualstudio.com/items?itemName=" + extensionID
}

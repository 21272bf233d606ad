// Package cli provides the interactive Saudalink command-line client.
//
// It wires configuration, local storage, the marketplace API client, and an
// interactive REPL. Typical flow: restore the stored session, start the REPL,
// and execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout / whoami
//   - Browse categories, products, and tenders; publish your own
//   - Prices converted to a chosen display currency, with graceful fallback
//     to the original currency when rates are unavailable
//   - One-off currency conversion via the convert command
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

// Package cli provides the interactive checkmygrade command-line client.
//
// It wires configuration, the record stores, the credential store and the
// grade ledger into a REPL whose commands depend on the role of the logged-in
// user. Typical flow: make sure the stores and an administrator exist, prompt
// for credentials, then execute user commands until exit.
//
// Every privileged command re-validates the session token, so a session that
// outlives its TTL is logged out on the next command.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, NewApp and runREPL for details.
package cli

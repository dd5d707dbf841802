// Package cli provides the interactive Zenfit command-line client.
//
// It wires configuration, the session store, and the API client into an
// interactive REPL. Typical flow: restore the persisted session, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout / Status
//   - Workouts: list, show, add, delete
//   - Meals: list (optionally by date), show, add, delete
//   - Daily nutrition summary and a combined dashboard view
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Commands that operate on personal data are gated by the session's access
// decision and refused with a hint while logged out.
package cli

// Package cli provides the interactive MentorHub command-line portal.
//
// It wires configuration, local storage, the application/auth/notification
// services, and an interactive REPL shared by both roles. Typical flow:
// sign in as applicant or admin, then run role-specific commands while a
// background watcher refreshes status notifications.
//
// Key features:
//   - Applicant: submit applications, view the dashboard, edit the profile
//   - Admin: review applications, approve/reject, attach notes
//   - One-shot status-change notifications on a fixed polling interval
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartRefreshWatcher, and runREPL for details.
package cli

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	applicantSignedIn() bool
	adminSignedIn() bool
	ApplicantLogin(ctx context.Context) error
	AdminLogin(ctx context.Context) error
	Submit(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Approve(ctx context.Context) error
	Reject(ctx context.Context) error
	Note(ctx context.Context) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
}

func printHelp(a execIface) {
	switch {
	case a.applicantSignedIn():
		printlnFn("Available commands: submit, dashboard, profile, logout, exit")
	case a.adminSignedIn():
		printlnFn("Available commands: dashboard, approve, reject, note, profile, logout, exit")
	default:
		printlnFn("Available commands: applicant, admin, help, exit")
	}
}

// runREPL starts a simple read-eval-print loop for the MentorHub portal.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current identity (from statusFn) and accepts:
//
//	Signed out:
//	  - help           — show available commands
//	  - applicant      — sign in as applicant (name + email)
//	  - admin          — sign in as admin (username + password)
//	  - exit | quit    — leave the program
//
//	Applicant:
//	  - submit         — submit a new application
//	  - dashboard      — show summary and application cards
//	  - profile        — view/update name and email
//	  - logout, exit
//
//	Admin:
//	  - dashboard      — show all applications
//	  - approve        — approve an application (interactive id prompt)
//	  - reject         — reject an application
//	  - note           — set an admin note
//	  - profile        — view/update username and email
//	  - logout, exit
func runREPL(ctx context.Context, scanner *bufio.Scanner, a execIface, statusFn func() string) {
	for {
		fmt.Printf("mentorhub %s> ", statusFn())
		if !scanner.Scan() {
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error

		switch cmd := parts[0]; cmd {
		case "help":
			printHelp(a)
		case "applicant":
			err = a.ApplicantLogin(ctx)
		case "admin":
			err = a.AdminLogin(ctx)
		case "submit":
			err = a.Submit(ctx)
		case "dashboard":
			err = a.Dashboard(ctx)
		case "approve":
			err = a.Approve(ctx)
		case "reject":
			err = a.Reject(ctx)
		case "note":
			err = a.Note(ctx)
		case "profile":
			err = a.Profile(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(err.Error())
		}
	}
}

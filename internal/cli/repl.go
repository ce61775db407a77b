package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
)

// command is one role-gated REPL entry.
type command struct {
	name  string
	usage string
	help  string
	roles []models.Role
	run   func(ctx context.Context, args []string) error
}

func (c command) allows(r models.Role) bool {
	return slices.Contains(c.roles, r)
}

// execIface defines the minimal surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	// currentRole re-validates the session; false means nobody is logged in.
	currentRole(ctx context.Context) (models.Role, bool)
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	lookup(name string) (command, bool)
	available(role models.Role) []command
}

// runREPL starts the read-eval-print loop.
//
// It prints the prompt "cmg <status>> ", reads one line from in, takes the
// first token as the command and passes the rest as arguments. Commands
// outside the current role are refused. The loop exits on EOF or when the
// user types "exit" or "quit".
//
//	Always available:
//	  - help           show available commands
//	  - login          authenticate
//	  - logout         end the session
//	  - exit | quit    leave the program
//
// Everything else comes from the role's command table. Errors returned by
// commands are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "cmg %s> ", statusFn())
		line, err := in.ReadString('\n')
		parts := strings.Fields(line)

		if len(parts) > 0 {
			name, args := strings.ToLower(parts[0]), parts[1:]
			if name == "exit" || name == "quit" {
				fmt.Fprintln(out, "Bye!")
				return
			}
			dispatch(ctx, a, name, args, out)
		}

		if err != nil {
			fmt.Fprintln(out)
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, name string, args []string, out io.Writer) {
	switch name {
	case "help":
		printHelp(ctx, a, out)

	case "login":
		if _, ok := a.currentRole(ctx); ok {
			fmt.Fprintln(out, "Already logged in, use logout first")
			return
		}
		reportErr(out, a.Login(ctx))

	case "logout":
		if _, ok := a.currentRole(ctx); !ok {
			fmt.Fprintln(out, "Not logged in")
			return
		}
		reportErr(out, a.Logout(ctx))

	default:
		cmd, ok := a.lookup(name)
		if !ok {
			fmt.Fprintln(out, "Unknown command:", name)
			return
		}
		role, ok := a.currentRole(ctx)
		if !ok {
			fmt.Fprintln(out, "Please log in first")
			return
		}
		if !cmd.allows(role) {
			reportErr(out, fmt.Errorf("%w: %s", common.ErrorForbidden, name))
			return
		}
		reportErr(out, cmd.run(ctx, args))
	}
}

func printHelp(ctx context.Context, a execIface, out io.Writer) {
	role, ok := a.currentRole(ctx)
	if !ok {
		fmt.Fprintln(out, "Available commands: login, help, exit")
		return
	}
	fmt.Fprintln(out, "Available commands:")
	for _, c := range a.available(role) {
		fmt.Fprintf(out, "  %-32s %s\n", strings.TrimSpace(c.name+" "+c.usage), c.help)
	}
	fmt.Fprintf(out, "  %-32s %s\n", "logout", "end the session")
	fmt.Fprintf(out, "  %-32s %s\n", "exit", "leave the program")
}

// reportErr prints err in user terms. Authentication failures never say
// which part of the credentials was wrong.
func reportErr(out io.Writer, err error) {
	if err == nil {
		return
	}
	var pe *common.PartialInsertError
	switch {
	case errors.Is(err, common.ErrorAuthFailure):
		failure(out, "Invalid credentials")
	case errors.As(err, &pe):
		failure(out, fmt.Sprintf("%s %s was stored but its login was not created: %v", pe.Entity, pe.Key, pe.Err))
	case errors.Is(err, io.EOF):
		failure(out, "Input ended")
	default:
		failure(out, "Error: "+err.Error())
	}
}

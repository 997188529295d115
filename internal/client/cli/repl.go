package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a lightweight
// stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Open(ctx context.Context, path string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Commands:
//
//	help            - show available commands
//	open <path>     - navigate to a route (e.g. open /flights)
//	login           - authenticate
//	register        - create an account
//	whoami          - show the current identity
//	logout          - sign out and forget the remembered credential
//	exit | quit     - leave the program
//
// Handler errors are reported inline; the loop itself never aborts on them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sky %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: open <path>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: open <path>, login, register, exit")
			}
		case "open":
			if len(parts) < 2 {
				printlnFn("usage: open <path>")
				continue
			}
			err = a.Open(ctx, parts[1])
		case "login":
			err = a.Login(ctx)
		case "register":
			err = a.Register(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn(fmt.Sprintf("unknown command: %s", parts[0]))
		}

		if err != nil {
			printlnFn(fmt.Sprintf("error: %v", err))
		}
	}
}

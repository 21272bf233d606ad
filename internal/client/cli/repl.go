package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Categories(ctx context.Context) error
	Products(ctx context.Context, args []string) error
	MyProducts(ctx context.Context) error
	AddProduct(ctx context.Context) error
	Tenders(ctx context.Context) error
	MyTenders(ctx context.Context) error
	AddTender(ctx context.Context) error
	Convert(ctx context.Context, args []string) error
	SetCurrency(args []string) error
}

// runREPL starts a simple read–eval–print loop for the Saudalink CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                       — show available commands
//	  - categories                 — list catalog categories
//	  - (p)roducts [currency] [search] — browse products, optionally in a
//	    one-off display currency and/or filtered by a search query
//	  - tenders                    — browse open tenders
//	  - convert <amount> <from> <to> — one-off currency conversion
//	  - currency <code>            — switch the display currency
//	  - exit | quit                — leave the program
//
//	Not logged in:
//	  - register                   — create an account
//	  - login                      — authenticate
//
//	Logged in:
//	  - whoami                     — show the current profile
//	  - myproducts                 — list your published products
//	  - addproduct                 — publish a product
//	  - mytenders                  — list your published tenders
//	  - addtender                  — publish a tender
//	  - logout                     — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("saudalink %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Browse: categories, (p)roducts [currency] [search], tenders, convert <amount> <from> <to>, currency <code>")
			if a.isLoggedIn() {
				printlnFn("Account: whoami, myproducts, addproduct, mytenders, addtender, logout, exit")
			} else {
				printlnFn("Account: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "p", "products":
			_ = a.Products(ctx, args)

		case "myproducts":
			_ = a.MyProducts(ctx)

		case "addproduct":
			_ = a.AddProduct(ctx)

		case "tenders":
			_ = a.Tenders(ctx)

		case "mytenders":
			_ = a.MyTenders(ctx)

		case "addtender":
			_ = a.AddTender(ctx)

		case "convert":
			_ = a.Convert(ctx, args)

		case "currency":
			_ = a.SetCurrency(args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

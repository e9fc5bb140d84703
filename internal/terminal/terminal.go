package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	service "github.com/aaravmahajanofficial/cellsync-pos/internal/services"
)

const defaultPrompt = "> "

// Services is everything the terminal can drive. Cart, Checkout and Catalog are
// required; the back-office services may be nil, which disables their commands.
type Services struct {
	Auth          *service.AuthService
	Catalog       service.CatalogService
	Cart          service.CartService
	Checkout      service.CheckoutService
	Inventory     service.InventoryService
	ServiceOrders service.ServiceOrderService
	Customers     service.CustomerService
	Finance       service.FinanceService
	Dashboard     service.DashboardService
}

type Options struct {
	StoreName      string
	CurrencySymbol string
	Prompt         string
}

type command struct {
	usage   string
	summary string
	minArgs int
	run     func(ctx context.Context, args []string) error
}

// Terminal is the line-oriented front-end: every input line is one user event,
// handled to completion before the next one is read.
type Terminal struct {
	svc      Services
	out      io.Writer
	symbol   string
	store    string
	prompt   string
	commands map[string]*command
	order    []string
}

func New(svc Services, out io.Writer, opts Options) *Terminal {
	t := &Terminal{
		svc:    svc,
		out:    out,
		symbol: opts.CurrencySymbol,
		store:  opts.StoreName,
		prompt: opts.Prompt,

		commands: make(map[string]*command),
	}

	if t.prompt == "" {
		t.prompt = defaultPrompt
	}

	t.register()

	return t
}

func (t *Terminal) handle(name, usage, summary string, minArgs int, run func(ctx context.Context, args []string) error) {
	t.commands[name] = &command{usage: usage, summary: summary, minArgs: minArgs, run: run}
	t.order = append(t.order, name)
}

// Run reads commands from in until quit, end of input or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context, in io.Reader) error {
	t.greet(ctx)

	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(t.out, t.prompt)

		if !scanner.Scan() {
			fmt.Fprintln(t.out)
			return scanner.Err()
		}

		quit, err := t.Execute(ctx, scanner.Text())
		if err != nil {
			t.printError(err)
		}

		if quit {
			return nil
		}
	}
}

// Execute runs a single command line. It reports whether the user asked to quit.
func (t *Terminal) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		t.printHelp()
		return false, nil
	}

	cmd, ok := t.commands[name]
	if !ok {
		return false, appErrors.BadRequestError(fmt.Sprintf("Unknown command %q, type help for the list", name))
	}

	if len(args) < cmd.minArgs {
		return false, appErrors.ValidationError("Usage: " + cmd.usage)
	}

	slog.Debug("Terminal command", slog.String("command", name), slog.Int("args", len(args)))

	return false, cmd.run(ctx, args)
}

func (t *Terminal) greet(ctx context.Context) {
	name := t.store
	if name == "" {
		name = "CellSync"
	}

	fmt.Fprintf(t.out, "%s POS. Type help for the list of commands.\n", name)

	if t.svc.Auth == nil {
		return
	}

	if user, err := t.svc.Auth.CurrentUser(ctx); err == nil {
		fmt.Fprintf(t.out, "Logged in as %s.\n", user)
	} else {
		fmt.Fprintln(t.out, "Not logged in. Use: login <email> <password>")
	}
}

func (t *Terminal) printHelp() {
	fmt.Fprintln(t.out, "Commands:")

	for _, name := range t.order {
		cmd := t.commands[name]
		fmt.Fprintf(t.out, "  %-34s %s\n", cmd.usage, cmd.summary)
	}

	fmt.Fprintf(t.out, "  %-34s %s\n", "help", "show this list")
	fmt.Fprintf(t.out, "  %-34s %s\n", "quit", "leave")
}

func (t *Terminal) printError(err error) {
	appErr, ok := appErrors.IsAppError(err)
	if !ok {
		slog.Error("Unexpected terminal error", slog.String("error", err.Error()))
		fmt.Fprintln(t.out, "Error: something went wrong, please try again")

		return
	}

	fmt.Fprintf(t.out, "Error: %s\n", appErr.Message)

	if appErr.Detail != "" && appErr.Code == appErrors.ErrCodeValidation {
		fmt.Fprintf(t.out, "  %s\n", appErr.Detail)
	}

	if appErr.Code == appErrors.ErrCodeUnauthorized && t.svc.Auth != nil {
		fmt.Fprintln(t.out, "Use: login <email> <password>")
	}
}

// Commands lists the registered command names in help order.
func (t *Terminal) Commands() []string {
	return slices.Clone(t.order)
}

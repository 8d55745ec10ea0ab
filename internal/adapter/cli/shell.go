package cli

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

const menu = `
Select the desired option:
[1] New customer
[2] New account
[3] Deposit
[4] Withdraw
[5] Statement
[6] List accounts
[0] Exit`

// ErrInputClosed is returned when input ends in the middle of a prompt.
var ErrInputClosed = errors.New("input closed")

// ShellConfig wires a Shell.
type ShellConfig struct {
	Handler     *Handler
	In          io.Reader
	Out         io.Writer
	Logger      zerolog.Logger
	Interactive bool // print the banner, menu and prompts
}

// Shell reads menu choices and one-line commands until exit or end of input.
type Shell struct {
	handler     *Handler
	scanner     *bufio.Scanner
	out         io.Writer
	logger      zerolog.Logger
	interactive bool
}

// NewShell creates a new Shell.
func NewShell(cfg ShellConfig) *Shell {
	return &Shell{
		handler:     cfg.Handler,
		scanner:     bufio.NewScanner(cfg.In),
		out:         cfg.Out,
		logger:      cfg.Logger,
		interactive: cfg.Interactive,
	}
}

// Run processes input until exit or end of input. Failed operations do not
// stop the loop; when not interactive the first failure is returned at the
// end so scripts can exit non-zero.
func (s *Shell) Run(ctx context.Context) error {
	if s.interactive {
		fmt.Fprintln(s.out, "Welcome to the banking system!")
		fmt.Fprintln(s.out, menu)
	}

	var firstErr error
	for {
		if s.interactive {
			fmt.Fprint(s.out, "\n> ")
		}

		line, ok := s.readLine()
		if !ok {
			if err := s.scanner.Err(); err != nil {
				return err
			}
			break
		}

		exit, err := s.Execute(ctx, line)
		if exit || errors.Is(err, ErrInputClosed) {
			break
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if s.interactive {
		return nil
	}
	return firstErr
}

// Execute handles one input line and reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) (bool, error) {
	args, err := splitLine(line)
	if err != nil {
		fmt.Fprintln(s.out, "\n"+failure("Could not parse the command: "+err.Error()))
		return false, err
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return false, nil
	}

	s.logger.Debug().Strs("args", args).Msg("shell command")

	switch args[0] {
	case "0", "exit", "quit":
		return true, nil
	case "menu":
		fmt.Fprintln(s.out, menu)
		return false, nil
	case "help":
		fmt.Fprintln(s.out, menu)
		fmt.Fprintln(s.out, "\nCommands:")
		for _, cmd := range s.handler.Commands() {
			fmt.Fprintf(s.out, "  %-16s %s\n", cmd.Name(), cmd.Short)
		}
		fmt.Fprintln(s.out, "  help             Show this help\n  exit             Leave the session")
		return false, nil
	case "1", "2", "3", "4", "5", "6":
		if len(args) == 1 {
			return false, s.runMenuOption(ctx, args[0])
		}
	}

	return false, s.runCommand(ctx, args)
}

func (s *Shell) runCommand(ctx context.Context, args []string) error {
	root := &cobra.Command{
		Use:           "gobank",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(s.out)
	root.SetErr(s.out)
	root.AddCommand(s.handler.Commands()...)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil && !IsReported(err) {
		fmt.Fprintln(s.out, "\n"+failure(err.Error()))
	}
	return err
}

func (s *Shell) runMenuOption(ctx context.Context, option string) error {
	switch option {
	case "1":
		var input usecase.CreateCustomerInput
		var err error
		if input.TaxID, err = s.prompt("Enter the customer's tax id (digits only):"); err != nil {
			return err
		}
		if _, err := s.handler.session.GetCustomer(ctx, input.TaxID); !errors.Is(err, domain.ErrCustomerNotFound) {
			// Bad or taken tax id: fail before asking for the other fields.
			return s.handler.CreateCustomer(ctx, input)
		}
		if input.Name, err = s.prompt("Enter the full name:"); err != nil {
			return err
		}
		if input.BirthDate, err = s.prompt("Enter the birth date (dd-mm-yyyy):"); err != nil {
			return err
		}
		if input.Address, err = s.prompt("Enter the address (street, number - district - city/state):"); err != nil {
			return err
		}
		return s.handler.CreateCustomer(ctx, input)

	case "2":
		taxID, err := s.prompt("Enter the customer's tax id:")
		if err != nil {
			return err
		}
		return s.handler.CreateAccount(ctx, taxID)

	case "3", "4":
		taxID, err := s.prompt("Enter the customer's tax id:")
		if err != nil {
			return err
		}
		if option == "3" {
			amount, err := s.prompt("Enter the deposit amount:")
			if err != nil {
				return err
			}
			return s.handler.Deposit(ctx, taxID, amount)
		}
		amount, err := s.prompt("Enter the withdrawal amount:")
		if err != nil {
			return err
		}
		return s.handler.Withdraw(ctx, taxID, amount)

	case "5":
		taxID, err := s.prompt("Enter the customer's tax id:")
		if err != nil {
			return err
		}
		return s.handler.Statement(ctx, taxID, "")

	default:
		return s.handler.ListAccounts(ctx)
	}
}

func (s *Shell) prompt(label string) (string, error) {
	if s.interactive {
		fmt.Fprint(s.out, label+" ")
	}

	line, ok := s.readLine()
	if !ok {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}

	return strings.TrimSpace(line), nil
}

func (s *Shell) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// splitLine splits a command line on spaces. Double quotes group words and
// "" is kept as an empty argument.
func splitLine(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	r := csv.NewReader(strings.NewReader(line))
	r.Comma = ' '
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	return r.Read()
}

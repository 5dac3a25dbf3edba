// Package menu implements the interactive launcher: the welcome screen,
// login and registration, the main menu and the four mini-apps.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agentstation/mobileapp"
	"github.com/agentstation/mobileapp/internal/appcontext"
	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/logging"
)

const rule = "=========================================="

// NewCommand creates the menu command. The root command runs the same loop
// when invoked without a subcommand.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "core",
		Short:   "Start the interactive launcher",
		Long: `Menu starts the interactive launcher. Log in or register, then pick one of
the apps: calculator, to-do list, number guessing game or the movie catalog.

Input ends cleanly on EOF, so the menu can be scripted:

  printf '2\nalice\nsecret\n5\n3\n' | mobileapp menu`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// Run drives the launcher until the user exits or input ends. Every run gets
// its own session id on the context logger.
func Run(ctx context.Context, app appcontext.Interface, in io.Reader, out io.Writer) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	ctx = logging.WithLogger(ctx, app.Logger())
	if id, err := uuid.NewV7(); err == nil {
		ctx = logging.WithSessionID(ctx, id.String())
	}
	logging.FromContext(ctx).Debug().Msg("Interactive session started")

	s := &session{
		client: client,
		in:     bufio.NewReader(in),
		out:    out,
	}
	err = s.welcome(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		logging.FromContext(ctx).Debug().Err(err).Msg("Interactive session ended")
		return nil
	}
	return err
}

// session is one interactive run.
type session struct {
	client mobileapp.Client
	in     *bufio.Reader
	out    io.Writer
}

func (s *session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

// box prints lines framed by rules.
func (s *session) box(lines ...string) {
	s.println(rule)
	for _, l := range lines {
		s.printf("|| %-36s ||\n", l)
	}
	s.println(rule)
}

// prompt writes label and reads one line without its line ending. It returns
// io.EOF once input is exhausted.
func (s *session) prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.printf("%s", label)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		s.println()
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// choice reads a trimmed menu selection.
func (s *session) choice(ctx context.Context, label string) (string, error) {
	line, err := s.prompt(ctx, label)
	return strings.TrimSpace(line), err
}

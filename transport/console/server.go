package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadColumn      = errors.New("column must be a number from 1 to 7")
	errQuit           = errors.New("quit")
)

type gameSession interface {
	Drop(ctx context.Context, col int) (*entity.Snapshot, error)
	Restart(ctx context.Context) *entity.Snapshot
	State() entity.Snapshot
}

type handler func(ctx context.Context, args []string) error

// Server reads one command per line and prints the board after each of them.
type Server struct {
	logger  *slog.Logger
	session gameSession

	in  io.Reader
	out io.Writer

	handlers map[string]handler
}

func New(logger *slog.Logger, session gameSession, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger:  logger.With("component", "console"),
		session: session,
		in:      in,
		out:     out,

		handlers: make(map[string]handler),
	}

	server.handlers["drop"] = server.handleDrop
	server.handlers["restart"] = server.handleRestart
	server.handlers["board"] = server.handleBoard
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Start - prints the board and processes commands until quit, EOF or ctx is done.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	if err := that.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read command: %w", err)
					}
				default:
				}

				log.Info("input closed")
				return nil
			}

			if err := that.handleLine(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// handleLine - runs one command. Game errors are printed, only output errors are returned.
func (that *Server) handleLine(ctx context.Context, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]
	if _, err := strconv.Atoi(name); err == nil {
		name, args = "drop", fields
	}

	handle, ok := that.handlers[name]
	if !ok {
		return that.printError(fmt.Errorf("%w %q, type help", ErrUnknownCommand, fields[0]))
	}

	err := handle(ctx, args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errQuit):
		return err
	default:
		return that.printError(err)
	}
}

func (that *Server) handleDrop(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrBadColumn
	}

	col, err := strconv.Atoi(args[0])
	if err != nil {
		return ErrBadColumn
	}

	// columns are shown to the player starting at 1
	if _, err = that.session.Drop(ctx, col-1); err != nil {
		return err
	}

	return that.render()
}

func (that *Server) handleRestart(ctx context.Context, _ []string) error {
	if !that.session.State().Started {
		return that.println("nothing to restart")
	}

	that.session.Restart(ctx)

	return that.render()
}

func (that *Server) handleBoard(_ context.Context, _ []string) error {
	return that.render()
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	return that.println("commands: <column 1-7> | drop <column> | restart | board | quit")
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

func (that *Server) render() error {
	if _, err := io.WriteString(that.out, Render(that.session.State())); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Server) printError(cause error) error {
	return that.println("error: " + cause.Error())
}

func (that *Server) println(text string) error {
	if _, err := fmt.Fprintln(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

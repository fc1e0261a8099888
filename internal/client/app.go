package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/idea-brand-coach/internal/adapter"
	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/atotto/clipboard"
)

const usage = `usage: brandcoach-client [flags] <command>

  register <login> <password> [name]
  login <login> <password>
  logout
  field get <identifier> <category> [default]
  field set <identifier> <category> <content...>
  field refresh <identifier> <category>
  field clear
  chat sessions <chatbot-type>
  chat history <chatbot-type> [-session id]
  chat send <chatbot-type> <message...> [-kb] [-copy] [-session id]
  chat new <chatbot-type> [title...]
  chat rename <chatbot-type> <session-id> <title...>
  chat delete <chatbot-type> <session-id>
  chat clear <chatbot-type> [-session id]
`

type App struct {
	services *service.ClientServices
	closer   io.Closer

	out      io.Writer
	copyText func(string) error
	logger   *logger.Logger
}

// NewApp opens the local store and wires the client services.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	localStore, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		localStore.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return newApp(service.NewClientServices(localStore, serverAdapter, *cfg, logger), localStore, os.Stdout, logger), nil
}

func newApp(services *service.ClientServices, closer io.Closer, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services: services,
		closer:   closer,
		out:      out,
		copyText: clipboard.WriteAll,
		logger:   logger,
	}
}

// Run dispatches one command line.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUsage
	}

	var err error
	switch args[0] {
	case "register":
		err = a.register(ctx, args[1:])
	case "login":
		err = a.login(ctx, args[1:])
	case "logout":
		err = a.logout(ctx)
	case "field":
		err = a.field(ctx, args[1:])
	case "chat":
		err = a.chat(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	if errors.Is(err, ErrUsage) {
		fmt.Fprint(a.out, usage)
	}
	return err
}

// Close flushes every field edit that is still waiting for its debounce and
// closes the local store.
func (a *App) Close(ctx context.Context) error {
	flushErr := a.services.Fields.FlushAll(ctx)
	if flushErr != nil {
		a.logger.Err(flushErr).Str("func", "App.Close").Msg("pending field edits were not pushed")
	}

	if a.closer == nil {
		return flushErr
	}
	return errors.Join(flushErr, a.closer.Close())
}

// userID restores the saved login.
func (a *App) userID(ctx context.Context) (int64, error) {
	session, err := a.services.AuthService.Restore(ctx)
	if errors.Is(err, service.ErrNotLoggedIn) {
		return 0, fmt.Errorf("%w: run `login` or `register` first", err)
	}
	if err != nil {
		return 0, err
	}
	return session.UserID, nil
}

// splitFlags separates -flag tokens from positional arguments so that
// flags may follow the message text. A flag that takes a value consumes the
// next token.
func splitFlags(args []string, valued ...string) (flags, positional []string) {
	takesValue := make(map[string]bool, len(valued))
	for _, name := range valued {
		takesValue[name] = true
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}

		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if takesValue[name] && !strings.Contains(name, "=") && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, positional
}

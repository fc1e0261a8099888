package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/models"
)

func (a *App) field(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: field needs a subcommand", ErrUsage)
	}

	userID, err := a.userID(ctx)
	if err != nil {
		return err
	}

	if args[0] == "clear" {
		deleted, err := a.services.Fields.ClearAll(ctx, userID)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "cleared %d field(s)\n", deleted)
		return nil
	}

	if len(args) < 3 {
		return fmt.Errorf("%w: field %s needs <identifier> <category>", ErrUsage, args[0])
	}
	engine := a.services.Fields.Field(userID, args[1], models.FieldCategory(args[2]))
	rest := args[3:]

	switch args[0] {
	case "get":
		def := strings.Join(rest, " ")
		value, err := engine.Load(ctx, def)
		if err != nil {
			return err
		}
		a.printField(engine.State(), value)
		return nil

	case "set":
		if len(rest) == 0 {
			return fmt.Errorf("%w: field set needs <content>", ErrUsage)
		}
		if _, err := engine.Load(ctx, ""); err != nil {
			return err
		}
		if err := engine.SetValue(ctx, strings.Join(rest, " ")); err != nil {
			return err
		}
		// the edit is already local; a failed push keeps it pending
		if err := engine.Flush(ctx); err != nil && !isSyncFailure(err) {
			return err
		}
		state := engine.State()
		a.printField(state, state.Content)
		return nil

	case "refresh":
		if _, err := engine.Load(ctx, ""); err != nil {
			return err
		}
		if err := engine.Refresh(ctx); err != nil && !isSyncFailure(err) {
			return err
		}
		state := engine.State()
		a.printField(state, state.Content)
		return nil

	default:
		return fmt.Errorf("%w: unknown field subcommand %q", ErrUsage, args[0])
	}
}

// isSyncFailure reports errors that only mean the server did not confirm
// the value. The engine has recorded them in its state.
func isSyncFailure(err error) bool {
	return err != nil && !errors.Is(err, service.ErrEngineClosed) && !errors.Is(err, context.Canceled)
}

func (a *App) printField(state models.FieldState, value string) {
	fmt.Fprintf(a.out, "%s (%s) [%s]\n", state.FieldIdentifier, state.Category, state.Status)
	if state.LastError != nil {
		fmt.Fprintf(a.out, "  last error: %v\n", state.LastError)
	}
	fmt.Fprintln(a.out, value)
}

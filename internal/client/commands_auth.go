package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/idea-brand-coach/models"
)

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: register needs <login> <password>", ErrUsage)
	}

	user := models.User{Login: args[0], Password: args[1]}
	if len(args) > 2 {
		user.Name = strings.Join(args[2:], " ")
	}

	session, err := a.services.AuthService.Register(ctx, user)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered and logged in as %s (user %d)\n", user.Login, session.UserID)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: login needs <login> <password>", ErrUsage)
	}

	session, err := a.services.AuthService.Login(ctx, models.User{Login: args[0], Password: args[1]})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s (user %d)\n", args[0], session.UserID)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

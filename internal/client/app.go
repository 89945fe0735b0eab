package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// App is the non-interactive command front of the client. Each invocation
// runs exactly one command against the server and exits; the bearer token is
// carried between invocations by the session store.
type App struct {
	api      ServerClient
	sessions SessionStore
	out      io.Writer

	logger *logger.Logger
}

func NewApp(api ServerClient, sessions SessionStore, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:      api,
		sessions: sessions,
		out:      out,
		logger:   logger,
	}
}

// Run dispatches args (the command line without the program name) to the
// named command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUnknownCommand
	}

	command, rest := args[0], args[1:]

	switch command {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "me":
		return a.me(ctx)
	case "update":
		return a.update(ctx, rest)
	case "create":
		return a.create(ctx, rest)
	case "list":
		return a.list(ctx)
	case "delete":
		return a.delete(ctx, rest)
	default:
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "usage: note-keeper-client <command> [flags]")
	fmt.Fprintln(a.out, "commands: register, login, logout, me, update, create, list, delete")
}

// printJSON renders v as indented JSON for human consumption.
func (a *App) printJSON(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// authenticate loads the stored session and arms the API client with its
// token.
func (a *App) authenticate(ctx context.Context) (Session, error) {
	session, err := a.sessions.Load(ctx)
	if err != nil {
		return Session{}, err
	}
	a.api.SetToken(session.Token)
	return session, nil
}

func (a *App) register(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("register", flag.ContinueOnError)
	name := flags.String("name", "", "display name")
	email := flags.String("email", "", "login email")
	password := flags.String("password", "", "password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	response, err := a.api.Register(ctx, models.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	if err := a.sessions.Save(ctx, Session{
		Email:   response.User.Email,
		Token:   response.Token,
		SavedAt: time.Now(),
	}); err != nil {
		return err
	}

	a.logger.Info().Str("email", response.User.Email).Msg("registered and logged in")
	return a.printJSON(response.User)
}

func (a *App) login(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("login", flag.ContinueOnError)
	email := flags.String("email", "", "login email")
	password := flags.String("password", "", "password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	response, err := a.api.Login(ctx, models.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	if err := a.sessions.Save(ctx, Session{
		Email:   response.User.Email,
		Token:   response.Token,
		SavedAt: time.Now(),
	}); err != nil {
		return err
	}

	a.logger.Info().Str("email", response.User.Email).Msg("logged in")
	return a.printJSON(response.User)
}

// logout tells the server goodbye (a documented no-op there) and removes the
// local session. A server rejection still clears the local state: the token
// is useless either way.
func (a *App) logout(ctx context.Context) error {
	if _, err := a.authenticate(ctx); err != nil {
		return err
	}

	if err := a.api.Logout(ctx); err != nil && !errors.Is(err, ErrUnauthorized) {
		return err
	}

	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) me(ctx context.Context) error {
	if _, err := a.authenticate(ctx); err != nil {
		return err
	}

	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) update(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("update", flag.ContinueOnError)
	name := flags.String("name", "", "new display name")
	theme := flags.String("theme", "", "theme preference: light or dark")
	password := flags.String("password", "", "new password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var request models.UpdateUserRequest
	if *name != "" {
		request.Name = name
	}
	if *password != "" {
		request.Password = password
	}
	switch *theme {
	case "":
	case "light":
		value := false
		request.Theme = &value
	case "dark":
		value := true
		request.Theme = &value
	default:
		return fmt.Errorf("theme must be %q or %q, got %q", "light", "dark", *theme)
	}

	if _, err := a.authenticate(ctx); err != nil {
		return err
	}

	user, err := a.api.UpdateMe(ctx, request)
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) create(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("create", flag.ContinueOnError)
	title := flags.String("title", "", "document title")
	content := flags.String("content", "", "document content")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if _, err := a.authenticate(ctx); err != nil {
		return err
	}

	document, err := a.api.CreateDocument(ctx, models.CreateDocumentRequest{
		Title:   *title,
		Content: *content,
	})
	if err != nil {
		return err
	}

	return a.printJSON(document)
}

func (a *App) list(ctx context.Context) error {
	if _, err := a.authenticate(ctx); err != nil {
		return err
	}

	documents, err := a.api.ListDocuments(ctx)
	if err != nil {
		return err
	}

	return a.printJSON(documents)
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <document-id>")
	}

	documentID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("document id must be a number, got %q", args[0])
	}

	if _, err := a.authenticate(ctx); err != nil {
		return err
	}

	if err := a.api.DeleteDocument(ctx, documentID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "document deleted")
	return nil
}

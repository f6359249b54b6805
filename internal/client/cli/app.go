// Package cli implements a small REPL over the auth service: register,
// login, refresh and whoami commands against the gRPC endpoint.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/svortega/authms/internal/client/config"
	"github.com/svortega/authms/internal/client/service"
)

type App struct {
	clientService *service.AuthClientService
	in            *bufio.Reader
	out           io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	cs := service.NewAuthClientService(cfg.ServerEndpointAddr)
	if err := cs.InitGRPCClient(); err != nil {
		return nil, err
	}
	return &App{
		clientService: cs,
		in:            bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run reads commands until quit or EOF.
func (a *App) Run() {
	defer func() { _ = a.clientService.Close() }()

	fmt.Fprintln(a.out, "commands: register | login | refresh | whoami | ping | quit")

	for {
		cmd, err := GetSimpleText(a.in, "command", a.out)
		if err != nil {
			return
		}
		if !a.dispatch(cmd) {
			return
		}
	}
}

// dispatch executes a single command; it returns false when the loop
// should stop.
func (a *App) dispatch(cmd string) bool {
	switch cmd {
	case "register":
		a.register()
	case "login":
		a.login()
	case "refresh":
		a.refresh()
	case "whoami":
		a.whoami()
	case "ping":
		a.ping()
	case "quit", "exit", "q":
		return false
	case "":
	default:
		fmt.Fprintf(a.out, "unknown command: %s\n", cmd)
	}
	return true
}

func (a *App) register() {
	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	name, err := GetSimpleText(a.in, "Enter name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if err := a.clientService.Register(context.Background(), email, name, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Registered as", a.clientService.Identity().Email)
}

func (a *App) login() {
	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if err := a.clientService.Login(context.Background(), email, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Logged in as", a.clientService.Identity().Email)
}

func (a *App) refresh() {
	if a.clientService.Token() == "" {
		fmt.Fprintln(a.out, "not logged in")
		return
	}
	if err := a.clientService.Refresh(context.Background()); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Token refreshed")
}

func (a *App) whoami() {
	id := a.clientService.Identity()
	if id.ID == "" {
		fmt.Fprintln(a.out, "not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", id.Name, id.Email, id.ID)
}

func (a *App) ping() {
	status, err := a.clientService.Ping(context.Background())
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, status)
}

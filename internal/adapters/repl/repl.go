package repl

import (
	"context"

	"cafe/internal/console"
	"cafe/internal/core"

	"go.uber.org/zap"
)

type state int

const (
	stateMain state = iota
	stateAuthenticated
	stateExit
)

// option binds one numeric menu choice to its handler.
type option struct {
	choice int
	label  string
	action func(ctx context.Context) error
}

// menu is rendered from and dispatched through the same option table.
// A dotted menu prints a separator line before its 9 option.
type menu struct {
	title        string
	options      []option
	dotted       bool
	unrecognized string
}

// Session is one interactive console session. At most one user is logged in at a time.
type Session struct {
	con      *console.Console
	users    core.UserService
	catalog  core.CatalogService
	baseLog  *zap.Logger
	log      *zap.Logger
	state    state
	login    string
	mainMenu menu
	userMenu menu
}

// NewSession wires a session over the console and services. It starts at the main menu.
func NewSession(con *console.Console, users core.UserService, catalog core.CatalogService, logger *zap.Logger) *Session {
	s := &Session{
		con:     con,
		users:   users,
		catalog: catalog,
		baseLog: logger,
		log:     logger,
		state:   stateMain,
	}

	s.mainMenu = menu{
		title: "MAIN MENU",
		options: []option{
			{1, "Create user", s.createUser},
			{2, "Log in", s.logInAction},
			{9, "< EXIT", s.exit},
		},
		unrecognized: "Unrecognized choice, try again.",
	}

	s.userMenu = menu{
		title: "MAIN MENU",
		options: []option{
			{1, "Go to Menu", s.catalogMenu},
			{2, "Update Profile", s.updateProfile},
			{3, "Place an Order", s.placeOrder},
			{4, "Update an Order", s.updateOrder},
			{9, "Log Out", s.logOut},
		},
		dotted:       true,
		unrecognized: "Unrecognized choice!",
	}

	return s
}

// Run drives the menus until the user exits. Handler failures are logged and the
// loop continues; only a failing console input ends Run with an error.
func (s *Session) Run(ctx context.Context) error {
	for s.state != stateExit {
		m := s.mainMenu
		if s.state == stateAuthenticated {
			m = s.userMenu
		}
		if err := s.dispatch(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) dispatch(ctx context.Context, m menu) error {
	printMenu(s.con, m)

	choice, err := s.con.ReadMenuChoice()
	if err != nil {
		return err
	}

	for _, opt := range m.options {
		if opt.choice == choice {
			return opt.action(ctx)
		}
	}
	s.con.Println(m.unrecognized)
	return nil
}

func (s *Session) logInAction(ctx context.Context) error {
	login, err := s.logIn(ctx)
	if err != nil {
		return err
	}
	if login != "" {
		s.login = login
		s.state = stateAuthenticated
	}
	return nil
}

func (s *Session) exit(context.Context) error {
	s.state = stateExit
	return nil
}

func (s *Session) logOut(context.Context) error {
	s.con.Println("\nSuccessfully logged out.")
	s.log.Info("session logged out")
	s.login = ""
	s.log = s.baseLog
	s.state = stateMain
	return nil
}

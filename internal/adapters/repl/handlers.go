package repl

import (
	"context"
	"fmt"

	"cafe/internal/core"

	"go.uber.org/zap"
)

// createUser registers a Customer. Duplicate logins and weak passwords are not checked here.
func (s *Session) createUser(ctx context.Context) error {
	login, err := s.con.Prompt("\tEnter user login: ")
	if err != nil {
		return err
	}
	password, err := s.con.Prompt("\tEnter user password: ")
	if err != nil {
		return err
	}
	phone, err := s.con.Prompt("\tEnter user phone: ")
	if err != nil {
		return err
	}

	if err := s.users.Create(ctx, login, password, phone); err != nil {
		s.log.Error("create user failed", zap.String("login", login), zap.Error(err))
		return nil
	}
	s.con.Println("User successfully created!")
	s.log.Info("user created", zap.String("login", login))
	return nil
}

// logIn returns the login on a credential match and "" otherwise.
// Database failures also yield "". The error is reserved for console input failures.
func (s *Session) logIn(ctx context.Context) (string, error) {
	login, err := s.con.Prompt("\nEnter user login: ")
	if err != nil {
		return "", err
	}
	password, err := s.con.Prompt("Enter user password: ")
	if err != nil {
		return "", err
	}

	ok, err := s.users.Authenticate(ctx, login, password)
	if err != nil {
		s.log.Error("login failed", zap.String("login", login), zap.Error(err))
		return "", nil
	}
	if !ok {
		s.con.Println("\nLogin not found! Please try again.")
		return "", nil
	}

	s.con.Printf("\nLogin successful. Welcome, %s!\n", login)

	s.log = s.baseLog.With(zap.String("login", login))
	if u, err := s.users.Get(ctx, login); err != nil {
		s.log.Warn("unable to load user profile", zap.Error(err))
	} else {
		s.log = s.log.With(zap.String("user_type", string(u.Type)))
	}
	s.log.Info("session logged in")
	return login, nil
}

// catalogMenu runs one catalog dispatch for the logged-in user.
func (s *Session) catalogMenu(ctx context.Context) error {
	isManager, err := s.users.IsManager(ctx, s.login)
	if err != nil {
		s.log.Error("privilege check failed", zap.Error(err))
		return nil
	}

	options := []option{
		{1, "Browse Menu", s.browseMenu},
		{2, "Search By Name", s.searchByName},
		{3, "Search By Category", s.searchByCategory},
	}
	if isManager {
		options = append(options, option{4, "Update Menu", s.updateMenu})
	}
	options = append(options, option{9, "Return to Main Menu", func(context.Context) error { return nil }})

	return s.dispatch(ctx, menu{
		title:        "MENU OPTIONS",
		options:      options,
		dotted:       true,
		unrecognized: "Unrecognized choice!",
	})
}

func (s *Session) browseMenu(ctx context.Context) error {
	for _, category := range core.BrowseCategories {
		s.con.Printf("\n%s:\n%s\n", category, divider)
		n, err := s.catalog.PrintCategory(ctx, s.con.Out(), category)
		if err != nil {
			s.log.Error("browse menu failed", zap.String("category", string(category)), zap.Error(err))
			return nil
		}
		s.con.Println(itemCount(n))
	}
	return nil
}

func (s *Session) searchByName(ctx context.Context) error {
	itemName, err := s.con.Prompt("\nEnter item name: ")
	if err != nil {
		return err
	}

	n, err := s.catalog.PrintByName(ctx, s.con.Out(), itemName)
	if err != nil {
		s.log.Error("search by name failed", zap.String("item", itemName), zap.Error(err))
		return nil
	}
	if n > 0 {
		s.con.Println(itemCount(n))
	} else {
		s.con.Println("Item not found, please try again.")
	}
	return nil
}

func (s *Session) searchByCategory(ctx context.Context) error {
	category, err := s.con.Prompt(fmt.Sprintf("\nEnter '%s', '%s', or '%s': ", core.Drinks, core.Sweets, core.Soup))
	if err != nil {
		return err
	}

	n, err := s.catalog.PrintCategory(ctx, s.con.Out(), core.MenuCategory(category))
	if err != nil {
		s.log.Error("search by category failed", zap.String("category", category), zap.Error(err))
		return nil
	}
	if n > 0 {
		s.con.Println(itemCount(n))
	} else {
		s.con.Println("Invalid input, please try again.")
	}
	return nil
}

// The handlers below are intentionally not implemented and return immediately.

func (s *Session) updateMenu(context.Context) error {
	s.log.Debug("not implemented", zap.String("action", "update menu"))
	return nil
}

func (s *Session) updateProfile(context.Context) error {
	s.log.Debug("not implemented", zap.String("action", "update profile"))
	return nil
}

func (s *Session) placeOrder(context.Context) error {
	s.log.Debug("not implemented", zap.String("action", "place order"))
	return nil
}

func (s *Session) updateOrder(context.Context) error {
	s.log.Debug("not implemented", zap.String("action", "update order"))
	return nil
}

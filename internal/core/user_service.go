package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cafe/internal/db"
)

// ErrUserNotFound is returned when no Users row matches a login.
var ErrUserNotFound = errors.New("user not found")

// managerCheckType is compared against Users.type by IsManager. It carries trailing
// commas, so it never equals a stored type and IsManager is always false against real data.
const managerCheckType = "Manager,,,"

const (
	insertUserSQL = `INSERT INTO Users (phoneNum, login, password, favItems, type) VALUES ($1, $2, $3, $4, $5)`

	credentialsSQL = `SELECT * FROM Users WHERE login = $1 AND password = $2`

	managerSQL = `SELECT * FROM Users U WHERE U.login = $1 AND U.type = $2`

	userByLoginSQL = `SELECT login, password, phoneNum, favItems, type FROM Users WHERE login = $1`
)

// UserService manages cafe accounts.
type UserService interface {
	// Create inserts a Customer with no favorite items.
	// Duplicate logins are rejected only by the database, if at all.
	Create(ctx context.Context, login, password, phone string) error

	// Authenticate reports whether a user with exactly this login and password exists.
	Authenticate(ctx context.Context, login, password string) (bool, error)

	// IsManager reports whether login holds manager privilege.
	IsManager(ctx context.Context, login string) (bool, error)

	// Get returns the profile stored for login.
	Get(ctx context.Context, login string) (*User, error)
}

type userService struct {
	exec db.Executor
}

// NewUserService constructs a UserService on top of exec.
func NewUserService(exec db.Executor) UserService {
	return &userService{exec: exec}
}

func (s *userService) Create(ctx context.Context, login, password, phone string) error {
	if err := s.exec.ExecuteUpdate(ctx, insertUserSQL, phone, login, password, "", string(Customer)); err != nil {
		return fmt.Errorf("failed to create user %q: %w", login, err)
	}
	return nil
}

func (s *userService) Authenticate(ctx context.Context, login, password string) (bool, error) {
	n, err := s.exec.ExecuteQueryCount(ctx, credentialsSQL, login, password)
	if err != nil {
		return false, fmt.Errorf("failed to check credentials for %q: %w", login, err)
	}
	return n > 0, nil
}

func (s *userService) IsManager(ctx context.Context, login string) (bool, error) {
	n, err := s.exec.ExecuteQueryCount(ctx, managerSQL, login, managerCheckType)
	if err != nil {
		return false, fmt.Errorf("failed to check privileges for %q: %w", login, err)
	}
	return n > 0, nil
}

func (s *userService) Get(ctx context.Context, login string) (*User, error) {
	rows, err := s.exec.ExecuteQueryAndCollect(ctx, userByLoginSQL, login)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %q: %w", login, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, login)
	}
	r := rows[0]
	if len(r) != 5 {
		return nil, fmt.Errorf("unexpected column count %d for user %q", len(r), login)
	}
	// char(n) columns come back blank-padded.
	return &User{
		Login:         strings.TrimSpace(r[0]),
		Password:      strings.TrimSpace(r[1]),
		Phone:         strings.TrimSpace(r[2]),
		FavoriteItems: strings.TrimSpace(r[3]),
		Type:          UserType(strings.TrimSpace(r[4])),
	}, nil
}

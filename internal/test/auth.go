package test

import (
	"context"
	"errors"

	"github.com/sweetworks/sweetshop/internal/domain/model"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// AuthenticatorStub implements the middleware authentication contract.
type AuthenticatorStub struct {
	UserID    string
	User      *model.User
	ParseErr  error
	LookupErr error
}

// ParseToken returns the configured user id or error.
func (s AuthenticatorStub) ParseToken(token string) (string, error) {
	if s.ParseErr != nil {
		return "", s.ParseErr
	}
	return s.UserID, nil
}

// UserByID resolves the configured account.
func (s AuthenticatorStub) UserByID(ctx context.Context, id string) (*model.User, error) {
	if s.LookupErr != nil {
		return nil, s.LookupErr
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: id}, nil
}

package auth

import (
	"context"

	"github.com/dkovalev/gamestore/internal/auth/password"
	"github.com/dkovalev/gamestore/internal/auth/token"
	"github.com/dkovalev/gamestore/internal/fault"
	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
	"github.com/dkovalev/gamestore/internal/rules"
)

// Service handles registration and login. Tokens are stateless; the only
// persisted credential is the bcrypt hash.
type Service struct {
	store  ports.Store
	tokens *token.Manager
}

func NewService(store ports.Store, tokens *token.Manager) *Service {
	return &Service{store: store, tokens: tokens}
}

// Register creates the user and returns a freshly issued token for its id.
func (s *Service) Register(ctx context.Context, name, email, plain string) (string, error) {
	var tok string
	err := s.store.Tx(ctx, func(tx ports.Store) error {
		if err := rules.UserUniqueOnCreate(ctx, tx, name, email); err != nil {
			return err
		}
		hash, err := password.Hash(plain)
		if err != nil {
			return err
		}
		u := &models.User{Name: name, Email: email, PasswordHash: hash}
		if err := tx.CreateUser(ctx, u); err != nil {
			return err
		}
		tok, err = s.tokens.Issue(u.ID)
		return err
	})
	if err != nil {
		return "", err
	}
	return tok, nil
}

// Login verifies credentials and returns a token. Unknown email and wrong
// password produce the same message so neither case is distinguishable.
func (s *Service) Login(ctx context.Context, email, plain string) (string, error) {
	u, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil || !password.Verify(plain, u.PasswordHash) {
		return "", fault.Unauthorized("invalid email or password")
	}
	return s.tokens.Issue(u.ID)
}

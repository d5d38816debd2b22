// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"prospera/internal/domain"
	"prospera/internal/repository"
	"prospera/internal/util"
	"prospera/pkg/db"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,6}$`)

// AuthService defines the interface for signup and login.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	return &authService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// Signup validates credentials, hashes the password and creates the user.
// The duplicate checks and the insert run in one transaction.
func (s *authService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" {
		return nil, fmt.Errorf("signup: empty username: %w", util.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return nil, util.ErrInvalidEmail
	}
	if !isPasswordValid(password) {
		return nil, util.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("signup: failed to hash password: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("signup: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("signup: transaction controller does not implement DBExecutor")
	}

	if _, err := s.userRepo.GetUserByUsername(ctx, txExecutor, username); err == nil {
		return nil, fmt.Errorf("signup: username '%s': %w", username, util.ErrDuplicateEntry)
	} else if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("signup: failed to check existing username: %w", err)
	}
	if _, err := s.userRepo.GetUserByEmail(ctx, txExecutor, email); err == nil {
		return nil, fmt.Errorf("signup: email '%s': %w", email, util.ErrDuplicateEntry)
	} else if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("signup: failed to check existing email: %w", err)
	}

	user := domain.NewUser(username, email, string(hash))
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("signup: failed to create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("signup: failed to commit transaction: %w", err)
	}
	return user, nil
}

// Login verifies the password against the stored bcrypt hash. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.userRepo.GetUserByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: failed to get user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

// isPasswordValid enforces the minimum policy: 8+ characters with a digit.
func isPasswordValid(password string) bool {
	// Go's regexp has no lookahead; check the two conditions separately.
	if len(password) < 8 {
		return false
	}
	return strings.ContainsAny(password, "0123456789")
}

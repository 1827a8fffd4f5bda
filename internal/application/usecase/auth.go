package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"memoria/internal/domain/dto"
	"memoria/internal/domain/model"
	dbRepository "memoria/internal/domain/repository/database"
	sessionRepository "memoria/internal/domain/repository/session"
	"memoria/pkg/logger"
)

// Auth is the admin session gate: credential checks, session lifecycle
// and the bootstrap admin account.
type Auth struct {
	users    dbRepository.UserStore
	sessions sessionRepository.Store
}

func NewAuth(users dbRepository.UserStore, sessions sessionRepository.Store) *Auth {
	return &Auth{
		users:    users,
		sessions: sessions,
	}
}

// Login verifies the credential pair and establishes a session. Valid
// credentials without elevated privilege are rejected: only admins may
// hold a login session here.
func (a *Auth) Login(ctx context.Context, username, password string) (string, *dto.UserProfile, int, error) {
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return "", nil, http.StatusUnauthorized, errors.New("Invalid credentials")
		}
		logger.Error("user lookup failed", "username", username, "err", err)

		return "", nil, http.StatusInternalServerError, errors.New("login failed")
	}

	if !user.CheckPassword(password) {
		return "", nil, http.StatusUnauthorized, errors.New("Invalid credentials")
	}

	if !user.IsAdmin() {
		return "", nil, http.StatusForbidden, errors.New("Admin privileges required")
	}

	token, err := a.sessions.Create(ctx, user.ID)
	if err != nil {
		logger.Error("session create failed", "err", err)

		return "", nil, http.StatusInternalServerError, errors.New("login failed")
	}

	profile := dto.NewUserProfile(user)

	return token, &profile, http.StatusOK, nil
}

func (a *Auth) Logout(ctx context.Context, token string) error {
	return a.sessions.Delete(ctx, token)
}

// ResolveSession maps a session token to its user, ErrNotFound for
// unknown or expired tokens and for sessions whose user vanished.
func (a *Auth) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	userID, err := a.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return nil, sessionRepository.ErrNotFound
		}

		return nil, err
	}

	return user, nil
}

// CreateAdmin provisions a staff+superuser account. Unauthenticated by
// design: this is the development bootstrap path and must be gated or
// removed in production deployments.
func (a *Auth) CreateAdmin(ctx context.Context, username, password, email string) (string, int, error) {
	user := &model.User{
		ID:          uuid.NewString(),
		Username:    username,
		Email:       email,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := user.SetPassword(password); err != nil {
		logger.Error("password hash failed", "err", err)

		return "", http.StatusInternalServerError, errors.New("failed to create admin user")
	}

	if err := a.users.Create(ctx, user); err != nil {
		if errors.Is(err, dbRepository.ErrUsernameTaken) {
			return "", http.StatusConflict, errors.New("User already exists")
		}
		logger.Error("user create failed", "err", err)

		return "", http.StatusInternalServerError, errors.New("failed to create admin user")
	}

	return user.ID, http.StatusCreated, nil
}

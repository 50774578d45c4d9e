package core

import (
	"context"
	"crypto/rand"
	"eoexstore/internal/repository"
	tokenIssuer "eoexstore/pkg/jwt"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Credentials registers users, checks their passwords and issues and verifies session tokens.
type Credentials struct {
	logs       *zap.SugaredLogger
	repo       UserRepository
	jwtIssuer  JWTIssuer
	sessionTTL time.Duration
	bcryptCost int

	// compared against when the username is unknown so that both login failures cost one bcrypt run
	dummyHash []byte
}

// NewCredentials is a constructor function for the Credentials type.
func NewCredentials(logger *zap.SugaredLogger, repo UserRepository, jwt JWTIssuer, sessionTTL time.Duration, bcryptCost int) (*Credentials, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate dummy password: %w", err)
	}

	dummyHash, err := bcrypt.GenerateFromPassword(secret, bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}

	return &Credentials{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}, nil
}

// Register stores a new user with role user and returns its id.
func (c *Credentials) Register(ctx context.Context, msg AuthMessage) (uint64, error) {
	return c.register(ctx, msg, RoleUser)
}

// register inserts the user with role in a single statement.
func (c *Credentials) register(ctx context.Context, msg AuthMessage, role Role) (uint64, error) {
	if err := msg.Validate(); err != nil {
		return 0, validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), c.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, validationError(err)
		}
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     msg.Username,
		PasswordHash: string(hash),
		Role:         role.String(),
	}
	if err := c.repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return 0, ErrConflict
		}
		return 0, storageFailure(c.logs, "create user", err)
	}

	c.logs.Infow("user registered", "userId", user.ID, "role", user.Role)
	return user.ID, nil
}

// Login checks the credentials and returns a signed session token. An unknown username and
// a wrong password both yield ErrAuth.
func (c *Credentials) Login(ctx context.Context, msg AuthMessage) (string, error) {
	// HTTP requests are validated before they get here; this covers direct callers.
	if msg.Username == "" || msg.Password == "" {
		_ = bcrypt.CompareHashAndPassword(c.dummyHash, []byte(msg.Password))
		return "", ErrAuth
	}

	user, err := c.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(c.dummyHash, []byte(msg.Password))
			return "", ErrAuth
		}
		return "", storageFailure(c.logs, "get user", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrAuth
	}

	role, err := ParseRole(user.Role)
	if err != nil {
		return "", storageFailure(c.logs, "decode user role", fmt.Errorf("user %d: %w", user.ID, err))
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Subject:    strconv.FormatUint(user.ID, 10),
		UserName:   user.Username,
		Role:       role.String(),
		Expiration: c.sessionTTL,
	}
	token := c.jwtIssuer.Generate(tokenInfo)
	signed, err := c.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Authorize validates token and checks that its role satisfies required.
func (c *Credentials) Authorize(ctx context.Context, token string, required Role) (Identity, error) {
	if token == "" {
		return Identity{}, fmt.Errorf("%w: missing token", ErrAuth)
	}

	claims, err := c.jwtIssuer.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrAuth, err)
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: malformed subject", ErrAuth)
	}

	roleClaim, _ := claims["role"].(string)
	role, err := ParseRole(roleClaim)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrAuth, err)
	}

	if !role.Satisfies(required) {
		return Identity{}, ErrForbidden
	}

	username, _ := claims["username"].(string)
	return Identity{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}

// SetRole changes the role of an existing user.
func (c *Credentials) SetRole(ctx context.Context, userID uint64, role Role) (UserRecord, error) {
	if role != RoleUser && role != RoleAdmin {
		return UserRecord{}, validationError(fmt.Errorf("role must be %q or %q", RoleUser, RoleAdmin))
	}

	user, err := c.repo.UpdateUserRole(ctx, userID, role.String())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrNotFound
		}
		return UserRecord{}, storageFailure(c.logs, "update user role", err)
	}

	c.logs.Infow("user role changed", "userId", userID, "role", role.String())
	return UserRecord{
		ID:        user.ID,
		Username:  user.Username,
		Role:      role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// SeedAdmin inserts username with role admin unless a user with that name already exists.
func (c *Credentials) SeedAdmin(ctx context.Context, username, password string) error {
	_, err := c.register(ctx, AuthMessage{Username: username, Password: password}, RoleAdmin)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			c.logs.Infow("admin user already present, skipping seed", "username", username)
			return nil
		}
		return fmt.Errorf("register admin: %w", err)
	}

	return nil
}

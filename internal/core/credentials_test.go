package core_test

import (
	"context"
	"eoexstore/internal/core"
	"eoexstore/internal/core/fake"
	"eoexstore/internal/repository"
	tokenIssuer "eoexstore/pkg/jwt"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// usersInMemory backs a fake.UserRepository with a map keyed by username.
func usersInMemory(repo *fake.UserRepository) {
	var (
		mu     sync.Mutex
		nextID uint64
		users  = map[string]repository.User{}
	)

	repo.CreateUserStub = func(ctx context.Context, user *repository.User) error {
		mu.Lock()
		defer mu.Unlock()
		if _, ok := users[user.Username]; ok {
			return repository.ErrUsernameTaken
		}
		nextID++
		user.ID = nextID
		user.CreatedAt = time.Now()
		users[user.Username] = *user
		return nil
	}
	repo.GetUserByUsernameStub = func(ctx context.Context, username string) (repository.User, error) {
		mu.Lock()
		defer mu.Unlock()
		user, ok := users[username]
		if !ok {
			return repository.User{}, repository.ErrUserNotFound
		}
		return user, nil
	}
	repo.UpdateUserRoleStub = func(ctx context.Context, id uint64, role string) (repository.User, error) {
		mu.Lock()
		defer mu.Unlock()
		for name, user := range users {
			if user.ID == id {
				user.Role = role
				users[name] = user
				return user, nil
			}
		}
		return repository.User{}, repository.ErrUserNotFound
	}
}

var _ = Describe("Credentials", func() {
	var (
		fakeRepo   *fake.UserRepository
		jwtService *tokenIssuer.JWTService
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		credentials *core.Credentials
	)

	BeforeEach(func() {
		fakeRepo = new(fake.UserRepository)
		usersInMemory(fakeRepo)
		jwtService = tokenIssuer.NewJWTService([]byte("test-secret"))
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		var err error
		credentials, err = core.NewCredentials(fakeLogger, fakeRepo, jwtService, time.Hour, bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Register", func() {
		It("should store a bcrypt hash and the user role", func() {
			id, err := credentials.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(uint64(1)))

			_, user := fakeRepo.CreateUserArgsForCall(0)
			Expect(user.Username).To(Equal("alice"))
			Expect(user.Role).To(Equal("user"))
			Expect(user.PasswordHash).NotTo(Equal("pw123"))
			Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123"))).To(Succeed())
		})

		It("should reject a second registration with the same username", func() {
			_, err := credentials.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())

			_, err = credentials.Register(ctx, core.AuthMessage{Username: "alice", Password: "other"})
			Expect(err).To(MatchError(core.ErrConflict))
		})

		DescribeTable("should reject invalid input",
			func(msg core.AuthMessage) {
				_, err := credentials.Register(ctx, msg)
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreateUserCallCount()).To(BeZero())
			},
			Entry("empty username", core.AuthMessage{Password: "pw123"}),
			Entry("empty password", core.AuthMessage{Username: "alice"}),
			Entry("password longer than bcrypt accepts", core.AuthMessage{Username: "alice", Password: string(make([]byte, 73))}),
		)

		When("storage times out", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(fmt.Errorf("create user: %w", repository.ErrTimeout))
			})

			It("should return ErrStorageTimeout", func() {
				_, err := credentials.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
				Expect(err).To(MatchError(core.ErrStorageTimeout))
			})
		})
	})

	Describe("Login and Authorize", func() {
		BeforeEach(func() {
			_, err := credentials.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should issue a token that authorizes the user", func() {
			token, err := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())

			identity, err := credentials.Authorize(ctx, token, core.RoleUser)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity).To(Equal(core.Identity{UserID: 1, Username: "alice", Role: core.RoleUser}))
		})

		It("should fail the same way for a wrong password and an unknown user", func() {
			_, wrongPassword := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "nope"})
			_, unknownUser := credentials.Login(ctx, core.AuthMessage{Username: "bob", Password: "pw123"})

			Expect(wrongPassword).To(MatchError(core.ErrAuth))
			Expect(unknownUser).To(Equal(wrongPassword))
		})

		It("should reject empty credentials without a lookup", func() {
			_, err := credentials.Login(ctx, core.AuthMessage{Username: "alice"})
			Expect(err).To(MatchError(core.ErrAuth))
			Expect(fakeRepo.GetUserByUsernameCallCount()).To(BeZero())
		})

		It("should forbid a user token where admin is required", func() {
			token, err := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())

			_, err = credentials.Authorize(ctx, token, core.RoleAdmin)
			Expect(err).To(MatchError(core.ErrForbidden))
			Expect(err).To(MatchError(core.ErrAuth))
		})

		It("should reject an expired token", func() {
			tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
			token, err := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())
			tokenIssuer.TimeNow = time.Now

			_, err = credentials.Authorize(ctx, token, core.RoleUser)
			Expect(err).To(MatchError(core.ErrAuth))
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})

		It("should reject a missing or tampered token", func() {
			_, err := credentials.Authorize(ctx, "", core.RoleNone)
			Expect(err).To(MatchError(core.ErrAuth))

			token, err := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())
			_, err = credentials.Authorize(ctx, token+"x", core.RoleNone)
			Expect(err).To(MatchError(core.ErrAuth))
		})

		It("should reject a token without a numeric subject", func() {
			signed, err := jwtService.Sign(jwtService.Generate(tokenIssuer.TokenInfo{
				Subject:    "alice",
				Role:       "admin",
				Expiration: time.Hour,
			}))
			Expect(err).NotTo(HaveOccurred())

			_, err = credentials.Authorize(ctx, signed, core.RoleNone)
			Expect(err).To(MatchError(core.ErrAuth))
		})

		When("the user lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameStub = nil
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fmt.Errorf("get user: %w", repository.ErrStorage))
			})

			It("should return ErrStorage and not ErrAuth", func() {
				_, err := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
				Expect(err).To(MatchError(core.ErrStorage))
				Expect(errors.Is(err, core.ErrAuth)).To(BeFalse())
			})
		})
	})

	Describe("with a fake token issuer", func() {
		var fakeJWT *fake.JWTIssuer

		BeforeEach(func() {
			fakeJWT = new(fake.JWTIssuer)
			var err error
			credentials, err = core.NewCredentials(fakeLogger, fakeRepo, fakeJWT, 30*time.Minute, bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())

			_, err = credentials.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should put the user id, name, role and ttl into the token", func() {
			fakeJWT.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
			fakeJWT.SignReturns("signed", nil)

			token, err := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("signed"))

			Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
				Subject:    "1",
				UserName:   "alice",
				Role:       "user",
				Expiration: 30 * time.Minute,
			}))
		})

		It("should return an error when signing fails", func() {
			fakeJWT.SignReturns("", errors.New("sign error"))

			_, err := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).To(MatchError("signing token: sign error"))
		})

		It("should reject an unknown role claim", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "1", "role": "root"}, nil)

			_, err := credentials.Authorize(ctx, "token", core.RoleNone)
			Expect(err).To(MatchError(core.ErrAuth))
		})
	})

	Describe("SetRole", func() {
		BeforeEach(func() {
			_, err := credentials.Register(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should promote the user and affect tokens issued afterwards", func() {
			before, err := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())

			user, err := credentials.SetRole(ctx, 1, core.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(core.RoleAdmin))

			_, err = credentials.Authorize(ctx, before, core.RoleAdmin)
			Expect(err).To(MatchError(core.ErrForbidden))

			after, err := credentials.Login(ctx, core.AuthMessage{Username: "alice", Password: "pw123"})
			Expect(err).NotTo(HaveOccurred())
			identity, err := credentials.Authorize(ctx, after, core.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.Role).To(Equal(core.RoleAdmin))
		})

		It("should return ErrNotFound for an unknown user", func() {
			_, err := credentials.SetRole(ctx, 99, core.RoleAdmin)
			Expect(err).To(MatchError(core.ErrNotFound))
		})

		It("should reject the empty role", func() {
			_, err := credentials.SetRole(ctx, 1, core.RoleNone)
			Expect(err).To(MatchError(core.ErrValidation))
			Expect(fakeRepo.UpdateUserRoleCallCount()).To(BeZero())
		})
	})

	Describe("SeedAdmin", func() {
		It("should register an admin", func() {
			Expect(credentials.SeedAdmin(ctx, "root", "secret")).To(Succeed())

			token, err := credentials.Login(ctx, core.AuthMessage{Username: "root", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())
			_, err = credentials.Authorize(ctx, token, core.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should store the admin role in the single insert", func() {
			Expect(credentials.SeedAdmin(ctx, "root", "secret")).To(Succeed())

			Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
			_, user := fakeRepo.CreateUserArgsForCall(0)
			Expect(user.Role).To(Equal("admin"))
			Expect(fakeRepo.UpdateUserRoleCallCount()).To(BeZero())
		})

		It("should still produce an admin after a failed attempt", func() {
			inMemory := fakeRepo.CreateUserStub
			fakeRepo.CreateUserStub = func(ctx context.Context, user *repository.User) error {
				if fakeRepo.CreateUserCallCount() == 1 {
					return fmt.Errorf("create user: %w", repository.ErrStorage)
				}
				return inMemory(ctx, user)
			}

			Expect(credentials.SeedAdmin(ctx, "root", "secret")).To(MatchError(core.ErrStorage))
			Expect(credentials.SeedAdmin(ctx, "root", "secret")).To(Succeed())

			token, err := credentials.Login(ctx, core.AuthMessage{Username: "root", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())
			identity, err := credentials.Authorize(ctx, token, core.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.Role).To(Equal(core.RoleAdmin))
		})

		It("should leave an existing user alone", func() {
			_, err := credentials.Register(ctx, core.AuthMessage{Username: "root", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())

			Expect(credentials.SeedAdmin(ctx, "root", "other")).To(Succeed())
			Expect(fakeRepo.UpdateUserRoleCallCount()).To(BeZero())
		})
	})
})

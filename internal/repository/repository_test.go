package repository_test

import (
	"context"
	"eoexstore/internal/db"
	"eoexstore/internal/repository"
	"eoexstore/internal/repository/fake"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("CreateUser", func() {
		var (
			user *repository.User
			err  error
		)

		BeforeEach(func() {
			user = &repository.User{Username: "alice", PasswordHash: "hash", Role: "user"}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertStub = func(ctx context.Context, record any) error {
					record.(*repository.User).ID = 7
					return nil
				}
			})

			It("should fill in the id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint64(7)))

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				Expect(record).To(BeIdenticalTo(user))
			})
		})

		When("the username exists", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("storage times out", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrTimeout)
			})

			It("should return ErrTimeout", func() {
				Expect(err).To(MatchError(repository.ErrTimeout))
				Expect(err).NotTo(MatchError(repository.ErrStorage))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return ErrStorage wrapping the cause", func() {
				Expect(err).To(MatchError(repository.ErrStorage))
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*repository.User) = repository.User{ID: 3, Username: "alice", Role: "admin"}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint64(3)))
				Expect(user.Role).To(Equal("admin"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return ErrStorage", func() {
				Expect(err).To(MatchError(repository.ErrStorage))
			})
		})
	})

	Describe("UpdateUserRole", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.UpdateUserRole(ctx, 3, "admin")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.SetColumnStub = func(ctx context.Context, entity any, id any, column string, value any) error {
					*entity.(*repository.User) = repository.User{ID: 3, Username: "alice", Role: "admin"}
					return nil
				}
			})

			It("should update the role column", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Role).To(Equal("admin"))

				_, _, id, column, value := fakeStorage.SetColumnArgsForCall(0)
				Expect(id).To(Equal(uint64(3)))
				Expect(column).To(Equal("role"))
				Expect(value).To(Equal("admin"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.SetColumnReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})
})

var _ = Describe("AppRepository", func() {
	var (
		repo        *repository.AppRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewAppRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("CreateApp", func() {
		It("should insert the app", func() {
			app := &repository.App{Name: "Foo"}
			Expect(repo.CreateApp(ctx, app)).To(Succeed())

			_, record := fakeStorage.InsertArgsForCall(0)
			Expect(record).To(BeIdenticalTo(app))
		})

		It("should return ErrStorage on failure", func() {
			fakeStorage.InsertReturns(fakeErr)
			Expect(repo.CreateApp(ctx, &repository.App{Name: "Foo"})).To(MatchError(repository.ErrStorage))
		})
	})

	Describe("GetApp", func() {
		var (
			app repository.App
			err error
		)

		JustBeforeEach(func() {
			app, err = repo.GetApp(ctx, 11)
		})

		When("the app exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*repository.App) = repository.App{ID: 11, Name: "Foo", Downloads: 4}
					return nil
				}
			})

			It("should look it up by id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(app.Name).To(Equal("Foo"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal(uint64(11)))
			})
		})

		When("the app does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrAppNotFound", func() {
				Expect(err).To(MatchError(repository.ErrAppNotFound))
			})
		})
	})

	Describe("ListApps", func() {
		var (
			query repository.AppQuery
			apps  []repository.App
			err   error
		)

		BeforeEach(func() {
			query = repository.AppQuery{Limit: 20}
			fakeStorage.FindStub = func(ctx context.Context, q db.Query, entities any) error {
				*entities.(*[]repository.App) = []repository.App{{ID: 1}, {ID: 2}}
				return nil
			}
		})

		JustBeforeEach(func() {
			apps, err = repo.ListApps(ctx, query)
		})

		It("should order by id when no sort is given", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(apps).To(HaveLen(2))

			_, q, _ := fakeStorage.FindArgsForCall(0)
			Expect(q.Where).To(BeEmpty())
			Expect(q.OrderBy).To(Equal([]db.Order{{Column: "id"}}))
			Expect(q.Limit).To(Equal(20))
		})

		When("filters and a sort are given", func() {
			BeforeEach(func() {
				query = repository.AppQuery{
					Search:         "foo",
					Vendor:         "acme",
					TargetPlatform: "linux",
					Sort:           repository.SortByDownloads,
					Desc:           true,
					AfterID:        40,
					Limit:          10,
					Offset:         30,
				}
			})

			It("should translate them into conditions", func() {
				_, q, _ := fakeStorage.FindArgsForCall(0)
				Expect(q.Where).To(Equal([]db.Condition{
					{Column: "name", Op: db.OpSubstr, Value: "foo"},
					{Column: "vendor", Op: db.OpEq, Value: "acme"},
					{Column: "target_platform", Op: db.OpEq, Value: "linux"},
					{Column: "id", Op: db.OpGt, Value: uint64(40)},
				}))
				Expect(q.OrderBy).To(Equal([]db.Order{
					{Column: "downloads", Desc: true},
					{Column: "id"},
				}))
				Expect(q.Limit).To(Equal(10))
				Expect(q.Offset).To(Equal(30))
			})
		})

		When("storage times out", func() {
			BeforeEach(func() {
				fakeStorage.FindStub = nil
				fakeStorage.FindReturns(db.ErrTimeout)
			})

			It("should return ErrTimeout", func() {
				Expect(err).To(MatchError(repository.ErrTimeout))
			})
		})
	})

	Describe("IncrementDownloads", func() {
		var (
			app repository.App
			err error
		)

		JustBeforeEach(func() {
			app, err = repo.IncrementDownloads(ctx, 5)
		})

		When("the app exists", func() {
			BeforeEach(func() {
				fakeStorage.IncrementStub = func(ctx context.Context, entity any, id any, column string, delta int64) error {
					*entity.(*repository.App) = repository.App{ID: 5, Downloads: 9}
					return nil
				}
			})

			It("should increment the downloads column by one", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(app.Downloads).To(Equal(int64(9)))

				Expect(fakeStorage.IncrementCallCount()).To(Equal(1))
				_, entity, id, column, delta := fakeStorage.IncrementArgsForCall(0)
				Expect(entity).To(BeAssignableToTypeOf(&repository.App{}))
				Expect(id).To(Equal(uint64(5)))
				Expect(column).To(Equal("downloads"))
				Expect(delta).To(Equal(int64(1)))
			})
		})

		When("the app does not exist", func() {
			BeforeEach(func() {
				fakeStorage.IncrementReturns(db.ErrNotFound)
			})

			It("should return ErrAppNotFound", func() {
				Expect(err).To(MatchError(repository.ErrAppNotFound))
			})
		})
	})
})

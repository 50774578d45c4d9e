package core_test

import (
	"context"
	"eoexstore/internal/core"
	"eoexstore/internal/core/fake"
	"eoexstore/internal/repository"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// appsInMemory serves ListApps from apps, honouring AfterID, Offset and Limit.
func appsInMemory(repo *fake.AppRepository, apps []repository.App) {
	repo.ListAppsStub = func(ctx context.Context, q repository.AppQuery) ([]repository.App, error) {
		matched := []repository.App{}
		for _, app := range apps {
			if app.ID > q.AfterID {
				matched = append(matched, app)
			}
		}
		if q.Offset >= len(matched) {
			return []repository.App{}, nil
		}
		matched = matched[q.Offset:]
		if q.Limit < len(matched) {
			matched = matched[:q.Limit]
		}
		return matched, nil
	}
}

func someApps(n int) []repository.App {
	apps := make([]repository.App, n)
	for i := range apps {
		apps[i] = repository.App{ID: uint64(i + 1), Name: fmt.Sprintf("app-%d", i+1)}
	}
	return apps
}

func ids(records []core.AppRecord) []uint64 {
	out := make([]uint64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

var _ = Describe("Catalog", func() {
	var (
		fakeRepo *fake.AppRepository
		ctx      context.Context

		catalog *core.Catalog
	)

	BeforeEach(func() {
		fakeRepo = new(fake.AppRepository)
		ctx = context.Background()

		catalog = core.NewCatalog(zap.NewNop().Sugar(), fakeRepo)
	})

	Describe("CreateApp", func() {
		BeforeEach(func() {
			fakeRepo.CreateAppStub = func(ctx context.Context, app *repository.App) error {
				app.ID = 1
				return nil
			}
		})

		It("should store the app with zero downloads", func() {
			id, err := catalog.CreateApp(ctx, core.AppFields{Name: " Foo ", Vendor: "acme", URL: "https://example.com/foo"})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(uint64(1)))

			_, app := fakeRepo.CreateAppArgsForCall(0)
			Expect(app.Name).To(Equal("Foo"))
			Expect(app.Vendor).To(Equal("acme"))
			Expect(app.Downloads).To(BeZero())
		})

		DescribeTable("should reject invalid fields",
			func(fields core.AppFields) {
				_, err := catalog.CreateApp(ctx, fields)
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreateAppCallCount()).To(BeZero())
			},
			Entry("empty name", core.AppFields{}),
			Entry("blank name", core.AppFields{Name: "   "}),
			Entry("malformed url", core.AppFields{Name: "Foo", URL: "not a url"}),
			Entry("overlong version", core.AppFields{Name: "Foo", Version: string(make([]byte, 51))}),
		)

		When("storage times out", func() {
			BeforeEach(func() {
				fakeRepo.CreateAppStub = nil
				fakeRepo.CreateAppReturns(fmt.Errorf("create app: %w", repository.ErrTimeout))
			})

			It("should return ErrStorageTimeout", func() {
				_, err := catalog.CreateApp(ctx, core.AppFields{Name: "Foo"})
				Expect(err).To(MatchError(core.ErrStorageTimeout))
			})
		})
	})

	Describe("ListApps", func() {
		BeforeEach(func() {
			appsInMemory(fakeRepo, someApps(7))
		})

		It("should default to the first page of 20", func() {
			records, err := catalog.ListApps(ctx, core.AppFilter{}, core.Page{})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(7))

			_, q := fakeRepo.ListAppsArgsForCall(0)
			Expect(q.Limit).To(Equal(core.DefaultPageSize))
			Expect(q.Offset).To(BeZero())
			Expect(q.Sort).To(Equal(repository.SortByID))
		})

		It("should return disjoint pages that cover the catalog", func() {
			var seen []uint64
			for n := 1; n <= 4; n++ {
				records, err := catalog.ListApps(ctx, core.AppFilter{}, core.Page{Number: n, Size: 3})
				Expect(err).NotTo(HaveOccurred())
				seen = append(seen, ids(records)...)
			}
			Expect(seen).To(Equal([]uint64{1, 2, 3, 4, 5, 6, 7}))
		})

		It("should accept the last addressable page", func() {
			records, err := catalog.ListApps(ctx, core.AppFilter{}, core.Page{Number: core.MaxPageNumber, Size: core.MaxPageSize})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())

			_, q := fakeRepo.ListAppsArgsForCall(0)
			Expect(q.Offset).To(BeNumerically(">", 0))
		})

		It("should pass the filter through", func() {
			_, err := catalog.ListApps(ctx, core.AppFilter{
				Query:          " foo ",
				Vendor:         "acme",
				TargetPlatform: "linux",
				Sort:           core.SortDownloads,
				Desc:           true,
			}, core.Page{Number: 2, Size: 5})
			Expect(err).NotTo(HaveOccurred())

			_, q := fakeRepo.ListAppsArgsForCall(0)
			Expect(q).To(Equal(repository.AppQuery{
				Search:         "foo",
				Vendor:         "acme",
				TargetPlatform: "linux",
				Sort:           repository.SortByDownloads,
				Desc:           true,
				Limit:          5,
				Offset:         5,
			}))
		})

		DescribeTable("should reject invalid input",
			func(filter core.AppFilter, page core.Page) {
				_, err := catalog.ListApps(ctx, filter, page)
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.ListAppsCallCount()).To(BeZero())
			},
			Entry("unknown sort", core.AppFilter{Sort: "size"}, core.Page{}),
			Entry("negative page", core.AppFilter{}, core.Page{Number: -1}),
			Entry("page too large", core.AppFilter{}, core.Page{Size: core.MaxPageSize + 1}),
			Entry("page number whose offset overflows", core.AppFilter{}, core.Page{Number: math.MaxInt, Size: core.DefaultPageSize}),
			Entry("page number past the last addressable page", core.AppFilter{}, core.Page{Number: core.MaxPageNumber + 1, Size: core.MaxPageSize}),
		)
	})

	Describe("Apps", func() {
		collect := func(filter core.AppFilter, pageSize int) ([]uint64, error) {
			var out []uint64
			for app, err := range catalog.Apps(ctx, filter, pageSize) {
				if err != nil {
					return out, err
				}
				out = append(out, app.ID)
			}
			return out, nil
		}

		BeforeEach(func() {
			appsInMemory(fakeRepo, someApps(5))
		})

		It("should walk every app with keyset pages", func() {
			got, err := collect(core.AppFilter{}, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]uint64{1, 2, 3, 4, 5}))

			Expect(fakeRepo.ListAppsCallCount()).To(Equal(3))
			_, q := fakeRepo.ListAppsArgsForCall(2)
			Expect(q.AfterID).To(Equal(uint64(4)))
			Expect(q.Offset).To(BeZero())
		})

		It("should start over on every range", func() {
			first, err := collect(core.AppFilter{}, 2)
			Expect(err).NotTo(HaveOccurred())
			second, err := collect(core.AppFilter{}, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("should stop fetching when the consumer stops", func() {
			for app, err := range catalog.Apps(ctx, core.AppFilter{}, 2) {
				Expect(err).NotTo(HaveOccurred())
				Expect(app.ID).To(Equal(uint64(1)))
				break
			}
			Expect(fakeRepo.ListAppsCallCount()).To(Equal(1))
		})

		It("should yield nothing for an empty catalog", func() {
			appsInMemory(fakeRepo, nil)
			got, err := collect(core.AppFilter{}, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})

		It("should reject orderings other than ascending id", func() {
			_, err := collect(core.AppFilter{Sort: core.SortName}, 2)
			Expect(err).To(MatchError(core.ErrValidation))
			Expect(fakeRepo.ListAppsCallCount()).To(BeZero())
		})

		It("should end with the storage error", func() {
			fakeRepo.ListAppsStub = nil
			fakeRepo.ListAppsReturns(nil, fmt.Errorf("list apps: %w", repository.ErrStorage))

			_, err := collect(core.AppFilter{}, 2)
			Expect(err).To(MatchError(core.ErrStorage))
		})
	})

	Describe("GetApp", func() {
		It("should return the app", func() {
			fakeRepo.GetAppReturns(repository.App{ID: 1, Name: "Foo", Downloads: 3}, nil)

			app, err := catalog.GetApp(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Name).To(Equal("Foo"))
			Expect(app.Downloads).To(Equal(int64(3)))
		})

		It("should return ErrNotFound for an unknown id", func() {
			fakeRepo.GetAppReturns(repository.App{}, repository.ErrAppNotFound)

			_, err := catalog.GetApp(ctx, 42)
			Expect(err).To(MatchError(core.ErrNotFound))
		})
	})

	Describe("RecordDownload", func() {
		It("should return the counter after the increment", func() {
			fakeRepo.IncrementDownloadsReturns(repository.App{ID: 1, Name: "Foo", Downloads: 1}, nil)

			app, err := catalog.RecordDownload(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Downloads).To(Equal(int64(1)))

			_, id := fakeRepo.IncrementDownloadsArgsForCall(0)
			Expect(id).To(Equal(uint64(1)))
			Expect(fakeRepo.GetAppCallCount()).To(BeZero())
		})

		It("should not lose concurrent downloads", func() {
			var downloads atomic.Int64
			fakeRepo.IncrementDownloadsStub = func(ctx context.Context, id uint64) (repository.App, error) {
				return repository.App{ID: id, Downloads: downloads.Add(1)}, nil
			}

			const n = 50
			var wg sync.WaitGroup
			for range n {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := catalog.RecordDownload(ctx, 1)
					Expect(err).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()

			Expect(fakeRepo.IncrementDownloadsCallCount()).To(Equal(n))
			Expect(downloads.Load()).To(Equal(int64(n)))
		})

		It("should return ErrNotFound for an unknown id", func() {
			fakeRepo.IncrementDownloadsReturns(repository.App{}, repository.ErrAppNotFound)

			_, err := catalog.RecordDownload(ctx, 42)
			Expect(err).To(MatchError(core.ErrNotFound))
		})

		It("should hide storage details", func() {
			fakeRepo.IncrementDownloadsReturns(repository.App{}, fmt.Errorf("increment downloads: %w: connection reset", repository.ErrStorage))

			_, err := catalog.RecordDownload(ctx, 1)
			Expect(err).To(Equal(core.ErrStorage))
		})
	})
})

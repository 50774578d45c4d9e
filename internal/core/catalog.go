package core

import (
	"context"
	"eoexstore/internal/repository"
	"errors"
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"
)

var sortByName = map[string]repository.AppSort{
	"":            repository.SortByID,
	SortID:        repository.SortByID,
	SortName:      repository.SortByName,
	SortDownloads: repository.SortByDownloads,
	SortCreatedAt: repository.SortByCreatedAt,
}

// Catalog manages app metadata and download counters.
type Catalog struct {
	logs *zap.SugaredLogger
	repo AppRepository
}

func NewCatalog(logger *zap.SugaredLogger, repo AppRepository) *Catalog {
	return &Catalog{
		logs: logger,
		repo: repo,
	}
}

func (c *Catalog) CreateApp(ctx context.Context, fields AppFields) (uint64, error) {
	if err := fields.Validate(); err != nil {
		return 0, validationError(err)
	}

	app := repository.App{
		Name:           strings.TrimSpace(fields.Name),
		Description:    fields.Description,
		Vendor:         fields.Vendor,
		Version:        fields.Version,
		TargetPlatform: fields.TargetPlatform,
		Size:           fields.Size,
		URL:            fields.URL,
		HostSource:     fields.HostSource,
		Revisions:      fields.Revisions,
		Bugs:           fields.Bugs,
		Downloads:      0,
	}
	if err := c.repo.CreateApp(ctx, &app); err != nil {
		return 0, storageFailure(c.logs, "create app", err)
	}

	c.logs.Infow("app created", "appId", app.ID, "name", app.Name)
	return app.ID, nil
}

// ListApps returns one page of the filtered catalog, ordered by id unless filter.Sort says otherwise.
func (c *Catalog) ListApps(ctx context.Context, filter AppFilter, page Page) ([]AppRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, validationError(err)
	}

	page = page.normalized()
	if err := page.Validate(); err != nil {
		return nil, validationError(err)
	}

	q := toAppQuery(filter)
	q.Limit = page.Size
	q.Offset = (page.Number - 1) * page.Size

	apps, err := c.repo.ListApps(ctx, q)
	if err != nil {
		return nil, storageFailure(c.logs, "list apps", err)
	}

	return toAppRecords(apps), nil
}

// Apps returns a lazy sequence over every app matching filter in ascending id order.
// Pages of pageSize are fetched on demand with keyset paging; ranging over the
// sequence again starts from the first app. The first error ends the sequence.
func (c *Catalog) Apps(ctx context.Context, filter AppFilter, pageSize int) iter.Seq2[AppRecord, error] {
	return func(yield func(AppRecord, error) bool) {
		if err := filter.Validate(); err != nil {
			yield(AppRecord{}, validationError(err))
			return
		}
		if (filter.Sort != "" && filter.Sort != SortID) || filter.Desc {
			yield(AppRecord{}, validationError(errors.New("sequences are always in ascending id order")))
			return
		}

		size := pageSize
		if size <= 0 {
			size = DefaultPageSize
		}
		if size > MaxPageSize {
			size = MaxPageSize
		}

		var afterID uint64
		for {
			q := toAppQuery(filter)
			q.AfterID = afterID
			q.Limit = size

			apps, err := c.repo.ListApps(ctx, q)
			if err != nil {
				yield(AppRecord{}, storageFailure(c.logs, "list apps", err))
				return
			}

			for _, app := range apps {
				if !yield(toAppRecord(app), nil) {
					return
				}
			}

			if len(apps) < size {
				return
			}
			afterID = apps[len(apps)-1].ID
		}
	}
}

func (c *Catalog) GetApp(ctx context.Context, id uint64) (AppRecord, error) {
	app, err := c.repo.GetApp(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppNotFound) {
			return AppRecord{}, fmt.Errorf("app %d: %w", id, ErrNotFound)
		}
		return AppRecord{}, storageFailure(c.logs, "get app", err)
	}

	return toAppRecord(app), nil
}

// RecordDownload increments the download counter of app id in storage and returns the updated app.
func (c *Catalog) RecordDownload(ctx context.Context, id uint64) (AppRecord, error) {
	app, err := c.repo.IncrementDownloads(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppNotFound) {
			return AppRecord{}, fmt.Errorf("app %d: %w", id, ErrNotFound)
		}
		return AppRecord{}, storageFailure(c.logs, "increment downloads", err)
	}

	return toAppRecord(app), nil
}

func toAppQuery(filter AppFilter) repository.AppQuery {
	return repository.AppQuery{
		Search:         strings.TrimSpace(filter.Query),
		Vendor:         filter.Vendor,
		TargetPlatform: filter.TargetPlatform,
		Sort:           sortByName[filter.Sort],
		Desc:           filter.Desc,
	}
}

func toAppRecords(apps []repository.App) []AppRecord {
	records := make([]AppRecord, len(apps))
	for i, app := range apps {
		records[i] = toAppRecord(app)
	}
	return records
}

func toAppRecord(app repository.App) AppRecord {
	return AppRecord{
		ID: app.ID,
		AppFields: AppFields{
			Name:           app.Name,
			Description:    app.Description,
			Vendor:         app.Vendor,
			Version:        app.Version,
			TargetPlatform: app.TargetPlatform,
			Size:           app.Size,
			URL:            app.URL,
			HostSource:     app.HostSource,
			Revisions:      app.Revisions,
			Bugs:           app.Bugs,
		},
		Downloads: app.Downloads,
		CreatedAt: app.CreatedAt,
	}
}

package payload

import (
	"eoexstore/internal/core"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jellydator/validation"
)

type CreateAppRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Vendor         string `json:"vendor"`
	Version        string `json:"version"`
	TargetPlatform string `json:"target_platform"`
	Size           string `json:"size"`
	URL            string `json:"url"`
	HostSource     string `json:"host_source"`
	Revisions      string `json:"revisions"`
	Bugs           string `json:"bugs"`
}

func (c CreateAppRequest) Validate() error {
	name := strings.TrimSpace(c.Name)
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.By(func(any) error {
			return validation.Validate(name, validation.Required)
		})),
	)
}

func (c CreateAppRequest) ToCoreAppFields() core.AppFields {
	return core.AppFields{
		Name:           c.Name,
		Description:    c.Description,
		Vendor:         c.Vendor,
		Version:        c.Version,
		TargetPlatform: c.TargetPlatform,
		Size:           c.Size,
		URL:            c.URL,
		HostSource:     c.HostSource,
		Revisions:      c.Revisions,
		Bugs:           c.Bugs,
	}
}

const (
	orderAsc  = "asc"
	orderDesc = "desc"
)

// ListAppsRequest is the query string of a catalog listing. page is 1-based and pageSize is
// 1..core.MaxPageSize; an absent parameter means the first page of core.DefaultPageSize
// items, an explicit zero is rejected. sort is one of id, name, downloads, created_at and
// order is asc or desc.
type ListAppsRequest struct {
	Page     int
	PageSize int
	Query    string
	Vendor   string
	Platform string
	Sort     string
	Order    string
}

// ParseListAppsRequest reads page, pageSize, q, vendor, platform, sort and order from values.
// Absent keys keep their zero value.
func ParseListAppsRequest(values url.Values) (ListAppsRequest, error) {
	req := ListAppsRequest{
		Query:    values.Get("q"),
		Vendor:   values.Get("vendor"),
		Platform: values.Get("platform"),
		Sort:     values.Get("sort"),
		Order:    strings.ToLower(values.Get("order")),
	}

	var err error
	if req.Page, err = intParam(values, "page"); err != nil {
		return ListAppsRequest{}, err
	}
	if req.PageSize, err = intParam(values, "pageSize"); err != nil {
		return ListAppsRequest{}, err
	}

	return req, nil
}

func (l ListAppsRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Page, validation.Min(1), validation.Max(core.MaxPageNumber)),
		validation.Field(&l.PageSize, validation.Min(1), validation.Max(core.MaxPageSize)),
		validation.Field(&l.Sort, validation.In(core.SortID, core.SortName, core.SortDownloads, core.SortCreatedAt)),
		validation.Field(&l.Order, validation.In(orderAsc, orderDesc)),
	)
}

func (l ListAppsRequest) ToCoreFilter() core.AppFilter {
	return core.AppFilter{
		Query:          l.Query,
		Vendor:         l.Vendor,
		TargetPlatform: l.Platform,
		Sort:           l.Sort,
		Desc:           l.Order == orderDesc,
	}
}

func (l ListAppsRequest) ToCorePage() core.Page {
	return core.Page{
		Number: l.Page,
		Size:   l.PageSize,
	}
}

func intParam(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: must be an integer", key)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s: must be at least 1", key)
	}
	return n, nil
}

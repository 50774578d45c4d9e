package core

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// Role is the closed set of user roles. The zero value is not a valid user role; as a
// requirement it means "any authenticated user".
type Role uint8

const (
	RoleNone Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return ""
	}
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleNone, fmt.Errorf("unknown role %q", s)
	}
}

// Satisfies reports whether r meets the required role. Admin satisfies everything.
func (r Role) Satisfies(required Role) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser:
		return required == RoleUser || required == RoleNone
	default:
		return false
	}
}

func (r Role) MarshalText() ([]byte, error) {
	if r == RoleNone {
		return nil, fmt.Errorf("cannot marshal empty role")
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthMessage) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&a.Password, validation.Required),
	)
}

// Identity is what an accepted session token proves about its bearer.
type Identity struct {
	UserID   uint64
	Username string
	Role     Role
}

type UserRecord struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AppFields struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Vendor         string `json:"vendor,omitempty"`
	Version        string `json:"version,omitempty"`
	TargetPlatform string `json:"target_platform,omitempty"`
	Size           string `json:"size,omitempty"`
	URL            string `json:"url,omitempty"`
	HostSource     string `json:"host_source,omitempty"`
	Revisions      string `json:"revisions,omitempty"`
	Bugs           string `json:"bugs,omitempty"`
}

func (f AppFields) Validate() error {
	name := strings.TrimSpace(f.Name)
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.By(func(any) error {
			return validation.Validate(name, validation.Required, validation.Length(1, 255))
		})),
		validation.Field(&f.Vendor, validation.Length(0, 255)),
		validation.Field(&f.Version, validation.Length(0, 50)),
		validation.Field(&f.TargetPlatform, validation.Length(0, 50)),
		validation.Field(&f.Size, validation.Length(0, 50)),
		validation.Field(&f.URL, validation.Length(0, 255), is.URL),
		validation.Field(&f.HostSource, validation.Length(0, 255)),
		validation.Field(&f.Revisions, validation.Length(0, 255)),
		validation.Field(&f.Bugs, validation.Length(0, 255)),
	)
}

type AppRecord struct {
	ID uint64 `json:"id"`
	AppFields
	Downloads int64     `json:"downloads"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	SortID        = "id"
	SortName      = "name"
	SortDownloads = "downloads"
	SortCreatedAt = "created_at"
)

// AppFilter narrows and orders a catalog listing. Empty fields do not filter.
type AppFilter struct {
	Query          string
	Vendor         string
	TargetPlatform string
	Sort           string
	Desc           bool
}

func (f AppFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Sort, validation.In(SortID, SortName, SortDownloads, SortCreatedAt)),
		validation.Field(&f.Query, validation.Length(0, 255)),
	)
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPageNumber keeps the row offset of the last page within an int.
	MaxPageNumber = math.MaxInt / MaxPageSize
)

// Page selects a 1-based page. Zero values fall back to the first page of DefaultPageSize.
type Page struct {
	Number int
	Size   int
}

func (p Page) normalized() Page {
	if p.Number == 0 {
		p.Number = 1
	}
	if p.Size == 0 {
		p.Size = DefaultPageSize
	}
	return p
}

func (p Page) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Number, validation.Min(1), validation.Max(MaxPageNumber)),
		validation.Field(&p.Size, validation.Min(1), validation.Max(MaxPageSize)),
	)
}

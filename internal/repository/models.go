package repository

import "time"

type User struct {
	ID           uint64    `gorm:"primaryKey"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null"` // "admin" or "user", enforced by a CHECK constraint
	CreatedAt    time.Time `gorm:"not null"`
}

type App struct {
	ID             uint64    `gorm:"primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	Vendor         string    `gorm:"type:varchar(255);index"`
	Version        string    `gorm:"type:varchar(50)"`
	TargetPlatform string    `gorm:"type:varchar(50);index"`
	Size           string    `gorm:"type:varchar(50)"`
	URL            string    `gorm:"column:url;type:varchar(255)"`
	HostSource     string    `gorm:"type:varchar(255)"`
	Revisions      string    `gorm:"type:varchar(255)"`
	Bugs           string    `gorm:"type:varchar(255)"`
	Downloads      int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

type AppSort int

const (
	SortByID AppSort = iota
	SortByName
	SortByDownloads
	SortByCreatedAt
)

var sortColumns = map[AppSort]string{
	SortByID:        "id",
	SortByName:      "name",
	SortByDownloads: "downloads",
	SortByCreatedAt: "created_at",
}

// AppQuery selects a page of apps. AfterID enables keyset paging and is only
// meaningful together with SortByID.
type AppQuery struct {
	Search         string
	Vendor         string
	TargetPlatform string
	Sort           AppSort
	Desc           bool
	AfterID        uint64
	Limit          int
	Offset         int
}

package model

import "time"

// ManagedFile is a document stored in the blob store and tracked per
// municipality and folder.
type ManagedFile struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Type             string    `gorm:"type:varchar(100);not null" json:"type"`
	Size             int       `gorm:"not null" json:"size"`
	URL              string    `gorm:"column:url;type:varchar(255);not null" json:"url"`
	MunicipalityName string    `gorm:"type:varchar(255);not null" json:"municipalityName"`
	Folder           string    `gorm:"type:varchar(100);not null" json:"folder"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

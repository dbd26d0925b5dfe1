package model

import "time"

// NotificationType enum constants
const (
	NotificationTypeSystem   = "system"
	NotificationTypeReminder = "reminder"
)

// Notification is a dashboard notification or reminder.
type Notification struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Type        string    `gorm:"type:varchar(50);not null" json:"type"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"autoCreateTime" json:"date"`
	EventDate   *string   `gorm:"type:date" json:"eventDate"`
	Read        bool      `gorm:"not null;default:false" json:"read"`
	Link        *string   `gorm:"type:varchar(255)" json:"link"`
}

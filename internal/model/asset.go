package model

import "github.com/shopspring/decimal"

// AssetStatus enum constants
const (
	AssetStatusInUse       = "Em Uso"
	AssetStatusMaintenance = "Em Manutenção"
	AssetStatusDamaged     = "Danificado"
	AssetStatusDiscarded   = "Descartado"
)

// Asset is a piece of office property, optionally assigned to an employee.
// Asset lists always carry the full maintenance log.
type Asset struct {
	ID                   int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string              `gorm:"type:varchar(255);not null" json:"name"`
	Description          string              `gorm:"type:text;not null" json:"description"`
	PurchaseDate         string              `gorm:"type:date;not null" json:"purchaseDate"`
	PurchaseValue        decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"purchaseValue"`
	Location             string              `gorm:"type:varchar(255);not null" json:"location"`
	Status               string              `gorm:"type:varchar(50);not null" json:"status"`
	AssignedToEmployeeID *int                `gorm:"index" json:"assignedToEmployeeId"`
	AssignedTo           *Employee           `gorm:"foreignKey:AssignedToEmployeeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	MaintenanceLog       []MaintenanceRecord `gorm:"foreignKey:AssetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"maintenanceLog"`
}

// MaintenanceRecord is one maintenance event in an asset's log, removed
// together with the asset.
type MaintenanceRecord struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	AssetID     int             `gorm:"not null;index" json:"assetId"`
	Date        string          `gorm:"type:date;not null" json:"date"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Cost        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
}

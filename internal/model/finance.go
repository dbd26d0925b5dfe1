package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enum constants
const (
	TransactionTypeReceivable = "receivable"
	TransactionTypePayable    = "payable"
)

// TransactionStatus enum constants
const (
	TransactionStatusPending = "pending"
	TransactionStatusPaid    = "paid"
)

// Municipality is a client municipality contract with its paid/pending
// balances. This is the backing table of the "financeData" entity.
type Municipality struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Municipality    string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"municipality"`
	Paid            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"paid"`
	Pending         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"pending"`
	ContractEndDate string          `gorm:"type:date;not null" json:"contractEndDate"`
	CoatOfArmsURL   *string         `gorm:"column:coat_of_arms_url;type:varchar(255)" json:"coatOfArmsUrl"`
}

// Transaction is a receivable or payable entry, optionally tied to a
// municipality. Deleting the municipality keeps the transaction and nulls
// the reference.
type Transaction struct {
	ID             int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Type           string          `gorm:"type:varchar(50);not null" json:"type"`
	Description    string          `gorm:"type:text;not null" json:"description"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	DueDate        string          `gorm:"type:date;not null" json:"dueDate"`
	PaymentDate    *string         `gorm:"type:date" json:"paymentDate"`
	Status         string          `gorm:"type:varchar(50);not null" json:"status"`
	MunicipalityID *int            `gorm:"index" json:"municipalityId"`
	Municipality   *Municipality   `gorm:"foreignKey:MunicipalityID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}

// PaymentNote is an uploaded monthly payment note document for a
// municipality.
type PaymentNote struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ReferenceMonth   string    `gorm:"type:varchar(7);not null" json:"referenceMonth"` // YYYY-MM
	Description      string    `gorm:"type:text;not null" json:"description"`
	UploadDate       time.Time `gorm:"autoCreateTime" json:"uploadDate"`
	MunicipalityName string    `gorm:"type:varchar(255);not null" json:"municipalityName"`
	FileURL          string    `gorm:"column:file_url;type:varchar(255);not null" json:"fileUrl"`
	FileName         string    `gorm:"type:varchar(255);not null" json:"fileName"`
	FileSize         int       `gorm:"not null" json:"fileSize"`
	FileType         string    `gorm:"type:varchar(100);not null" json:"fileType"`
}

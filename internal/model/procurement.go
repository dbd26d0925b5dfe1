package model

import "github.com/shopspring/decimal"

// InternalExpenseCategory enum constants
const (
	InternalExpenseCategoryOffice      = "Material de Escritório"
	InternalExpenseCategoryFixedBills  = "Contas Fixas"
	InternalExpenseCategoryMaintenance = "Manutenção"
	InternalExpenseCategoryMarketing   = "Marketing"
	InternalExpenseCategoryOther       = "Outros"
)

// Supplier is a vendor providing goods or services to the office.
type Supplier struct {
	ID            int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	Category      string `gorm:"type:varchar(100);not null" json:"category"`
	ContactPerson string `gorm:"type:varchar(255);not null" json:"contactPerson"`
	Email         string `gorm:"type:varchar(255);not null" json:"email"`
	Phone         string `gorm:"type:varchar(50);not null" json:"phone"`
}

// InternalExpense is an operating cost of the office itself, optionally
// linked to a supplier. Deleting the supplier nulls the reference.
type InternalExpense struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        string          `gorm:"type:date;not null" json:"date"`
	SupplierID  *int            `gorm:"index" json:"supplierId"`
	Supplier    *Supplier       `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}

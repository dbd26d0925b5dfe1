package model

import "github.com/shopspring/decimal"

// TaskStatus enum constants
const (
	TaskStatusDone       = "Concluída"
	TaskStatusInProgress = "Em Andamento"
	TaskStatusPending    = "Pendente"
)

// ExpenseType enum constants
const (
	ExpenseTypeSalary        = "Salário"
	ExpenseTypeAdvance       = "Vale"
	ExpenseTypeTravel        = "Viagem"
	ExpenseTypeReimbursement = "Reembolso"
	ExpenseTypeOther         = "Outro"
)

// PaymentStatus enum constants
const (
	PaymentStatusPaid    = "Pago"
	PaymentStatusPending = "Pendente"
)

// LeaveType enum constants
const (
	LeaveTypeVacation = "Férias"
	LeaveTypeMedical  = "Licença Médica"
	LeaveTypeOther    = "Outro"
)

// LeaveStatus enum constants
const (
	LeaveStatusPending  = "Pendente"
	LeaveStatusApproved = "Aprovada"
	LeaveStatusRejected = "Rejeitada"
)

// Employee is a municipal staff member. Deleting an employee cascades to
// their tasks, expenses, payroll records and leave requests.
type Employee struct {
	ID         int              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string           `gorm:"type:varchar(255);not null" json:"name"`
	Position   string           `gorm:"type:varchar(255);not null" json:"position"`
	Department string           `gorm:"type:varchar(100);not null" json:"department"`
	Email      string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	BaseSalary *decimal.Decimal `gorm:"type:decimal(10,2)" json:"baseSalary"`
}

// Task is a unit of tracked work assigned to an employee.
type Task struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID  int             `gorm:"not null;index" json:"employeeId"`
	Employee    Employee        `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Date        string          `gorm:"type:date;not null" json:"date"`
	Hours       decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"hours"`
	Status      string          `gorm:"type:varchar(50);not null" json:"status"`
}

// EmployeeExpense is an HR expense tied to an employee (salary advance,
// travel, reimbursement...).
type EmployeeExpense struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID  int             `gorm:"not null;index" json:"employeeId"`
	Employee    Employee        `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Type        string          `gorm:"type:varchar(50);not null" json:"type"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        string          `gorm:"type:date;not null" json:"date"`
	Status      string          `gorm:"type:varchar(50);not null" json:"status"`
	Receipt     *string         `gorm:"type:varchar(255)" json:"receipt"`
}

// PayrollRecord is one month of payroll for an employee.
type PayrollRecord struct {
	ID         int             `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID int             `gorm:"not null;index" json:"employeeId"`
	Employee   Employee        `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	MonthYear  string          `gorm:"type:varchar(7);not null" json:"monthYear"` // YYYY-MM
	BaseSalary decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"baseSalary"`
	Benefits   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"benefits"`
	Deductions decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"deductions"`
	NetPay     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"netPay"`
	PayDate    string          `gorm:"type:date;not null" json:"payDate"`
}

// LeaveRequest is a vacation or medical leave request.
type LeaveRequest struct {
	ID         int      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID int      `gorm:"not null;index" json:"employeeId"`
	Employee   Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Type       string   `gorm:"type:varchar(50);not null" json:"type"`
	StartDate  string   `gorm:"type:date;not null" json:"startDate"`
	EndDate    string   `gorm:"type:date;not null" json:"endDate"`
	Reason     string   `gorm:"type:text;not null" json:"reason"`
	Status     string   `gorm:"type:varchar(50);not null" json:"status"`
}

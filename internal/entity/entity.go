package entity

// Entity identifies one of the business-data collections exposed through the
// generic router. The set is closed: Parse is the only way in, and the store
// switches exhaustively over these constants, so an unknown name can never
// reach the database layer.
type Entity string

const (
	Employees        Entity = "employees"
	Tasks            Entity = "tasks"
	FinanceData      Entity = "financeData" // municipalities table
	Profiles         Entity = "profiles"
	EmployeeExpenses Entity = "employeeExpenses"
	InternalExpenses Entity = "internalExpenses"
	Assets           Entity = "assets"
	Suppliers        Entity = "suppliers"
	Transactions     Entity = "transactions"
	Payrolls         Entity = "payrolls" // payroll_records table
	LeaveRequests    Entity = "leaveRequests"
	ExternalSystems  Entity = "externalSystems"
	UpdatePosts      Entity = "updatePosts"
	ManagedFiles     Entity = "managedFiles"
	PaymentNotes     Entity = "paymentNotes"
	Notifications    Entity = "notifications"
)

// All returns every routable entity, in the order collections are keyed in
// the bulk-fetch response.
func All() []Entity {
	return []Entity{
		Employees, Tasks, FinanceData, Profiles,
		EmployeeExpenses, InternalExpenses, Assets, Suppliers,
		Transactions, Payrolls, LeaveRequests, ExternalSystems,
		UpdatePosts, ManagedFiles, PaymentNotes, Notifications,
	}
}

// Parse maps a request-supplied entity name onto the closed set.
func Parse(name string) (Entity, bool) {
	switch e := Entity(name); e {
	case Employees, Tasks, FinanceData, Profiles,
		EmployeeExpenses, InternalExpenses, Assets, Suppliers,
		Transactions, Payrolls, LeaveRequests, ExternalSystems,
		UpdatePosts, ManagedFiles, PaymentNotes, Notifications:
		return e, true
	default:
		return "", false
	}
}

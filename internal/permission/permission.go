package permission

import "log"

// Role is one of the fixed user roles.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleDirector    Role = "director"
	RoleCoordinator Role = "coordinator"
	RoleSupport     Role = "support"
)

// Action is the operation being attempted against a resource. Every action on
// an entity is currently gated by the same capability flag; the parameter
// exists so a read/write split can be introduced without changing callers.
type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionView   Action = "view"
)

// Capability names a single boolean permission flag.
type Capability string

const (
	CapViewDashboard          Capability = "canViewDashboard"
	CapManageDocuments        Capability = "canManageDocuments"
	CapManageEmployees        Capability = "canManageEmployees"
	CapManageTasks            Capability = "canManageTasks"
	CapManageFinance          Capability = "canManageFinance"
	CapManageNotes            Capability = "canManageNotes"
	CapManageHR               Capability = "canManageHR"
	CapViewReports            Capability = "canViewReports"
	CapManageInternalExpenses Capability = "canManageInternalExpenses"
	CapManageAssets           Capability = "canManageAssets"
	CapManageSettings         Capability = "canManageSettings"
	CapManageUsers            Capability = "canManageUsers"
	CapPostUpdates            Capability = "canPostUpdates"
	CapManageEmail            Capability = "canManageEmail"
)

// Set is the full collection of capability flags assigned to one role.
type Set struct {
	CanViewDashboard          bool `json:"canViewDashboard"`
	CanManageDocuments        bool `json:"canManageDocuments"`
	CanManageEmployees        bool `json:"canManageEmployees"`
	CanManageTasks            bool `json:"canManageTasks"`
	CanManageFinance          bool `json:"canManageFinance"`
	CanManageNotes            bool `json:"canManageNotes"`
	CanManageHR               bool `json:"canManageHR"`
	CanViewReports            bool `json:"canViewReports"`
	CanManageInternalExpenses bool `json:"canManageInternalExpenses"`
	CanManageAssets           bool `json:"canManageAssets"`
	CanManageSettings         bool `json:"canManageSettings"`
	CanManageUsers            bool `json:"canManageUsers"`
	CanPostUpdates            bool `json:"canPostUpdates"`
	CanManageEmail            bool `json:"canManageEmail"`
}

// Has reports whether the set grants the given capability.
func (s Set) Has(c Capability) bool {
	switch c {
	case CapViewDashboard:
		return s.CanViewDashboard
	case CapManageDocuments:
		return s.CanManageDocuments
	case CapManageEmployees:
		return s.CanManageEmployees
	case CapManageTasks:
		return s.CanManageTasks
	case CapManageFinance:
		return s.CanManageFinance
	case CapManageNotes:
		return s.CanManageNotes
	case CapManageHR:
		return s.CanManageHR
	case CapViewReports:
		return s.CanViewReports
	case CapManageInternalExpenses:
		return s.CanManageInternalExpenses
	case CapManageAssets:
		return s.CanManageAssets
	case CapManageSettings:
		return s.CanManageSettings
	case CapManageUsers:
		return s.CanManageUsers
	case CapPostUpdates:
		return s.CanPostUpdates
	case CapManageEmail:
		return s.CanManageEmail
	default:
		return false
	}
}

// Defaults returns the built-in role → permission set table.
func Defaults() map[Role]Set {
	return map[Role]Set{
		RoleAdmin: {
			CanViewDashboard: true, CanManageDocuments: true, CanManageEmployees: true,
			CanManageTasks: true, CanManageFinance: true, CanManageNotes: true,
			CanManageHR: true, CanViewReports: true, CanManageInternalExpenses: true,
			CanManageAssets: true, CanManageSettings: true, CanManageUsers: true,
			CanPostUpdates: true, CanManageEmail: true,
		},
		RoleDirector: {
			CanViewDashboard: true, CanManageDocuments: true, CanManageEmployees: true,
			CanManageTasks: true, CanManageFinance: true, CanManageNotes: true,
			CanManageHR: true, CanViewReports: true, CanManageInternalExpenses: true,
			CanManageAssets: true, CanManageUsers: true, CanManageEmail: true,
		},
		RoleCoordinator: {
			CanViewDashboard: true, CanManageEmployees: true, CanManageTasks: true,
			CanManageHR: true, CanViewReports: true,
		},
		RoleSupport: {
			CanViewDashboard: true, CanManageTasks: true,
		},
	}
}

// entityCapabilities maps each gated resource to the capability that guards
// it. Resources without an entry are denied for every non-admin role.
var entityCapabilities = map[string]Capability{
	"employees":        CapManageEmployees,
	"tasks":            CapManageTasks,
	"financeData":      CapManageFinance,
	"municipalities":   CapManageFinance,
	"profiles":         CapManageUsers,
	"employeeExpenses": CapManageHR,
	"internalExpenses": CapManageInternalExpenses,
	"assets":           CapManageAssets,
	"suppliers":        CapManageInternalExpenses,
	"transactions":     CapManageFinance,
	"payrolls":         CapManageHR,
	"leaveRequests":    CapManageHR,
	"externalSystems":  CapManageSettings,
	"updatePosts":      CapPostUpdates,
	"managedFiles":     CapManageDocuments,
	"paymentNotes":     CapManageNotes,
	"notifications":    CapViewDashboard,
	"dashboard":        CapViewDashboard,
	"settings":         CapManageSettings,
}

// Checker decides allow/deny for a (role, entity, action) triple against an
// injected permission table.
type Checker struct {
	perms map[Role]Set
}

// NewChecker builds a Checker over the given role table.
func NewChecker(perms map[Role]Set) *Checker {
	return &Checker{perms: perms}
}

// NewDefaultChecker builds a Checker over the built-in table.
func NewDefaultChecker() *Checker {
	return NewChecker(Defaults())
}

// Check reports whether role may perform action on entity. Absent roles are
// denied, admin is allowed unconditionally, and entities without a capability
// mapping are denied (fail closed).
func (c *Checker) Check(role Role, entity string, action Action) bool {
	if role == "" {
		return false
	}
	if role == RoleAdmin {
		return true
	}

	capability, ok := entityCapabilities[entity]
	if !ok {
		log.Printf("WARNING: no permission mapping found for entity: %s", entity)
		return false
	}

	set, ok := c.perms[role]
	if !ok {
		return false
	}

	return set.Has(capability)
}

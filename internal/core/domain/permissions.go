package domain

// Role is the access level assigned to a user.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleViewer  Role = "Viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleViewer
}

// Action identifies a permission-gated operation.
type Action string

const (
	ActionCreate           Action = "create"
	ActionRead             Action = "read"
	ActionUpdate           Action = "update"
	ActionDelete           Action = "delete"
	ActionManageCategories Action = "manageCategories"
	ActionManageUsers      Action = "manageUsers"
	ActionUpdateStatus     Action = "updateStatus"
	ActionUpdateLocation   Action = "updateLocation"
	ActionViewReports      Action = "viewReports"
)

// Permit reports whether role may perform action. It is a total function
// over the role/action enums: unknown values are always denied. The table
// is fixed configuration; changing it means redeploying.
func Permit(role Role, action Action) bool {
	switch role {
	case RoleAdmin:
		switch action {
		case ActionCreate, ActionRead, ActionUpdate, ActionDelete,
			ActionManageCategories, ActionManageUsers,
			ActionUpdateStatus, ActionUpdateLocation, ActionViewReports:
			return true
		}
	case RoleManager:
		switch action {
		case ActionRead, ActionUpdateStatus, ActionUpdateLocation, ActionViewReports:
			return true
		}
	case RoleViewer:
		switch action {
		case ActionRead, ActionViewReports:
			return true
		}
	}
	return false
}

package domain

// Role is the account type of a user. The set is closed.
type Role string

const (
	RoleBuilder  Role = "builder"
	RoleEmployee Role = "employee"
	RoleTrade    Role = "trade"
	RoleAdmin    Role = "admin"
	RoleClient   Role = "client"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleBuilder, RoleEmployee, RoleTrade, RoleAdmin, RoleClient:
		return true
	}
	return false
}

// DeficiencyStatus is the remediation state of a deficiency.
type DeficiencyStatus string

const (
	StatusIncomplete      DeficiencyStatus = "incomplete"
	StatusPendingApproval DeficiencyStatus = "pending_approval"
	StatusComplete        DeficiencyStatus = "complete"
)

// AllStatuses lists the statuses in lifecycle order.
var AllStatuses = []DeficiencyStatus{StatusIncomplete, StatusPendingApproval, StatusComplete}

func (s DeficiencyStatus) String() string { return string(s) }

func (s DeficiencyStatus) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusPendingApproval, StatusComplete:
		return true
	}
	return false
}

// Label returns the human readable name shown in filter options.
func (s DeficiencyStatus) Label() string {
	switch s {
	case StatusIncomplete:
		return "Incomplete"
	case StatusPendingApproval:
		return "Pending Approval"
	case StatusComplete:
		return "Complete"
	}
	return string(s)
}

// IsOutstanding reports whether the deficiency still needs work from a trade.
func (s DeficiencyStatus) IsOutstanding() bool {
	return s == StatusIncomplete || s == StatusPendingApproval
}

// SortKey is a column a deficiency list may be ordered by.
type SortKey string

const (
	SortByUpdatedAt       SortKey = "updated_at"
	SortByID              SortKey = "id"
	SortByAddress         SortKey = "address"
	SortByLocation        SortKey = "location"
	SortByStatus          SortKey = "status"
	SortByTradeName       SortKey = "trade_name"
	SortByCreatedAt       SortKey = "created_at"
	SortByDueDate         SortKey = "due_date"
	SortByOutstandingDays SortKey = "outstanding_days"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortByUpdatedAt, SortByID, SortByAddress, SortByLocation, SortByStatus,
		SortByTradeName, SortByCreatedAt, SortByDueDate, SortByOutstandingDays:
		return true
	}
	return false
}

package models

// Role drives the capability resolver. The closed set is
// admin / manager / user; anything else is treated as user upstream.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// PersonRole tags an Anagrafica as the unit owner or a tenant.
type PersonRole string

const (
	PersonOwner  PersonRole = "owner"
	PersonTenant PersonRole = "tenant"
)

func (r PersonRole) Valid() bool {
	return r == PersonOwner || r == PersonTenant
}

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved:
		return true
	}
	return false
}

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type DocCategory string

const (
	DocContract DocCategory = "contract"
	DocNotice   DocCategory = "notice"
	DocMinutes  DocCategory = "minutes"
	DocOther    DocCategory = "other"
)

func (c DocCategory) Valid() bool {
	switch c {
	case DocContract, DocNotice, DocMinutes, DocOther:
		return true
	}
	return false
}

type EventCategory string

const (
	EventAssembly    EventCategory = "assembly"
	EventMaintenance EventCategory = "maintenance"
	EventDeadline    EventCategory = "deadline"
	EventOther       EventCategory = "other"
)

func (c EventCategory) Valid() bool {
	switch c {
	case EventAssembly, EventMaintenance, EventDeadline, EventOther:
		return true
	}
	return false
}

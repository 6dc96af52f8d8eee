package services

import (
	"github.com/baleight/AmministrazioneCondomini/internal/models"
)

// View is one of the closed set of application screens.
type View string

const (
	ViewDashboard      View = "dashboard"
	ViewBuildings      View = "buildings"
	ViewUnits          View = "units"
	ViewPeople         View = "people"
	ViewTickets        View = "tickets"
	ViewCommunications View = "communications"
	ViewDocuments      View = "documents"
	ViewAgenda         View = "agenda"
	ViewProfile        View = "profile"
)

// Action is a CRUD capability checked per entity kind.
type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Entity kinds actions are checked against.
type Entity string

const (
	EntityCondominio    Entity = "condomini"
	EntityAnagrafica    Entity = "anagrafiche"
	EntityImmobile      Entity = "immobili"
	EntitySegnalazione  Entity = "segnalazioni"
	EntityComunicazione Entity = "comunicazioni"
	EntityDocumento     Entity = "documenti"
	EntityEvento        Entity = "eventi"
)

type roleSet uint8

const (
	admins   roleSet = 1 << iota // admin only
	managers                     // manager included
	users                        // user included
)

const (
	staffOnly = admins | managers
	everyone  = admins | managers | users
)

func (s roleSet) has(r models.Role) bool {
	switch r {
	case models.RoleAdmin:
		return s&admins != 0
	case models.RoleManager:
		return s&managers != 0
	case models.RoleUser:
		return s&users != 0
	}
	return false
}

// Every view in the closed set has an explicit entry; anything not
// listed resolves to no access.
var viewAccess = map[View]roleSet{
	ViewDashboard:      staffOnly,
	ViewBuildings:      staffOnly,
	ViewUnits:          staffOnly,
	ViewPeople:         staffOnly,
	ViewTickets:        everyone,
	ViewCommunications: everyone,
	ViewDocuments:      staffOnly,
	ViewAgenda:         everyone,
	ViewProfile:        everyone,
}

// Static (entity, action) table. Permissions are not parameterized by
// record ownership: a manager may edit any unit, or none.
var actionAccess = map[Entity]map[Action]roleSet{
	EntityCondominio: {
		ActionCreate: admins,
		ActionEdit:   admins,
		ActionDelete: admins,
	},
	EntityAnagrafica: {
		ActionCreate: staffOnly,
		ActionEdit:   staffOnly,
		ActionDelete: admins,
	},
	EntityImmobile: {
		ActionCreate: staffOnly,
		ActionEdit:   staffOnly,
		ActionDelete: staffOnly,
	},
	EntitySegnalazione: {
		ActionCreate: everyone,
		ActionEdit:   staffOnly,
		ActionDelete: admins,
	},
	EntityComunicazione: {
		ActionCreate: staffOnly,
		ActionEdit:   staffOnly,
		ActionDelete: staffOnly,
	},
	EntityDocumento: {
		ActionCreate: staffOnly,
		ActionEdit:   staffOnly,
		ActionDelete: staffOnly,
	},
	EntityEvento: {
		ActionCreate: staffOnly,
		ActionEdit:   staffOnly,
		ActionDelete: staffOnly,
	},
}

// NormalizeRole maps anything outside the closed role set to the least
// privileged role instead of failing.
func NormalizeRole(r models.Role) models.Role {
	if r.Valid() {
		return r
	}
	return models.RoleUser
}

// CanAccessView answers whether the role may open the view. Pure and
// cheap; recompute per call.
func CanAccessView(role models.Role, view View) bool {
	set, ok := viewAccess[view]
	if !ok {
		return false
	}
	return set.has(NormalizeRole(role))
}

// Can answers whether the role may perform the action on the entity
// kind. Unknown pairs deny.
func Can(role models.Role, action Action, entity Entity) bool {
	byAction, ok := actionAccess[entity]
	if !ok {
		return false
	}
	set, ok := byAction[action]
	if !ok {
		return false
	}
	return set.has(NormalizeRole(role))
}

// PermissionSet is the resolved capability snapshot handed to clients
// so the UI can hide what the server would refuse anyway.
type PermissionSet struct {
	Role  models.Role                `json:"role"`
	Views map[View]bool              `json:"views"`
	Can   map[Entity]map[Action]bool `json:"can"`
}

func ResolvePermissions(role models.Role) PermissionSet {
	role = NormalizeRole(role)
	views := make(map[View]bool, len(viewAccess))
	for v := range viewAccess {
		views[v] = CanAccessView(role, v)
	}
	can := make(map[Entity]map[Action]bool, len(actionAccess))
	for e, byAction := range actionAccess {
		can[e] = make(map[Action]bool, len(byAction))
		for a := range byAction {
			can[e][a] = Can(role, a, e)
		}
	}
	return PermissionSet{Role: role, Views: views, Can: can}
}

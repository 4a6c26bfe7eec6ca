package policy

import "github.com/planroom/teamplan-api/internal/domain"

// Action is the HTTP-verb-equivalent operation a caller requests.
type Action string

// The four actions the engine recognizes.
const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource identifies the resource family a rule set applies to.
type Resource string

// Resource families. Account and Session cover the unauthenticated sign-up
// and login endpoints, which are always allowed.
const (
	ResourceProject      Resource = "project"
	ResourceTask         Resource = "task"
	ResourceMilestone    Resource = "milestone"
	ResourceNotification Resource = "notification"
	ResourceAccount      Resource = "account"
	ResourceSession      Resource = "session"
)

// Decision is the verdict of a policy evaluation.
type Decision int

// The two possible verdicts.
const (
	Deny Decision = iota
	Allow
)

// Allowed reports whether the decision permits the action.
func (d Decision) Allowed() bool {
	return d == Allow
}

// String returns the verdict name for logging.
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// ruleTable maps a role to the set of actions it may perform. Read access is
// deliberately universal across all tables: this is a read-mostly
// collaboration tool, and mutation is tiered by blast radius instead.
type ruleTable map[domain.Role]map[Action]bool

// managerEditable governs projects and milestones: only admins originate or
// remove records, managers may adjust in-flight state.
var managerEditable = ruleTable{
	domain.RoleAdmin: {
		ActionRead:   true,
		ActionCreate: true,
		ActionUpdate: true,
		ActionDelete: true,
	},
	domain.RoleManager: {
		ActionRead:   true,
		ActionUpdate: true,
	},
	domain.RoleMember: {
		ActionRead: true,
	},
}

// managerManaged governs tasks. Its verdicts currently coincide with
// managerEditable, but it is a distinct rule set: task policy can diverge
// without touching project rules.
var managerManaged = ruleTable{
	domain.RoleAdmin: {
		ActionRead:   true,
		ActionCreate: true,
		ActionUpdate: true,
		ActionDelete: true,
	},
	domain.RoleManager: {
		ActionRead:   true,
		ActionUpdate: true,
	},
	domain.RoleMember: {
		ActionRead: true,
	},
}

// adminGated governs notifications: everyone reads, only admins write.
var adminGated = ruleTable{
	domain.RoleAdmin: {
		ActionRead:   true,
		ActionCreate: true,
		ActionUpdate: true,
		ActionDelete: true,
	},
	domain.RoleManager: {
		ActionRead: true,
	},
	domain.RoleMember: {
		ActionRead: true,
	},
}

// tables binds each resource family to its rule set.
var tables = map[Resource]ruleTable{
	ResourceProject:      managerEditable,
	ResourceMilestone:    managerEditable,
	ResourceTask:         managerManaged,
	ResourceNotification: adminGated,
}

// Decide evaluates whether a caller with the given role may perform the
// action on the resource family. It is total over the input domain: unknown
// roles, actions, and resources all evaluate to Deny, except the account and
// session resources, which are open to unauthenticated callers.
func Decide(role domain.Role, action Action, resource Resource) Decision {
	// Sign-up and login are reachable without an authenticated role.
	if resource == ResourceAccount || resource == ResourceSession {
		return Allow
	}

	table, ok := tables[resource]
	if !ok {
		return Deny
	}

	if table[role][action] {
		return Allow
	}
	return Deny
}

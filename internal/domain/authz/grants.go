package authz

// Scope says how far a role's grant for one action reaches: nowhere, the
// principal's own records, or every record of the kind.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeOwn
	ScopeAll
)

type actionScopes map[Action]Scope

// grants is the row-level permission matrix, one entry per kind and role.
// Missing cells mean no access. The asymmetries here are deliberate and must
// not be collapsed into a rank hierarchy: HR has no discipline or reward
// access, reads only its own leave, and never approves leave; managers issue
// discipline, rewards and performance records for anyone but otherwise act
// only on their own rows.
var grants = map[Kind]map[Role]actionScopes{
	KindEmployeeProfile: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
		RoleManager:  {ActionRead: ScopeAll},
		RoleEmployee: {ActionRead: ScopeOwn},
	},
	KindDocument: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
		RoleEmployee: {ActionCreate: ScopeOwn, ActionRead: ScopeOwn},
	},
	KindDiscipline: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll},
		RoleManager:  {ActionCreate: ScopeAll, ActionRead: ScopeAll},
		RoleEmployee: {ActionRead: ScopeOwn},
	},
	KindReward: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll},
		RoleManager:  {ActionCreate: ScopeAll, ActionRead: ScopeAll},
		RoleEmployee: {ActionRead: ScopeOwn},
	},
	KindEducation: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll},
		RoleEmployee: {ActionCreate: ScopeOwn, ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
	},
	KindExperience: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll},
		RoleEmployee: {ActionCreate: ScopeOwn, ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
	},
	KindInsurance: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll},
		RoleEmployee: {ActionCreate: ScopeOwn, ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
	},
	KindLeave: {
		RoleBoard:    {ActionCreate: ScopeOwn, ActionRead: ScopeAll, ActionApprove: ScopeAll, ActionReject: ScopeAll},
		RoleHR:       {ActionCreate: ScopeOwn, ActionRead: ScopeOwn},
		RoleManager:  {ActionCreate: ScopeOwn, ActionRead: ScopeOwn, ActionApprove: ScopeAll, ActionReject: ScopeAll},
		RoleEmployee: {ActionCreate: ScopeOwn, ActionRead: ScopeOwn},
	},
	KindPayroll: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll},
		RoleEmployee: {ActionRead: ScopeOwn},
	},
	KindPerformanceGoal: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll},
		RoleManager:  {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll},
		RoleEmployee: {ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
	},
	KindPerformanceReview: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll},
		RoleManager:  {ActionCreate: ScopeAll, ActionRead: ScopeAll},
		RoleEmployee: {ActionRead: ScopeOwn},
	},
	KindTrainingProgram: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
		RoleManager:  {ActionRead: ScopeAll},
		RoleEmployee: {ActionRead: ScopeAll},
	},
	KindTrainingEnrollment: {
		RoleBoard:    {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionDelete: ScopeAll},
		RoleHR:       {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionDelete: ScopeAll},
		RoleManager:  {ActionRead: ScopeAll},
		RoleEmployee: {ActionCreate: ScopeOwn, ActionRead: ScopeOwn, ActionDelete: ScopeOwn},
	},
	KindJobPosting: {
		RoleBoard:   {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
		RoleHR:      {ActionCreate: ScopeAll, ActionRead: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
		RoleManager: {ActionRead: ScopeAll},
	},
	KindNotification: {
		RoleBoard:    {ActionRead: ScopeOwn, ActionUpdate: ScopeOwn, ActionDelete: ScopeOwn},
		RoleHR:       {ActionRead: ScopeOwn, ActionUpdate: ScopeOwn, ActionDelete: ScopeOwn},
		RoleManager:  {ActionRead: ScopeOwn, ActionUpdate: ScopeOwn, ActionDelete: ScopeOwn},
		RoleEmployee: {ActionRead: ScopeOwn, ActionUpdate: ScopeOwn, ActionDelete: ScopeOwn},
	},
}

func grantFor(kind Kind, role Role, action Action) Scope {
	return grants[kind][role][action]
}

// IsOwner compares the principal's employee link against the record's owning
// employee. Identity equality only; there is no transitive ownership.
func IsOwner(p Principal, ownerEmployeeID string) bool {
	return ownerEmployeeID != "" && p.EmployeeID != "" && p.EmployeeID == ownerEmployeeID
}

// HasElevatedAccess reports whether the role may touch records of this kind
// that it does not own. It is derived from the grant matrix: any all-records
// scope on any action counts.
func HasElevatedAccess(role Role, kind Kind) bool {
	for _, scope := range grants[kind][role] {
		if scope == ScopeAll {
			return true
		}
	}
	return false
}

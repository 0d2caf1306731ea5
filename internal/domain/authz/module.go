package authz

// Module is a coarse feature area gate checked before any row-level rule.
type Module string

const (
	ModuleRecruitment Module = "recruitment"
	ModuleEmployees   Module = "employees"
	ModuleTimekeeping Module = "timekeeping"
	ModuleTraining    Module = "training"
	ModuleLeave       Module = "leave"
	ModulePayroll     Module = "payroll"
	ModulePerformance Module = "performance"
	ModuleReports     Module = "reports"
)

var modulePermissions = map[Module][]Role{
	ModuleRecruitment: {RoleBoard, RoleHR, RoleManager},
	ModuleEmployees:   {RoleBoard, RoleHR, RoleManager},
	ModuleTimekeeping: {RoleBoard, RoleHR, RoleManager, RoleEmployee},
	ModuleTraining:    {RoleBoard, RoleHR, RoleManager, RoleEmployee},
	ModuleLeave:       {RoleBoard, RoleHR, RoleManager, RoleEmployee},
	ModulePayroll:     {RoleBoard, RoleHR},
	ModulePerformance: {RoleBoard, RoleHR, RoleManager},
	ModuleReports:     {RoleBoard, RoleHR, RoleManager},
}

// CanAccessModule is the coarse gate. Unknown modules fail closed. Passing it
// is necessary but not sufficient; row-level and tier rules still apply.
func CanAccessModule(role Role, module Module) bool {
	for _, permitted := range modulePermissions[module] {
		if permitted == role {
			return true
		}
	}
	return false
}

var kindModules = map[Kind]Module{
	KindEmployeeProfile:    ModuleEmployees,
	KindDocument:           ModuleEmployees,
	KindEducation:          ModuleEmployees,
	KindExperience:         ModuleEmployees,
	KindInsurance:          ModuleEmployees,
	KindDiscipline:         ModuleEmployees,
	KindReward:             ModuleEmployees,
	KindLeave:              ModuleLeave,
	KindPayroll:            ModulePayroll,
	KindPerformanceGoal:    ModulePerformance,
	KindPerformanceReview:  ModulePerformance,
	KindTrainingProgram:    ModuleTraining,
	KindTrainingEnrollment: ModuleTraining,
	KindJobPosting:         ModuleRecruitment,
}

// ModuleOf maps a record kind to the feature area that gates access beyond a
// principal's own records. Notifications are per-user and carry no module.
func ModuleOf(kind Kind) (Module, bool) {
	module, ok := kindModules[kind]
	return module, ok
}

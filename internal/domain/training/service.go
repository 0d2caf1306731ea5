package training

import (
	"context"

	"hrms/internal/domain/authz"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) CreateProgram(ctx context.Context, p authz.Principal, program Program) (Program, error) {
	resource := authz.Resource{Kind: authz.KindTrainingProgram}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return Program{}, authz.NewError(decision.Reason, "program creation denied")
	}
	id, err := s.Store.CreateProgram(ctx, program)
	if err != nil {
		return Program{}, err
	}
	return s.Store.GetProgram(ctx, id)
}

func (s *Service) GetProgram(ctx context.Context, p authz.Principal, programID string) (Program, error) {
	resource := authz.Resource{Kind: authz.KindTrainingProgram}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return Program{}, authz.NewError(decision.Reason, "program read denied")
	}
	return s.Store.GetProgram(ctx, programID)
}

// Programs have no owner, so listing is either everything or nothing.
func (s *Service) ListPrograms(ctx context.Context, p authz.Principal, limit, offset int) ([]Program, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindTrainingProgram}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "program listing denied")
	}
	return s.Store.ListPrograms(ctx, limit, offset)
}

// Enroll adds an employee to a program. Employees self-enroll; HR and the
// board may enroll anyone.
func (s *Service) Enroll(ctx context.Context, p authz.Principal, programID, employeeID string) (string, error) {
	if employeeID == "" {
		employeeID = p.EmployeeID
	}
	resource := authz.Resource{Kind: authz.KindTrainingEnrollment, OwnerEmployeeID: employeeID}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return "", authz.NewError(decision.Reason, "enrollment denied")
	}
	if _, err := s.Store.GetProgram(ctx, programID); err != nil {
		return "", err
	}
	return s.Store.Enroll(ctx, programID, employeeID)
}

func (s *Service) ListEnrollments(ctx context.Context, p authz.Principal, programID string, limit, offset int) ([]Enrollment, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindTrainingEnrollment}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "enrollment listing denied")
	}
	return s.Store.ListEnrollments(ctx, programID, *decision.Filter, limit, offset)
}

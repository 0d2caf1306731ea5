package employees

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

func (s *Service) CreateProfile(ctx context.Context, p authz.Principal, input ProfileInput) (Employee, error) {
	resource := authz.Resource{Kind: authz.KindEmployeeProfile}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return Employee{}, authz.NewError(decision.Reason, "employee creation denied")
	}
	if input.Status == "" {
		input.Status = "ACTIVE"
	}
	id, err := s.Store.Create(ctx, input)
	if err != nil {
		return Employee{}, err
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) GetProfile(ctx context.Context, p authz.Principal, employeeID string) (Employee, error) {
	emp, err := s.Store.Get(ctx, employeeID)
	if err != nil {
		return Employee{}, err
	}
	resource := authz.Resource{Kind: authz.KindEmployeeProfile, OwnerEmployeeID: emp.ID}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return Employee{}, authz.NewError(decision.Reason, "employee read denied")
	}
	return emp, nil
}

func (s *Service) UpdateProfile(ctx context.Context, p authz.Principal, employeeID string, input ProfileInput) (Employee, error) {
	emp, err := s.Store.Get(ctx, employeeID)
	if err != nil {
		return Employee{}, err
	}
	resource := authz.Resource{Kind: authz.KindEmployeeProfile, OwnerEmployeeID: emp.ID}
	if decision := authz.Decide(p, resource, authz.ActionUpdate); !decision.Allowed {
		return Employee{}, authz.NewError(decision.Reason, "employee update denied")
	}
	if err := s.Store.Update(ctx, employeeID, input); err != nil {
		return Employee{}, err
	}
	return s.Store.Get(ctx, employeeID)
}

func (s *Service) DeleteProfile(ctx context.Context, p authz.Principal, employeeID string) error {
	emp, err := s.Store.Get(ctx, employeeID)
	if err != nil {
		return err
	}
	resource := authz.Resource{Kind: authz.KindEmployeeProfile, OwnerEmployeeID: emp.ID}
	if decision := authz.Decide(p, resource, authz.ActionDelete); !decision.Allowed {
		return authz.NewError(decision.Reason, "employee delete denied")
	}
	return s.Store.Delete(ctx, employeeID)
}

func (s *Service) ListProfiles(ctx context.Context, p authz.Principal, limit, offset int) ([]Employee, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindEmployeeProfile}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "employee listing denied")
	}
	return s.Store.List(ctx, *decision.Filter, limit, offset)
}

// Sub-records (education, experience, insurance) are owned by the employee
// they describe. Reads on another employee's sub-records take the elevated
// path, same as the profile itself.

func (s *Service) AddEducation(ctx context.Context, p authz.Principal, record Education) (string, error) {
	resource := authz.Resource{Kind: authz.KindEducation, OwnerEmployeeID: record.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return "", authz.NewError(decision.Reason, "education record creation denied")
	}
	return s.Store.AddEducation(ctx, record)
}

func (s *Service) ListEducation(ctx context.Context, p authz.Principal, employeeID string) ([]Education, error) {
	resource := authz.Resource{Kind: authz.KindEducation, OwnerEmployeeID: employeeID}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "education listing denied")
	}
	return s.Store.ListEducation(ctx, employeeID)
}

func (s *Service) AddExperience(ctx context.Context, p authz.Principal, record Experience) (string, error) {
	resource := authz.Resource{Kind: authz.KindExperience, OwnerEmployeeID: record.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return "", authz.NewError(decision.Reason, "experience record creation denied")
	}
	return s.Store.AddExperience(ctx, record)
}

func (s *Service) ListExperience(ctx context.Context, p authz.Principal, employeeID string) ([]Experience, error) {
	resource := authz.Resource{Kind: authz.KindExperience, OwnerEmployeeID: employeeID}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "experience listing denied")
	}
	return s.Store.ListExperience(ctx, employeeID)
}

func (s *Service) AddInsurance(ctx context.Context, p authz.Principal, record Insurance) (string, error) {
	resource := authz.Resource{Kind: authz.KindInsurance, OwnerEmployeeID: record.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return "", authz.NewError(decision.Reason, "insurance record creation denied")
	}
	return s.Store.AddInsurance(ctx, record)
}

func (s *Service) ListInsurance(ctx context.Context, p authz.Principal, employeeID string) ([]Insurance, error) {
	resource := authz.Resource{Kind: authz.KindInsurance, OwnerEmployeeID: employeeID}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "insurance listing denied")
	}
	return s.Store.ListInsurance(ctx, employeeID)
}

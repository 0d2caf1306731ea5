package leave

import (
	"context"
	"time"

	"hrms/internal/domain/authz"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// CreateRequest files a new PENDING request for the acting principal. The
// authorization decision is made here so every transport reaches storage
// through the same gate.
func (s *Service) CreateRequest(ctx context.Context, p authz.Principal, reason string, startDate, endDate time.Time) (Request, error) {
	resource := authz.Resource{Kind: authz.KindLeave, OwnerEmployeeID: p.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return Request{}, authz.NewError(decision.Reason, "leave request creation denied")
	}
	days, err := CalculateDays(startDate, endDate)
	if err != nil {
		return Request{}, err
	}
	id, err := s.Store.Create(ctx, p.EmployeeID, reason, startDate, endDate, days)
	if err != nil {
		return Request{}, err
	}
	return s.Store.Get(ctx, id)
}

// GetRequest loads one request and enforces the read decision against the
// loaded row's owner.
func (s *Service) GetRequest(ctx context.Context, p authz.Principal, requestID string) (Request, error) {
	req, err := s.Store.Get(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	resource := authz.Resource{Kind: authz.KindLeave, OwnerEmployeeID: req.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return Request{}, authz.NewError(decision.Reason, "leave request read denied")
	}
	return req, nil
}

// ListRequests returns the requests visible to the principal, filtered at the
// storage layer by the predicate the decision carries.
func (s *Service) ListRequests(ctx context.Context, p authz.Principal, limit, offset int) ([]Request, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindLeave}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "leave listing denied")
	}
	return s.Store.List(ctx, *decision.Filter, limit, offset)
}

// Decide runs an approve or reject through the state machine. The caller's
// current view of the row is re-fetched first and the store applies the
// outcome only if the state is unchanged, so two racing approvers cannot both
// succeed.
func (s *Service) Decide(ctx context.Context, p authz.Principal, requestID string, action authz.Action, reason string) (Request, error) {
	req, err := s.Store.Get(ctx, requestID)
	if err != nil {
		return Request{}, err
	}

	resource := authz.Resource{Kind: authz.KindLeave, OwnerEmployeeID: req.EmployeeID}
	if decision := authz.Decide(p, resource, action); !decision.Allowed {
		return Request{}, authz.NewError(decision.Reason, "leave transition denied")
	}

	outcome, err := Transition(req.Status, action, p, reason, time.Now())
	if err != nil {
		return Request{}, err
	}
	if err := s.Store.ApplyTransition(ctx, requestID, outcome); err != nil {
		return Request{}, err
	}
	return s.Store.Get(ctx, requestID)
}

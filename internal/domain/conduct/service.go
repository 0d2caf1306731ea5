package conduct

import (
	"context"
	"errors"

	"hrms/internal/domain/authz"
)

var ErrBadCategory = errors.New("category must be DISCIPLINE or REWARD")

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// Issue files a disciplinary action or reward against an employee. Only roles
// with an all-records grant on the category's kind can issue, which excludes
// HR entirely for both categories.
func (s *Service) Issue(ctx context.Context, p authz.Principal, record Record) (Record, error) {
	if !record.Category.Valid() {
		return Record{}, ErrBadCategory
	}
	resource := authz.Resource{Kind: record.Category.Kind(), OwnerEmployeeID: record.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return Record{}, authz.NewError(decision.Reason, "conduct record creation denied")
	}
	record.IssuedBy = p.ActorID()
	id, err := s.Store.Create(ctx, record)
	if err != nil {
		return Record{}, err
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, p authz.Principal, recordID string) (Record, error) {
	rec, err := s.Store.Get(ctx, recordID)
	if err != nil {
		return Record{}, err
	}
	resource := authz.Resource{Kind: rec.Category.Kind(), OwnerEmployeeID: rec.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return Record{}, authz.NewError(decision.Reason, "conduct record read denied")
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context, p authz.Principal, category Category, limit, offset int) ([]Record, error) {
	if !category.Valid() {
		return nil, ErrBadCategory
	}
	decision := authz.Decide(p, authz.Resource{Kind: category.Kind()}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "conduct listing denied")
	}
	return s.Store.List(ctx, category, *decision.Filter, limit, offset)
}

package recruitment

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

func (s *Service) CreatePosting(ctx context.Context, p authz.Principal, input PostingInput) (Posting, error) {
	resource := authz.Resource{Kind: authz.KindJobPosting}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return Posting{}, authz.NewError(decision.Reason, "posting creation denied")
	}
	if input.Status == "" {
		input.Status = "OPEN"
	}
	id, err := s.Store.Create(ctx, input)
	if err != nil {
		return Posting{}, err
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) GetPosting(ctx context.Context, p authz.Principal, postingID string) (Posting, error) {
	resource := authz.Resource{Kind: authz.KindJobPosting}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return Posting{}, authz.NewError(decision.Reason, "posting read denied")
	}
	return s.Store.Get(ctx, postingID)
}

func (s *Service) UpdatePosting(ctx context.Context, p authz.Principal, postingID string, input PostingInput) (Posting, error) {
	resource := authz.Resource{Kind: authz.KindJobPosting}
	if decision := authz.Decide(p, resource, authz.ActionUpdate); !decision.Allowed {
		return Posting{}, authz.NewError(decision.Reason, "posting update denied")
	}
	if err := s.Store.Update(ctx, postingID, input); err != nil {
		return Posting{}, err
	}
	return s.Store.Get(ctx, postingID)
}

func (s *Service) DeletePosting(ctx context.Context, p authz.Principal, postingID string) error {
	resource := authz.Resource{Kind: authz.KindJobPosting}
	if decision := authz.Decide(p, resource, authz.ActionDelete); !decision.Allowed {
		return authz.NewError(decision.Reason, "posting delete denied")
	}
	return s.Store.Delete(ctx, postingID)
}

func (s *Service) ListPostings(ctx context.Context, p authz.Principal, limit, offset int) ([]Posting, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindJobPosting}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "posting listing denied")
	}
	return s.Store.List(ctx, false, limit, offset)
}

// ListPublished is the public careers page feed. It bypasses the decision
// core on purpose: only published postings are returned and no principal is
// required.
func (s *Service) ListPublished(ctx context.Context, limit, offset int) ([]Posting, error) {
	return s.Store.List(ctx, true, limit, offset)
}

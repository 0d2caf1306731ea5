package documents

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

// Upload stores document metadata. When the decision carries a forced tier the
// requested access level is overridden: only HR and board uploads may label a
// document above the EMPLOYEE tier.
func (s *Service) Upload(ctx context.Context, p authz.Principal, input UploadInput) (Document, error) {
	if !input.AccessLevel.Valid() {
		input.AccessLevel = authz.LevelEmployee
	}
	resource := authz.Resource{
		Kind:            authz.KindDocument,
		OwnerEmployeeID: input.EmployeeID,
		AccessLevel:     input.AccessLevel,
	}
	decision := authz.Decide(p, resource, authz.ActionCreate)
	if !decision.Allowed {
		return Document{}, authz.NewError(decision.Reason, "document upload denied")
	}
	if decision.ForcedTier != "" {
		input.AccessLevel = decision.ForcedTier
	}
	id, err := s.Store.Create(ctx, input, p.UserID)
	if err != nil {
		return Document{}, err
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, p authz.Principal, documentID string) (Document, error) {
	doc, err := s.Store.Get(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	resource := authz.Resource{
		Kind:            authz.KindDocument,
		OwnerEmployeeID: doc.EmployeeID,
		AccessLevel:     doc.AccessLevel,
	}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return Document{}, authz.NewError(decision.Reason, "document read denied")
	}
	return doc, nil
}

func (s *Service) Delete(ctx context.Context, p authz.Principal, documentID string) error {
	doc, err := s.Store.Get(ctx, documentID)
	if err != nil {
		return err
	}
	resource := authz.Resource{
		Kind:            authz.KindDocument,
		OwnerEmployeeID: doc.EmployeeID,
		AccessLevel:     doc.AccessLevel,
	}
	if decision := authz.Decide(p, resource, authz.ActionDelete); !decision.Allowed {
		return authz.NewError(decision.Reason, "document delete denied")
	}
	return s.Store.Delete(ctx, documentID)
}

func (s *Service) List(ctx context.Context, p authz.Principal, limit, offset int) ([]Document, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindDocument}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "document listing denied")
	}
	return s.Store.List(ctx, *decision.Filter, limit, offset)
}

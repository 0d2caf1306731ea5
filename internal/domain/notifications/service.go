package notifications

import (
	"context"

	"hrms/internal/domain/authz"
)

// Service exposes the principal-facing notification surface. Notifications
// are strictly own-records for every staff role; there is no elevated path
// and no module gate.
type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) List(ctx context.Context, p authz.Principal, unreadOnly bool, limit, offset int) ([]Notification, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindNotification}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "notification listing denied")
	}
	return s.Store.List(ctx, *decision.Filter, unreadOnly, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, p authz.Principal, notificationID string) (Notification, error) {
	n, err := s.Store.Get(ctx, notificationID)
	if err != nil {
		return Notification{}, err
	}
	resource := authz.Resource{Kind: authz.KindNotification, OwnerEmployeeID: n.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionUpdate); !decision.Allowed {
		return Notification{}, authz.NewError(decision.Reason, "notification update denied")
	}
	if err := s.Store.MarkRead(ctx, notificationID); err != nil {
		return Notification{}, err
	}
	return s.Store.Get(ctx, notificationID)
}

func (s *Service) Delete(ctx context.Context, p authz.Principal, notificationID string) error {
	n, err := s.Store.Get(ctx, notificationID)
	if err != nil {
		return err
	}
	resource := authz.Resource{Kind: authz.KindNotification, OwnerEmployeeID: n.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionDelete); !decision.Allowed {
		return authz.NewError(decision.Reason, "notification delete denied")
	}
	return s.Store.Delete(ctx, notificationID)
}

package performance

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

func (s *Service) CreateGoal(ctx context.Context, p authz.Principal, goal Goal) (Goal, error) {
	resource := authz.Resource{Kind: authz.KindPerformanceGoal, OwnerEmployeeID: goal.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return Goal{}, authz.NewError(decision.Reason, "goal creation denied")
	}
	if goal.Status == "" {
		goal.Status = "OPEN"
	}
	goal.CreatedBy = p.ActorID()
	id, err := s.Store.CreateGoal(ctx, goal)
	if err != nil {
		return Goal{}, err
	}
	return s.Store.GetGoal(ctx, id)
}

func (s *Service) GetGoal(ctx context.Context, p authz.Principal, goalID string) (Goal, error) {
	goal, err := s.Store.GetGoal(ctx, goalID)
	if err != nil {
		return Goal{}, err
	}
	resource := authz.Resource{Kind: authz.KindPerformanceGoal, OwnerEmployeeID: goal.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return Goal{}, authz.NewError(decision.Reason, "goal read denied")
	}
	return goal, nil
}

// UpdateGoalStatus lets an employee progress their own goal while managers and
// the board update any goal through the elevated path.
func (s *Service) UpdateGoalStatus(ctx context.Context, p authz.Principal, goalID, status string) (Goal, error) {
	goal, err := s.Store.GetGoal(ctx, goalID)
	if err != nil {
		return Goal{}, err
	}
	resource := authz.Resource{Kind: authz.KindPerformanceGoal, OwnerEmployeeID: goal.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionUpdate); !decision.Allowed {
		return Goal{}, authz.NewError(decision.Reason, "goal update denied")
	}
	if err := s.Store.UpdateGoalStatus(ctx, goalID, status); err != nil {
		return Goal{}, err
	}
	return s.Store.GetGoal(ctx, goalID)
}

func (s *Service) ListGoals(ctx context.Context, p authz.Principal, limit, offset int) ([]Goal, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindPerformanceGoal}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "goal listing denied")
	}
	return s.Store.ListGoals(ctx, *decision.Filter, limit, offset)
}

func (s *Service) CreateReview(ctx context.Context, p authz.Principal, review Review) (Review, error) {
	resource := authz.Resource{Kind: authz.KindPerformanceReview, OwnerEmployeeID: review.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionCreate); !decision.Allowed {
		return Review{}, authz.NewError(decision.Reason, "review creation denied")
	}
	review.ReviewerID = p.ActorID()
	id, err := s.Store.CreateReview(ctx, review)
	if err != nil {
		return Review{}, err
	}
	return s.Store.GetReview(ctx, id)
}

func (s *Service) GetReview(ctx context.Context, p authz.Principal, reviewID string) (Review, error) {
	review, err := s.Store.GetReview(ctx, reviewID)
	if err != nil {
		return Review{}, err
	}
	resource := authz.Resource{Kind: authz.KindPerformanceReview, OwnerEmployeeID: review.EmployeeID}
	if decision := authz.Decide(p, resource, authz.ActionRead); !decision.Allowed {
		return Review{}, authz.NewError(decision.Reason, "review read denied")
	}
	return review, nil
}

func (s *Service) ListReviews(ctx context.Context, p authz.Principal, limit, offset int) ([]Review, error) {
	decision := authz.Decide(p, authz.Resource{Kind: authz.KindPerformanceReview}, authz.ActionList)
	if !decision.Allowed {
		return nil, authz.NewError(decision.Reason, "review listing denied")
	}
	return s.Store.ListReviews(ctx, *decision.Filter, limit, offset)
}

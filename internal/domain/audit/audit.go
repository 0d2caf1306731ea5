package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Event struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actorId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Allowed    bool            `json:"allowed"`
	RequestID  string          `json:"requestId"`
	IP         string          `json:"ip"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type Service struct {
	DB *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

// Record writes one audit event. Failures are logged and swallowed so a full
// audit table never takes the business operation down with it.
func (s *Service) Record(ctx context.Context, event Event) {
	var details any
	if len(event.Details) > 0 {
		details = event.Details
	}
	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_events (actor_id, action, entity_type, entity_id, allowed, request_id, ip, details)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
  `, event.ActorID, event.Action, event.EntityType, event.EntityID, event.Allowed,
		event.RequestID, event.IP, details)
	if err != nil {
		slog.Warn("audit event not recorded", "action", event.Action, "error", err)
	}
}

// Denied records a rejected authorization attempt. Denials are audited with
// the same shape as allowed actions so access reviews see both sides.
func (s *Service) Denied(ctx context.Context, actorID, action, entityType, entityID, requestID, ip string) {
	s.Record(ctx, Event{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Allowed:    false,
		RequestID:  requestID,
		IP:         ip,
	})
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Event, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, actor_id, action, entity_type, entity_id, allowed, request_id, ip, details, created_at
    FROM audit_events
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.ActorID, &event.Action, &event.EntityType, &event.EntityID,
			&event.Allowed, &event.RequestID, &event.IP, &event.Details, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

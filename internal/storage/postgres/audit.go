package postgres

import (
	"context"
	"fmt"

	"roomBooker/internal/models"
)

func (s *Storage) WriteAudit(ctx context.Context, entry models.AuditEntry) error {
	const op = "storage.postgres.WriteAudit"

	var details any
	if len(entry.Details) > 0 {
		details = []byte(entry.Details)
	}

	query := `
		INSERT INTO audit_log (booking_id, action, actor_user_id, source, details)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.DB.ExecContext(ctx, query, entry.BookingID, entry.Action, entry.ActorUserID, entry.Source, details)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

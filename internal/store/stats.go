package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Stats struct {
	Messages       int `db:"messages" json:"messages"`
	UnreadMessages int `db:"unread_messages" json:"unread_messages"`
	Tickets        int `db:"tickets" json:"tickets"`
	OpenTickets    int `db:"open_tickets" json:"open_tickets"`
	Calls          int `db:"calls" json:"calls"`
	UpcomingEvents int `db:"upcoming_events" json:"upcoming_events"`
}

const sqlGetStats = `
SELECT
    (SELECT COUNT(*) FROM inbox_messages WHERE user_id = $1)                     AS messages,
    (SELECT COUNT(*) FROM inbox_messages WHERE user_id = $1 AND NOT is_read)     AS unread_messages,
    (SELECT COUNT(*) FROM tickets WHERE user_id = $1)                            AS tickets,
    (SELECT COUNT(*) FROM tickets WHERE user_id = $1 AND status <> $2)           AS open_tickets,
    (SELECT COUNT(*) FROM calls WHERE user_id = $1)                              AS calls,
    (SELECT COUNT(*) FROM calendar_events WHERE user_id = $1 AND start_time >= NOW()) AS upcoming_events`

// GetStats counts the user's dashboard figures in a single round trip.
func (s *Store) GetStats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	var stats Stats
	err := s.db.GetContext(ctx, &stats, sqlGetStats, userID, TicketStatusResolved)
	if err != nil {
		s.logger.Error(ctx, "failed to get stats", err)
		return Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

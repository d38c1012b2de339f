package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/vaibhv02/mini-task-management-api/internal/client/storage"
)

// RunStatus показывает состояние текущей сессии
func RunStatus(ctx context.Context, sessions storage.SessionStorage) error {
	session, err := sessions.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			fmt.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	fmt.Printf("Logged in as: %s\n", session.Email)
	if session.ExpiresAt > 0 {
		if session.Expired() {
			fmt.Println("Session: expired, run 'login' again")
		} else {
			fmt.Printf("Session: valid until %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
		}
	}

	return nil
}

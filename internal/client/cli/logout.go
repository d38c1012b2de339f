package cli

import (
	"context"
	"fmt"

	"github.com/vaibhv02/mini-task-management-api/internal/client/storage"
)

// RunLogout удаляет локальную сессию.
// Сервер не хранит состояние сессий, поэтому токен просто забывается
// и остается действительным до истечения срока.
func RunLogout(ctx context.Context, sessions storage.SessionStorage) error {
	if _, err := sessions.GetSession(ctx); err != nil {
		if err == storage.ErrSessionNotFound {
			fmt.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if err := sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}

package cli

import (
	"context"
	"fmt"

	clientapi "github.com/vaibhv02/mini-task-management-api/internal/client/api"
	"github.com/vaibhv02/mini-task-management-api/internal/client/storage"
)

// RunDelete безвозвратно удаляет задачу
func RunDelete(ctx context.Context, args []string, client *clientapi.Client, sessions storage.SessionStorage) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <task-id>")
	}

	if _, err := requireSession(ctx, client, sessions); err != nil {
		return err
	}

	if err := client.DeleteTask(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println("✓ Task deleted.")
	return nil
}

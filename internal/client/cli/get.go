package cli

import (
	"context"
	"fmt"

	clientapi "github.com/vaibhv02/mini-task-management-api/internal/client/api"
	"github.com/vaibhv02/mini-task-management-api/internal/client/storage"
)

// RunGet показывает одну задачу по ID
func RunGet(ctx context.Context, args []string, client *clientapi.Client, sessions storage.SessionStorage) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <task-id>")
	}

	if _, err := requireSession(ctx, client, sessions); err != nil {
		return err
	}

	task, err := client.GetTask(ctx, args[0])
	if err != nil {
		return err
	}

	printTask(task)
	return nil
}

package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	clientapi "github.com/vaibhv02/mini-task-management-api/internal/client/api"
	"github.com/vaibhv02/mini-task-management-api/internal/client/storage"
	"github.com/vaibhv02/mini-task-management-api/pkg/api"
)

// RunAdd создает новую задачу
// Срок задается либо абсолютно (-due, RFC3339), либо относительно (-in)
func RunAdd(ctx context.Context, args []string, client *clientapi.Client, sessions storage.SessionStorage) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	title := fs.String("title", "", "Task title (required)")
	description := fs.String("desc", "", "Task description")
	due := fs.String("due", "", "Due date, RFC3339 (e.g. 2026-01-02T15:04:05Z)")
	in := fs.Duration("in", 0, "Due date relative to now (e.g. 24h)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *title == "" {
		return fmt.Errorf("-title is required")
	}

	var dueDate time.Time
	switch {
	case *due != "":
		parsed, err := time.Parse(time.RFC3339, *due)
		if err != nil {
			return fmt.Errorf("invalid -due value: %w", err)
		}
		dueDate = parsed
	case *in > 0:
		dueDate = time.Now().Add(*in)
	default:
		return fmt.Errorf("either -due or -in is required")
	}

	if _, err := requireSession(ctx, client, sessions); err != nil {
		return err
	}

	task, err := client.CreateTask(ctx, api.TaskCreateRequest{
		Title:       *title,
		Description: *description,
		DueDate:     dueDate,
	})
	if err != nil {
		return err
	}

	fmt.Println("✓ Task created!")
	printTask(task)

	return nil
}

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

// RunUpdate частично обновляет задачу.
// В запрос попадают только флаги, явно заданные в командной строке.
func RunUpdate(ctx context.Context, args []string, client *clientapi.Client, sessions storage.SessionStorage) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	title := fs.String("title", "", "New title")
	description := fs.String("desc", "", "New description")
	due := fs.String("due", "", "New due date, RFC3339")
	completed := fs.Bool("completed", false, "Completion state")

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("usage: update [flags] <task-id>")
	}
	taskID := rest[0]

	// Отправляем только явно заданные флаги
	req := api.TaskUpdateRequest{}
	set := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = title
			set = true
		case "desc":
			req.Description = description
			set = true
		case "due":
			parsed, err := time.Parse(time.RFC3339, *due)
			if err == nil {
				req.DueDate = &parsed
				set = true
			}
		case "completed":
			req.IsCompleted = completed
			set = true
		}
	})

	if req.DueDate == nil && *due != "" {
		return fmt.Errorf("invalid -due value: %q is not RFC3339", *due)
	}
	if !set {
		return fmt.Errorf("nothing to update: pass at least one of -title, -desc, -due, -completed")
	}

	if _, err := requireSession(ctx, client, sessions); err != nil {
		return err
	}

	task, err := client.UpdateTask(ctx, taskID, req)
	if err != nil {
		return err
	}

	fmt.Println("✓ Task updated!")
	printTask(task)

	return nil
}

// RunDone отмечает задачу выполненной
func RunDone(ctx context.Context, args []string, client *clientapi.Client, sessions storage.SessionStorage) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: done <task-id>")
	}

	if _, err := requireSession(ctx, client, sessions); err != nil {
		return err
	}

	completed := true
	task, err := client.UpdateTask(ctx, args[0], api.TaskUpdateRequest{IsCompleted: &completed})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Task %q marked as completed.\n", task.Title)
	return nil
}

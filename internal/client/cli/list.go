package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	clientapi "github.com/vaibhv02/mini-task-management-api/internal/client/api"
	"github.com/vaibhv02/mini-task-management-api/internal/client/storage"
	"github.com/vaibhv02/mini-task-management-api/pkg/api"
)

// RunList выводит список задач
func RunList(ctx context.Context, args []string, client *clientapi.Client, sessions storage.SessionStorage) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	skip := fs.Int("skip", 0, "Number of tasks to skip")
	limit := fs.Int("limit", 100, "Maximum number of tasks")
	completedStr := fs.String("completed", "", "Filter by completion: true or false")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var completed *bool
	if *completedStr != "" {
		v, err := strconv.ParseBool(*completedStr)
		if err != nil {
			return fmt.Errorf("invalid -completed value: %w", err)
		}
		completed = &v
	}

	if _, err := requireSession(ctx, client, sessions); err != nil {
		return err
	}

	tasks, err := client.ListTasks(ctx, *skip, *limit, completed)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for i := range tasks {
		task := &tasks[i]
		mark := " "
		if task.IsCompleted {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s (due %s)\n", mark, task.ID, task.Title, task.DueDate.Format(time.RFC3339))
	}
	fmt.Printf("\n%d task(s)\n", len(tasks))

	return nil
}

// printTask выводит задачу в развернутом виде
func printTask(task *api.TaskResponse) {
	fmt.Printf("ID:          %s\n", task.ID)
	fmt.Printf("Title:       %s\n", task.Title)
	if task.Description != "" {
		fmt.Printf("Description: %s\n", task.Description)
	}
	fmt.Printf("Due date:    %s\n", task.DueDate.Format(time.RFC3339))
	fmt.Printf("Completed:   %t\n", task.IsCompleted)
	fmt.Printf("Created at:  %s\n", task.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated at:  %s\n", task.UpdatedAt.Format(time.RFC3339))
}

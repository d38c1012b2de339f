package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/vaibhv02/mini-task-management-api/internal/client/api"
	"github.com/vaibhv02/mini-task-management-api/internal/client/storage"
)

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword читает пароль без отображения ввода
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pwBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

// requireSession загружает сохраненную сессию и устанавливает токен
// в API клиент. Возвращает ошибку, если сессии нет или она истекла.
func requireSession(ctx context.Context, client *api.Client, sessions storage.SessionStorage) (*storage.Session, error) {
	session, err := sessions.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return nil, fmt.Errorf("not logged in. Please run 'login' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired() {
		return nil, fmt.Errorf("session expired. Please run 'login' again")
	}

	client.SetToken(session.AccessToken)
	return session, nil
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("Task management client")
	fmt.Println()
	fmt.Println("Usage: taskcli [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register            Register a new account")
	fmt.Println("  login               Log in and store the session")
	fmt.Println("  logout              Remove the stored session")
	fmt.Println("  status              Show current session")
	fmt.Println("  add                 Create a task")
	fmt.Println("  list                List tasks")
	fmt.Println("  get <id>            Show a task")
	fmt.Println("  update <id>         Update task fields")
	fmt.Println("  done <id>           Mark a task completed")
	fmt.Println("  delete <id>         Delete a task")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -server <url>       Server URL (default http://localhost:8080)")
	fmt.Println("  -db <path>          Path to local session database")
}

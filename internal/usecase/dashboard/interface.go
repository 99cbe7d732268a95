package dashboard

import (
	"context"
	"html/template"

	"crud-dashboard/internal/domain"
	"crud-dashboard/internal/notify"
)

// UserGateway is the remote users resource.
type UserGateway interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.NewUser) error
	DeleteUser(ctx context.Context, id int64) error
}

// TaskGateway is the remote tasks resource.
type TaskGateway interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	CreateTask(ctx context.Context, in domain.NewTask) error
	DeleteTask(ctx context.Context, id int64) error
}

// MessageGateway is the remote messages resource. Deleting a message
// requires the id of the acting user.
type MessageGateway interface {
	ListMessages(ctx context.Context) ([]domain.Message, error)
	GetMessage(ctx context.Context, id int64) (*domain.Message, error)
	CreateMessage(ctx context.Context, in domain.NewMessage) error
	DeleteMessage(ctx context.Context, id, actingUserID int64) error
}

// Gateway is the whole remote API.
type Gateway interface {
	UserGateway
	TaskGateway
	MessageGateway
}

// Surface is the set of named regions the dashboard renders into.
type Surface interface {
	SetHTML(id string, markup template.HTML)
	SetText(id, text string)
	SetLoading(id string, on bool)
	ResetForm(id string)
}

// Notifier shows the operator a transient banner.
type Notifier interface {
	Notify(message string, s notify.Severity)
}

// Confirmer asks the operator to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Approved reports a fixed answer regardless of the prompt.
func Approved(ok bool) Confirmer {
	return ConfirmFunc(func(string) bool { return ok })
}

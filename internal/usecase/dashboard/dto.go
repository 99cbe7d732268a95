package dashboard

import (
	"strings"

	"crud-dashboard/internal/domain"
)

// UserForm holds the values of the user creation form.
type UserForm struct {
	Name     string `validate:"min=1,max=100"`
	Username string `validate:"min=3,max=50"`
	Email    string
	Age      *int
	City     string
}

func (f UserForm) trimmed() UserForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	f.City = strings.TrimSpace(f.City)
	return f
}

func (f UserForm) payload() domain.NewUser {
	return domain.NewUser{
		Name:     f.Name,
		Username: f.Username,
		Email:    f.Email,
		Age:      f.Age,
		City:     f.City,
	}
}

// TaskForm holds the values of the task creation form.
type TaskForm struct {
	Title       string `validate:"required"`
	Description string
	Status      domain.TaskStatus `validate:"omitempty,oneof=pending in-progress completed"`
}

func (f TaskForm) trimmed() TaskForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Status = domain.TaskStatus(strings.TrimSpace(string(f.Status)))
	return f
}

func (f TaskForm) payload() domain.NewTask {
	return domain.NewTask{
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
	}
}

// MessageForm holds the values of the message form. UserID is zero when no
// author is selected.
type MessageForm struct {
	Content string `validate:"required,utf16max=1000"`
	UserID  int64  `validate:"gt=0"`
}

func (f MessageForm) trimmed() MessageForm {
	f.Content = strings.TrimSpace(f.Content)
	return f
}

func (f MessageForm) payload() domain.NewMessage {
	return domain.NewMessage{
		Content: f.Content,
		UserID:  f.UserID,
	}
}

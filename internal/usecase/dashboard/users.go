package dashboard

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"crud-dashboard/internal/domain"
	"crud-dashboard/internal/notify"
	"crud-dashboard/internal/ui"
	"crud-dashboard/pkg/logger"

	"go.uber.org/zap"
)

// Users manages the users collection.
type Users struct {
	env      *env
	api      UserGateway
	messages *Messages
}

func (m *Users) listing() listing[domain.User] {
	return listing[domain.User]{
		name:    "users",
		coll:    m.env.store.Users,
		list:    ui.RegionUsersList,
		loading: ui.RegionUsersLoading,
		count:   ui.RegionUsersCount,
		fetch:   m.api.ListUsers,
		render:  m.render,
	}
}

// render also refreshes the author picker of the message form, which is
// fed from the same collection.
func (m *Users) render(users []domain.User) template.HTML {
	m.env.surface.SetHTML(ui.RegionUserOptions, ui.RenderUserOptions(users))
	return ui.RenderUsers(users)
}

// Load fetches the users and renders them.
func (m *Users) Load(ctx context.Context) error {
	return load(ctx, m.env, m.listing())
}

// Render writes users into the users list.
func (m *Users) Render(users []domain.User) {
	m.env.surface.SetHTML(ui.RegionUsersList, m.render(users))
}

// Submit validates form and creates the user.
func (m *Users) Submit(ctx context.Context, form UserForm) error {
	log := logger.WithContext(ctx, m.env.log)
	form = form.trimmed()
	log.Info("creating user", zap.String("username", form.Username))

	if err := invalid(m.env, log, form); err != nil {
		return err
	}

	err := m.api.CreateUser(ctx, form.payload())
	if err := created(m.env, log, err, "User created successfully!"); err != nil {
		return err
	}

	m.env.surface.ResetForm(ui.FormUser)
	return m.Load(ctx)
}

// Delete removes user id once confirmed. Messages are reloaded as well since
// they display their author.
func (m *Users) Delete(ctx context.Context, id int64, confirm Confirmer) error {
	if !confirm.Confirm("Are you sure you want to delete this user?") {
		return nil
	}

	log := logger.WithContext(ctx, m.env.log).With(zap.Int64("id", id))
	log.Info("deleting user")

	err := m.api.DeleteUser(ctx, id)
	if err := deleted(m.env, log, err, "User deleted successfully!"); err != nil {
		return err
	}

	return errors.Join(m.Load(ctx), m.messages.Load(ctx))
}

// Edit shows a read-only preview of user id.
func (m *Users) Edit(ctx context.Context, id int64) error {
	log := logger.WithContext(ctx, m.env.log).With(zap.Int64("id", id))

	u, err := m.api.GetUser(ctx, id)
	if err != nil {
		return previewFailed(m.env, log, err)
	}

	m.env.surface.SetHTML(ui.RegionPreview, ui.RenderPreview(ui.Preview{
		Title: fmt.Sprintf("Edit user: %s (@%s)", u.Name, u.Username),
		Body:  editComingSoon,
	}))
	m.env.notifier.Notify("Edit functionality coming soon!", notify.Info)
	return nil
}

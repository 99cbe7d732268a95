package dashboard

import (
	"context"
	"fmt"
	"html/template"

	"crud-dashboard/internal/domain"
	"crud-dashboard/internal/notify"
	"crud-dashboard/internal/ui"
	"crud-dashboard/pkg/logger"

	"go.uber.org/zap"
)

// previewLength is how much of a message an edit preview shows.
const previewLength = 50

// Messages manages the messages collection.
type Messages struct {
	env *env
	api MessageGateway
}

func (m *Messages) listing() listing[domain.Message] {
	return listing[domain.Message]{
		name:    "messages",
		coll:    m.env.store.Messages,
		list:    ui.RegionMessagesList,
		loading: ui.RegionMessagesLoading,
		count:   ui.RegionMessagesCount,
		fetch:   m.api.ListMessages,
		render:  m.render,
	}
}

func (m *Messages) render(messages []domain.Message) template.HTML {
	return ui.RenderMessages(messages, m.env.store.UserByID)
}

// Load fetches the messages and renders them.
func (m *Messages) Load(ctx context.Context) error {
	return load(ctx, m.env, m.listing())
}

// Render writes messages into the messages list, newest first.
func (m *Messages) Render(messages []domain.Message) {
	m.env.surface.SetHTML(ui.RegionMessagesList, m.render(messages))
}

// Submit validates form and posts the message.
func (m *Messages) Submit(ctx context.Context, form MessageForm) error {
	log := logger.WithContext(ctx, m.env.log)
	form = form.trimmed()
	log.Info("sending message", zap.Int64("user_id", form.UserID))

	if err := invalid(m.env, log, form); err != nil {
		return err
	}

	err := m.api.CreateMessage(ctx, form.payload())
	if err := created(m.env, log, err, "Message sent successfully!"); err != nil {
		return err
	}

	m.env.surface.ResetForm(ui.FormMessage)
	m.env.surface.SetText(ui.RegionMessageCounter, "0")
	return m.Load(ctx)
}

// Delete removes message id on behalf of actingUserID once confirmed.
func (m *Messages) Delete(ctx context.Context, id, actingUserID int64, confirm Confirmer) error {
	if !confirm.Confirm("Are you sure you want to delete this message?") {
		return nil
	}

	log := logger.WithContext(ctx, m.env.log).With(zap.Int64("id", id), zap.Int64("acting_user_id", actingUserID))
	log.Info("deleting message")

	err := m.api.DeleteMessage(ctx, id, actingUserID)
	if err := deleted(m.env, log, err, "Message deleted successfully!"); err != nil {
		return err
	}
	return m.Load(ctx)
}

// Edit shows a read-only preview of message id.
func (m *Messages) Edit(ctx context.Context, id int64) error {
	log := logger.WithContext(ctx, m.env.log).With(zap.Int64("id", id))

	msg, err := m.api.GetMessage(ctx, id)
	if err != nil {
		return previewFailed(m.env, log, err)
	}

	m.env.surface.SetHTML(ui.RegionPreview, ui.RenderPreview(ui.Preview{
		Title: fmt.Sprintf("Edit message: %s", ui.Truncate(msg.Content, previewLength)),
		Body:  editComingSoon,
	}))
	m.env.notifier.Notify("Edit functionality coming soon!", notify.Info)
	return nil
}

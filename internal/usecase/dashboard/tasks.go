package dashboard

import (
	"context"
	"html/template"

	"crud-dashboard/internal/domain"
	"crud-dashboard/internal/notify"
	"crud-dashboard/internal/ui"
	"crud-dashboard/pkg/logger"

	"go.uber.org/zap"
)

// Tasks manages the tasks collection.
type Tasks struct {
	env *env
	api TaskGateway
}

func (m *Tasks) listing() listing[domain.Task] {
	return listing[domain.Task]{
		name:    "tasks",
		coll:    m.env.store.Tasks,
		list:    ui.RegionTasksList,
		loading: ui.RegionTasksLoading,
		count:   ui.RegionTasksCount,
		fetch:   m.api.ListTasks,
		render:  func(tasks []domain.Task) template.HTML { return ui.RenderTasks(tasks) },
	}
}

// Load fetches the tasks and renders them.
func (m *Tasks) Load(ctx context.Context) error {
	return load(ctx, m.env, m.listing())
}

// Render writes tasks into the tasks list.
func (m *Tasks) Render(tasks []domain.Task) {
	m.env.surface.SetHTML(ui.RegionTasksList, ui.RenderTasks(tasks))
}

// Submit validates form and creates the task.
func (m *Tasks) Submit(ctx context.Context, form TaskForm) error {
	log := logger.WithContext(ctx, m.env.log)
	form = form.trimmed()
	log.Info("creating task", zap.String("title", form.Title))

	if err := invalid(m.env, log, form); err != nil {
		return err
	}

	err := m.api.CreateTask(ctx, form.payload())
	if err := created(m.env, log, err, "Task created successfully!"); err != nil {
		return err
	}

	m.env.surface.ResetForm(ui.FormTask)
	return m.Load(ctx)
}

// Delete removes task id once confirmed.
func (m *Tasks) Delete(ctx context.Context, id int64, confirm Confirmer) error {
	if !confirm.Confirm("Are you sure you want to delete this task?") {
		return nil
	}

	log := logger.WithContext(ctx, m.env.log).With(zap.Int64("id", id))
	log.Info("deleting task")

	err := m.api.DeleteTask(ctx, id)
	if err := deleted(m.env, log, err, "Task deleted successfully!"); err != nil {
		return err
	}
	return m.Load(ctx)
}

// Edit shows a read-only preview of task id.
func (m *Tasks) Edit(ctx context.Context, id int64) error {
	log := logger.WithContext(ctx, m.env.log).With(zap.Int64("id", id))

	t, err := m.api.GetTask(ctx, id)
	if err != nil {
		return previewFailed(m.env, log, err)
	}

	m.env.surface.SetHTML(ui.RegionPreview, ui.RenderPreview(ui.Preview{
		Title: "Edit task: " + t.Title,
		Body:  editComingSoon,
	}))
	m.env.notifier.Notify("Edit functionality coming soon!", notify.Info)
	return nil
}

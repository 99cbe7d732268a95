package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"strconv"

	"crud-dashboard/internal/notify"
	"crud-dashboard/internal/store"
	"crud-dashboard/internal/ui"
	pkgerrors "crud-dashboard/pkg/errors"
	"crud-dashboard/pkg/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// env is what every manager shares.
type env struct {
	store    *store.Store
	surface  Surface
	notifier Notifier
	stats    *Stats
	validate *validator.Validate
	log      *zap.Logger
}

// listing describes how one resource is fetched and where it is rendered.
type listing[T any] struct {
	name    string
	coll    *store.Collection[T]
	list    string
	loading string
	count   string
	fetch   func(ctx context.Context) ([]T, error)
	render  func(items []T) template.HTML
}

// load runs one fetch-render cycle of l. A response that is no longer the
// latest for its collection is dropped without touching any region.
func load[T any](ctx context.Context, e *env, l listing[T]) error {
	log := logger.WithContext(ctx, e.log).With(zap.String("resource", l.name))

	token := l.coll.Begin()
	e.surface.SetLoading(l.loading, true)
	e.surface.SetHTML(l.list, "")

	items, err := l.fetch(ctx)
	if err != nil {
		if !l.coll.Current(token) {
			log.Debug("stale load failure dropped", zap.Error(err))
			return nil
		}
		log.Error("failed to load collection", zap.Error(err))
		e.surface.SetHTML(l.list, ui.RenderLoadError(pkgerrors.Message(err)))
		e.surface.SetLoading(l.loading, false)
		e.notifier.Notify(fmt.Sprintf("Error loading %s: %s", l.name, pkgerrors.Message(err)), notify.Error)
		return fmt.Errorf("load %s: %w", l.name, err)
	}

	if !l.coll.Commit(token, items) {
		log.Debug("stale load response dropped", zap.Int("count", len(items)))
		return nil
	}

	// Render what is committed, not what was fetched: a newer load may have
	// committed in between.
	current := l.coll.Snapshot()
	e.surface.SetHTML(l.list, l.render(current))
	e.surface.SetText(l.count, strconv.Itoa(len(current)))
	e.surface.SetLoading(l.loading, false)
	e.stats.Recompute()

	log.Info("collection loaded", zap.Int("count", len(current)))
	return nil
}

// created reports the outcome of a create request to the operator.
func created(e *env, log *zap.Logger, err error, success string) error {
	if err != nil {
		log.Error("create failed", zap.Error(err))
		e.notifier.Notify("Creation failed: "+pkgerrors.Message(err), notify.Error)
		return err
	}
	e.notifier.Notify(success, notify.Success)
	return nil
}

// deleted reports the outcome of a delete request to the operator.
func deleted(e *env, log *zap.Logger, err error, success string) error {
	if err != nil {
		log.Error("delete failed", zap.Error(err))
		e.notifier.Notify("Deletion failed: "+pkgerrors.Message(err), notify.Error)
		return err
	}
	e.notifier.Notify(success, notify.Success)
	return nil
}

// invalid validates form and notifies the first failed rule.
func invalid(e *env, log *zap.Logger, form any) error {
	if err := e.validate.Struct(form); err != nil {
		err = formatValidationError(err)
		log.Warn("validate failed", zap.Error(err))
		e.notifier.Notify(pkgerrors.Message(err), notify.Error)
		return err
	}
	return nil
}

// previewFailed reports a failed record fetch of an edit preview.
func previewFailed(e *env, log *zap.Logger, err error) error {
	log.Error("failed to fetch record for preview", zap.Error(err))
	e.notifier.Notify("Error: "+pkgerrors.Message(err), notify.Error)
	return err
}

// editComingSoon is the body of every edit preview.
const editComingSoon = "Editing is not available yet. This feature is coming soon."

package notify

import (
	"html/template"
	"sync"
	"time"

	"crud-dashboard/internal/ui"

	"go.uber.org/zap"
)

// DefaultTTL is how long a banner stays visible.
const DefaultTTL = 5000 * time.Millisecond

// Severity of a notification.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

var icons = map[Severity]string{
	Success: "check-circle",
	Error:   "exclamation-triangle",
	Warning: "exclamation-triangle",
	Info:    "info-circle",
}

// AlertClass returns the banner class for s.
func (s Severity) AlertClass() string {
	if s == Error {
		return "alert-danger"
	}
	return "alert-" + string(s)
}

// Icon returns the banner icon name for s.
func (s Severity) Icon() string {
	if icon, ok := icons[s]; ok {
		return icon
	}
	return icons[Info]
}

// Surface is where the banner is written.
type Surface interface {
	SetHTML(id string, markup template.HTML)
}

// ScheduleFunc runs f once after d.
type ScheduleFunc func(d time.Duration, f func())

func afterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(n *Notifier) {
		if ttl > 0 {
			n.ttl = ttl
		}
	}
}

// WithSchedule replaces the timer used to clear banners.
func WithSchedule(schedule ScheduleFunc) Option {
	return func(n *Notifier) {
		n.schedule = schedule
	}
}

// Notifier shows a single dismissible banner. Every call replaces the
// previous banner and arms a timer that clears it after the TTL.
type Notifier struct {
	surface  Surface
	log      *zap.Logger
	ttl      time.Duration
	schedule ScheduleFunc

	mu      sync.Mutex
	current uint64
}

// New creates a Notifier writing to surface.
func New(surface Surface, log *zap.Logger, opts ...Option) *Notifier {
	n := &Notifier{
		surface:  surface,
		log:      log,
		ttl:      DefaultTTL,
		schedule: afterFunc,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify displays message with severity s.
func (n *Notifier) Notify(message string, s Severity) {
	n.mu.Lock()
	n.current++
	id := n.current
	n.surface.SetHTML(ui.RegionNotification, ui.RenderBanner(ui.Banner{
		ID:         id,
		Message:    message,
		AlertClass: s.AlertClass(),
		Icon:       s.Icon(),
		TTLMillis:  int(n.ttl.Milliseconds()),
	}))
	n.mu.Unlock()

	n.log.Debug("notification shown",
		zap.Uint64("id", id),
		zap.String("severity", string(s)),
		zap.String("message", message),
	)

	n.schedule(n.ttl, func() { n.clear(id) })
}

// clear removes banner id unless a newer one replaced it.
func (n *Notifier) clear(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != id {
		return
	}
	n.surface.SetHTML(ui.RegionNotification, "")
}

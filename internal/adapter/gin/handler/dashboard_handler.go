package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"crud-dashboard/internal/domain"
	"crud-dashboard/internal/ui"
	"crud-dashboard/internal/usecase/dashboard"
	"crud-dashboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	htmlContentType = "text/html; charset=utf-8"

	// triggerHeader carries client-side events of an htmx response.
	triggerHeader = "HX-Trigger"
	// formResetEvent asks the page to reset the listed forms.
	formResetEvent = "form-reset"
)

// DashboardHandler translates browser actions into dashboard operations.
// Every action answers with all regions as out-of-band fragments; failures
// reach the operator through the notification region, not the HTTP status.
type DashboardHandler struct {
	dash    *dashboard.Dashboard
	regions *ui.Regions
	log     *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(dash *dashboard.Dashboard, regions *ui.Regions, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dash:    dash,
		regions: regions,
		log:     log,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserFormRequest represents the submitted user form
type UserFormRequest struct {
	Name     string `form:"name"`
	Username string `form:"username"`
	Email    string `form:"email"`
	Age      string `form:"age"`
	City     string `form:"city"`
}

// TaskFormRequest represents the submitted task form
type TaskFormRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Status      string `form:"status"`
}

// MessageFormRequest represents the submitted message form
type MessageFormRequest struct {
	Content string `form:"content"`
	UserID  string `form:"userId"`
}

// Page handles GET /
func (h *DashboardHandler) Page(c *gin.Context) {
	var buf bytes.Buffer
	if err := ui.WritePage(&buf, h.regions.Snapshot()); err != nil {
		h.logger(c).Error("failed to render page", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

// Region handles GET /ui/regions/:region
func (h *DashboardHandler) Region(c *gin.Context) {
	id := c.Param("region")
	if !h.regions.Has(id) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "unknown region " + strconv.Quote(id),
		})
		return
	}
	c.Data(http.StatusOK, htmlContentType, []byte(h.regions.HTML(id)))
}

// Init handles POST /ui/init
func (h *DashboardHandler) Init(c *gin.Context) {
	h.report(c, "init", h.dash.Init(c.Request.Context()))
	h.respond(c)
}

// TestConnection handles POST /ui/connection
func (h *DashboardHandler) TestConnection(c *gin.Context) {
	h.report(c, "connection test", h.dash.Connection.Test(c.Request.Context()))
	h.respond(c)
}

// ActivateTab handles GET /ui/tabs/:tab
func (h *DashboardHandler) ActivateTab(c *gin.Context) {
	tab := dashboard.Tab(c.Param("tab"))
	c.Request = c.Request.WithContext(logger.WithTab(c.Request.Context(), string(tab)))

	err := h.dash.Tabs.Activate(c.Request.Context(), tab)
	if errors.Is(err, dashboard.ErrUnknownTab) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
		return
	}
	h.report(c, "tab activation", err)
	h.respond(c)
}

// CreateUser handles POST /ui/users
func (h *DashboardHandler) CreateUser(c *gin.Context) {
	var req UserFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.badRequest(c, "invalid_form", err.Error())
		return
	}

	form := dashboard.UserForm{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		City:     req.City,
	}
	if age := strings.TrimSpace(req.Age); age != "" {
		n, err := strconv.Atoi(age)
		if err != nil {
			h.badRequest(c, "invalid_age", "Age must be a valid number")
			return
		}
		form.Age = &n
	}

	h.report(c, "create user", h.dash.Users.Submit(c.Request.Context(), form))
	h.respond(c)
}

// ReloadUsers handles POST /ui/users/reload
func (h *DashboardHandler) ReloadUsers(c *gin.Context) {
	h.report(c, "reload users", h.dash.Users.Load(c.Request.Context()))
	h.respond(c)
}

// EditUser handles GET /ui/users/:id/edit
func (h *DashboardHandler) EditUser(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	h.report(c, "edit user", h.dash.Users.Edit(c.Request.Context(), id))
	h.respond(c)
}

// DeleteUser handles DELETE /ui/users/:id
func (h *DashboardHandler) DeleteUser(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	h.report(c, "delete user", h.dash.Users.Delete(c.Request.Context(), id, confirmation(c)))
	h.respond(c)
}

// CreateTask handles POST /ui/tasks
func (h *DashboardHandler) CreateTask(c *gin.Context) {
	var req TaskFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.badRequest(c, "invalid_form", err.Error())
		return
	}

	form := dashboard.TaskForm{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
	}
	h.report(c, "create task", h.dash.Tasks.Submit(c.Request.Context(), form))
	h.respond(c)
}

// ReloadTasks handles POST /ui/tasks/reload
func (h *DashboardHandler) ReloadTasks(c *gin.Context) {
	h.report(c, "reload tasks", h.dash.Tasks.Load(c.Request.Context()))
	h.respond(c)
}

// EditTask handles GET /ui/tasks/:id/edit
func (h *DashboardHandler) EditTask(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	h.report(c, "edit task", h.dash.Tasks.Edit(c.Request.Context(), id))
	h.respond(c)
}

// DeleteTask handles DELETE /ui/tasks/:id
func (h *DashboardHandler) DeleteTask(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	h.report(c, "delete task", h.dash.Tasks.Delete(c.Request.Context(), id, confirmation(c)))
	h.respond(c)
}

// CreateMessage handles POST /ui/messages
func (h *DashboardHandler) CreateMessage(c *gin.Context) {
	var req MessageFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.badRequest(c, "invalid_form", err.Error())
		return
	}

	// An unselected author stays zero and fails validation.
	userID, _ := strconv.ParseInt(strings.TrimSpace(req.UserID), 10, 64)
	form := dashboard.MessageForm{
		Content: req.Content,
		UserID:  userID,
	}
	h.report(c, "create message", h.dash.Messages.Submit(c.Request.Context(), form))
	h.respond(c)
}

// ReloadMessages handles POST /ui/messages/reload
func (h *DashboardHandler) ReloadMessages(c *gin.Context) {
	h.report(c, "reload messages", h.dash.Messages.Load(c.Request.Context()))
	h.respond(c)
}

// EditMessage handles GET /ui/messages/:id/edit
func (h *DashboardHandler) EditMessage(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	h.report(c, "edit message", h.dash.Messages.Edit(c.Request.Context(), id))
	h.respond(c)
}

// DeleteMessage handles DELETE /ui/messages/:id?userId=
func (h *DashboardHandler) DeleteMessage(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}

	userIDStr := c.Query("userId")
	actingUserID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger(c).Warn("Invalid acting user ID", zap.String("user_id", userIDStr), zap.Error(err))
		h.badRequest(c, "invalid_user_id", "userId must be a valid number")
		return
	}

	h.report(c, "delete message", h.dash.Messages.Delete(c.Request.Context(), id, actingUserID, confirmation(c)))
	h.respond(c)
}

// respond writes every region as an out-of-band fragment and queues the
// pending form resets as a client event.
func (h *DashboardHandler) respond(c *gin.Context) {
	if resets := h.regions.DrainResets(); len(resets) > 0 {
		payload, err := json.Marshal(map[string]any{
			formResetEvent: map[string][]string{"forms": resets},
		})
		if err == nil {
			c.Header(triggerHeader, string(payload))
		}
	}

	var buf bytes.Buffer
	if err := ui.WriteOOB(&buf, h.regions.Snapshot()); err != nil {
		h.logger(c).Error("failed to render regions", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to render regions")
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

// report logs the outcome of an action. The operator already saw it.
func (h *DashboardHandler) report(c *gin.Context, action string, err error) {
	if err != nil {
		h.logger(c).Info("Dashboard action failed", zap.String("action", action), zap.Error(err))
		return
	}
	h.logger(c).Debug("Dashboard action completed", zap.String("action", action))
}

func (h *DashboardHandler) id(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger(c).Warn("Invalid record ID", zap.String("id", idStr), zap.Error(err))
		h.badRequest(c, "invalid_id", "ID must be a valid number")
		return 0, false
	}
	return id, true
}

func (h *DashboardHandler) badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func (h *DashboardHandler) logger(c *gin.Context) *zap.Logger {
	return logger.WithContext(c.Request.Context(), h.log)
}

// confirmation reads the operator's answer to the delete prompt.
func confirmation(c *gin.Context) dashboard.Confirmer {
	return dashboard.Approved(c.Query("confirm") == "true")
}

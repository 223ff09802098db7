package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/LucasMartinsVieira/toodoo/internal/application/tasks"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	"github.com/LucasMartinsVieira/toodoo/internal/infrastructure/http/middleware"
)

type TasksHandler struct {
	create   *tasks.Create
	list     *tasks.List
	get      *tasks.Get
	update   *tasks.Update
	remove   *tasks.Remove
	validate *validator.Validate
	log      zerolog.Logger
}

func NewTasksHandler(create *tasks.Create, list *tasks.List, get *tasks.Get, update *tasks.Update, remove *tasks.Remove, log zerolog.Logger) *TasksHandler {
	return &TasksHandler{
		create:   create,
		list:     list,
		get:      get,
		update:   update,
		remove:   remove,
		validate: validator.New(),
		log:      log,
	}
}

type taskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	var body struct {
		Title       string     `json:"title" validate:"required,min=1,max=64"`
		Description string     `json:"description" validate:"omitempty,min=1,max=800"`
		DueDate     *time.Time `json:"dueDate"`
		Status      string     `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	body.Title = SanitizeTitle(body.Title)
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	err := h.create.Execute(r.Context(), ident.ID, tasks.CreateInput{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
		Status:      domain.TaskStatus(body.Status),
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	result, err := h.list.Execute(r.Context(), ident.ID)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	out := make([]taskResponse, 0, len(result))
	for _, t := range result {
		out = append(out, toTaskResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathTaskID(w, r)
	if !ok {
		return
	}
	task, err := h.get.Execute(r.Context(), id, ident.ID)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathTaskID(w, r)
	if !ok {
		return
	}
	var body struct {
		Title       *string    `json:"title" validate:"omitempty,min=1,max=64"`
		Description *string    `json:"description" validate:"omitempty,min=1,max=800"`
		DueDate     *time.Time `json:"dueDate"`
		Status      *string    `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if body.Title != nil {
		title := SanitizeTitle(*body.Title)
		body.Title = &title
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	input := tasks.UpdateInput{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
	}
	if body.Status != nil {
		status := domain.TaskStatus(*body.Status)
		input.Status = &status
	}
	if err := h.update.Execute(r.Context(), id, ident.ID, input); err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TasksHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathTaskID(w, r)
	if !ok {
		return
	}
	if err := h.remove.Execute(r.Context(), id, ident.ID); err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func requireIdentity(w http.ResponseWriter, r *http.Request) (*middleware.Identity, bool) {
	ident := middleware.IdentityFromContext(r.Context())
	if ident == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return nil, false
	}
	return ident, true
}

func pathTaskID(w http.ResponseWriter, r *http.Request) (domain.TaskID, bool) {
	id, err := domain.ParseTaskID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid task id")
		return domain.TaskID{}, false
	}
	return id, true
}

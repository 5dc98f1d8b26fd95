package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/thenoetrevino/hecho/internal/models"
	todoservice "github.com/thenoetrevino/hecho/internal/services/todo"
)

// maxBodyBytes bounds request bodies on write endpoints
const maxBodyBytes = 1 << 20

// URLReverser resolves route names to paths
type URLReverser interface {
	Reverse(name string) (string, error)
}

// Handlers holds the view functions bound in the route table
type Handlers struct {
	todos     todoservice.Service
	logger    *slog.Logger
	templates templateRenderer
	urls      URLReverser
}

type templateRenderer interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

// NewHandlers creates the view handlers. SetURLs must be called once the
// router exists so pages can link to other routes.
func NewHandlers(todos todoservice.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		todos:     todos,
		logger:    logger,
		templates: newTemplates(),
	}
}

// SetURLs attaches the reverser used when rendering links
func (h *Handlers) SetURLs(urls URLReverser) {
	h.urls = urls
}

// Home renders a summary page
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}

	stats, err := h.todos.Stats(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	todosURL := ""
	if h.urls != nil {
		if todosURL, err = h.urls.Reverse(RouteTodos); err != nil {
			h.internalError(w, r, err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := homePageData{
		Stats:    homeStats{Total: stats.Total, Open: stats.Open, Done: stats.Done},
		TodosURL: todosURL,
	}
	if err := h.templates.ExecuteTemplate(w, "home", data); err != nil {
		h.logger.Error("failed to render home", "request_id", RequestID(r.Context()), "error", err)
	}
}

// Todos lists items on GET and creates one on POST
func (h *Handlers) Todos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.listTodos(w, r)
	case http.MethodPost:
		h.createTodo(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodHead, http.MethodPost)
	}
}

func (h *Handlers) listTodos(w http.ResponseWriter, r *http.Request) {
	var filter models.TodoFilter
	if raw := r.URL.Query().Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_FILTER",
				fmt.Sprintf("completed must be true or false, got %q", raw))
			return
		}
		filter.Completed = &completed
	}

	items, err := h.todos.ListTodos(r.Context(), filter)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handlers) createTodo(w http.ResponseWriter, r *http.Request) {
	var req todoservice.CreateTodoRequest
	if err := decodeBody(w, r, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "INVALID_JSON", fmt.Sprintf("invalid request body: %v", err))
		return
	}

	item, err := h.todos.CreateTodo(r.Context(), req)
	switch {
	case errors.Is(err, todoservice.ErrEmptyTitle), errors.Is(err, todoservice.ErrTitleInvalid):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, todoservice.ErrTitleTooLong):
		writeError(w, http.StatusUnprocessableEntity, "TITLE_TOO_LONG", err.Error())
	case err != nil:
		h.internalError(w, r, err)
	default:
		writeSuccess(w, http.StatusCreated, item)
	}
}

// decodeBody reads exactly one JSON object from the body. Unknown fields and
// anything after the object are rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("body must contain a single JSON object")
		}
		return fmt.Errorf("body must contain a single JSON object: %w", err)
	}
	return nil
}

func (h *Handlers) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", "request_id", RequestID(r.Context()), "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

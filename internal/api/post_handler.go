package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/directory-api/internal/api/shared"
	"github.com/phrazzld/directory-api/internal/domain"
	"github.com/phrazzld/directory-api/internal/platform/logger"
	"github.com/phrazzld/directory-api/internal/store"
)

// Validation messages for the post creation pipeline. The checks run in a
// fixed order (title, body, userId) and short-circuit on the first failure.
const (
	msgTitleRequired  = "Title is required and must be a string"
	msgBodyRequired   = "Body is required and must be a string"
	msgUserIDRequired = "User ID is required and must be a string"
	msgTitleEmpty     = "Title cannot be empty or contain only whitespace"
	msgBodyEmpty      = "Body cannot be empty or contain only whitespace"
	msgUserIDEmpty    = "User ID cannot be empty or contain only whitespace"
	msgUserNotFound   = "User not found"
	msgPostIDRequired = "Post ID is required"
	msgPostNotFound   = "Post not found"
	msgInternalError  = "Internal server error"
	msgInvalidFormat  = "Invalid request format"
)

// CreatePostRequest represents the request body for creating a new post.
// Fields are captured as raw JSON so decoding never fails on a wrong-typed
// field; presence and string-ness are checked per field afterwards, in the
// pipeline's fixed order rather than the document's field order.
type CreatePostRequest struct {
	Title  json.RawMessage `json:"title"`
	Body   json.RawMessage `json:"body"`
	UserID json.RawMessage `json:"userId"`
}

// stringField reports whether raw holds a JSON string, returning its value.
// Absent and null fields, and fields of any other JSON type, report false.
func stringField(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	postStore store.PostStore
	userStore store.UserStore
	logger    *slog.Logger
}

// NewPostHandler creates a new PostHandler. The user store is needed for
// the existence check guarding post creation.
func NewPostHandler(postStore store.PostStore, userStore store.UserStore, logger *slog.Logger) *PostHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PostHandler")
	}

	return &PostHandler{
		postStore: postStore,
		userStore: userStore,
		logger:    logger.With(slog.String("component", "post_handler")),
	}
}

// ListPosts handles GET /posts requests.
// The userId query parameter is required. An unknown user yields an empty
// array, indistinguishable from a user with zero posts; existence is
// deliberately not checked here.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgUserIDRequired)
		return
	}

	posts, err := h.postStore.ListByUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed posts",
		slog.String("user_id", userID),
		slog.Int("count", len(posts)))
	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// CreatePost handles POST /posts requests.
// The validation pipeline runs in order and short-circuits on the first
// failure: field presence and type (title, body, userId), trimmed
// non-emptiness in the same order, then owner existence. The post is
// persisted with the trimmed values.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	rawTitle, ok := stringField(req.Title)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgTitleRequired)
		return
	}
	rawBody, ok := stringField(req.Body)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBodyRequired)
		return
	}
	rawUserID, ok := stringField(req.UserID)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgUserIDRequired)
		return
	}

	title := strings.TrimSpace(rawTitle)
	body := strings.TrimSpace(rawBody)
	userID := strings.TrimSpace(rawUserID)

	if title == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgTitleEmpty)
		return
	}
	if body == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBodyEmpty)
		return
	}
	if userID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgUserIDEmpty)
		return
	}

	exists, err := h.userStore.Exists(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, msgInternalError, err)
		return
	}
	if !exists {
		log.Debug("post creation rejected for unknown user",
			slog.String("user_id", userID))
		shared.RespondWithError(w, r, http.StatusNotFound, msgUserNotFound)
		return
	}

	post, err := domain.NewPost(userID, title, body)
	if err != nil {
		// Covers identifier generation failure; the client sees the same
		// generic creation failure as for a persistence fault.
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, msgInternalError, err)
		return
	}

	if err := h.postStore.Create(r.Context(), post); err != nil {
		// The user may have been removed between the existence check and
		// the insert; the foreign key constraint reports that as an
		// invalid entity.
		if errors.Is(err, store.ErrInvalidEntity) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgUserNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, msgInternalError, err)
		return
	}

	log.Info("post created",
		slog.String("post_id", post.ID),
		slog.String("user_id", post.UserID))
	shared.RespondWithJSON(w, r, http.StatusCreated, post)
}

// DeletePost handles DELETE /posts/{id} requests.
// A path ID that is empty after unescaping and trimming is rejected with
// 400; a well-formed but unknown ID yields 404; a successful delete yields
// 204 with an empty body.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := chi.URLParam(r, "id")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	id := strings.TrimSpace(raw)

	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgPostIDRequired)
		return
	}

	deleted, err := h.postStore.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, msgInternalError, err)
		return
	}
	if !deleted {
		log.Debug("post not found for delete", slog.String("post_id", id))
		shared.RespondWithError(w, r, http.StatusNotFound, msgPostNotFound)
		return
	}

	log.Info("post deleted", slog.String("post_id", id))
	w.WriteHeader(http.StatusNoContent)
}

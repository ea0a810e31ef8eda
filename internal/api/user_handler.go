package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/directory-api/internal/api/shared"
	"github.com/phrazzld/directory-api/internal/platform/logger"
	"github.com/phrazzld/directory-api/internal/store"
)

// Pagination defaults applied when the query parameters are absent or
// non-numeric.
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 4
)

// ListUsersParams holds the parsed pagination parameters for GET /users.
type ListUsersParams struct {
	PageNumber int `validate:"gte=0"`
	PageSize   int `validate:"gte=1"`
}

// CountResponse represents the response data for GET /users/count.
type CountResponse struct {
	Count int `json:"count"`
}

// UserHandler handles user directory HTTP requests.
type UserHandler struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userStore store.UserStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /users requests.
// pageNumber and pageSize default to 0 and 4 when absent or non-numeric;
// an explicit negative pageNumber or non-positive pageSize is rejected
// with 400.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	params := ListUsersParams{
		PageNumber: parseQueryInt(r, "pageNumber", DefaultPageNumber),
		PageSize:   parseQueryInt(r, "pageSize", DefaultPageSize),
	}

	if err := shared.ValidateRequest(params); err != nil {
		log.Debug("invalid pagination parameters",
			slog.Int("page_number", params.PageNumber),
			slog.Int("page_size", params.PageSize))
		if params.PageNumber < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"pageNumber must be a non-negative integer")
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"pageSize must be a positive integer")
		return
	}

	users, err := h.userStore.List(r.Context(), params.PageNumber, params.PageSize)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed users",
		slog.Int("page_number", params.PageNumber),
		slog.Int("page_size", params.PageSize),
		slog.Int("count", len(users)))
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// CountUsers handles GET /users/count requests.
func (h *UserHandler) CountUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	count, err := h.userStore.Count(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("counted users", slog.Int("count", count))
	shared.RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}

// parseQueryInt parses an integer query parameter, returning the fallback
// when the parameter is absent or not a valid integer. Out-of-range values
// are returned as parsed so range validation can reject them explicitly.
func parseQueryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

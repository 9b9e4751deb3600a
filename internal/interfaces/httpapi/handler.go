package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/slug"
	"github.com/riskibarqy/scoreboard/internal/usecase"
)

const maxBodyBytes = 1 << 20

// ReadinessChecker reports whether the storage backend can serve requests.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	teamService *usecase.TeamService
	gameService *usecase.GameService
	readiness   ReadinessChecker
	logger      *logging.Logger
}

func NewHandler(
	teamService *usecase.TeamService,
	gameService *usecase.GameService,
	readiness ReadinessChecker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService: teamService,
		gameService: gameService,
		readiness:   readiness,
		logger:      logger,
	}
}

type routeDTO struct {
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

var routeIndex = map[string]routeDTO{
	"/teams":        {Methods: []string{"GET", "POST"}, Description: "list (optional ?search=) or create teams"},
	"/teams/{slug}": {Methods: []string{"GET", "PATCH", "DELETE"}, Description: "read, update or delete one team"},
	"/games":        {Methods: []string{"GET", "POST"}, Description: "list latest games (optional ?limit=, max 100) or create a game"},
	"/games/{id}":   {Methods: []string{"GET", "PATCH", "DELETE"}, Description: "read, update or delete one game"},
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Index")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, routeIndex)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	if h.readiness != nil {
		if err := h.readiness.Ping(ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed", "error", err)
			writeError(ctx, w, fmt.Errorf("%w: database: %w", usecase.ErrDependencyUnavailable, err))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ready"})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func slugParam(r *http.Request) (string, error) {
	value := strings.TrimSpace(r.PathValue("slug"))
	if value == "" || !slug.Valid(value) {
		return "", fmt.Errorf("%w: team slug=%q", usecase.ErrNotFound, value)
	}
	return value, nil
}

func idParam(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: game id must be a positive integer", usecase.ErrInvalidInput)
	}
	return id, nil
}

package ledger

import (
	"errors"
	"net/url"

	"practice-ledger/core/logger"
	"practice-ledger/core/reconcile"
	"practice-ledger/feature/ledger/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the ledger.
type Handler struct {
	service      *Service
	allowProcess bool
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, allowProcess bool) *Handler {
	return &Handler{service: service, allowProcess: allowProcess}
}

// RegisterRoutes registers the ledger routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/ledger")
	group.Get("/players", h.HandleGetStandings)
	group.Get("/players/:name", h.HandleGetPlayer)
	if h.allowProcess {
		group.Post("/process", h.HandleProcess)
	}
}

// HandleGetStandings returns every player.
// Query parameter sort=name|ranking selects the order; ranking by default.
func (h *Handler) HandleGetStandings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	players, err := h.service.Standings(c.Context(), c.Query("sort", SortByRanking))
	if err != nil {
		if errors.Is(err, ErrUnknownSort) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Standings lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"count":   len(players),
		"players": players,
	})
}

// HandleGetPlayer returns one player by exact name.
func (h *Handler) HandleGetPlayer(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid player name"})
	}

	p, err := h.service.Player(c.Context(), name)
	if errors.Is(err, ErrPlayerNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Player lookup failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(p)
}

// HandleProcess runs the ledger pipeline and returns the run summary.
// Query parameter dry_run=true applies rows without persisting anything.
func (h *Handler) HandleProcess(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts := reconcile.Options{DryRun: c.QueryBool("dry_run", false)}
	summary, err := h.service.Process(c.Context(), opts)
	if errors.Is(err, store.ErrLocked) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Ledger run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"summary": summary,
		})
	}

	l.Info("Ledger run finished via API",
		zap.Int("applied", summary.Applied),
		zap.Bool("dry_run", summary.DryRun),
	)
	return c.JSON(summary)
}

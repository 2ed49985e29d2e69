package urlcheck

import (
	"errors"
	"strings"

	"url-reconciler/core/logger"
	"url-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReconcileRequest is the body of POST /reconcile.
type ReconcileRequest struct {
	PairsA []reconcile.URLPair `json:"pairs_a"`
	PairsB []reconcile.URLPair `json:"pairs_b"`
}

// CanonicalResponse is the body returned by GET /reconcile/canonical.
type CanonicalResponse struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
}

// Handler handles HTTP requests for URL reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconcile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Post("/", h.HandleReconcile)
	group.Get("/sources", h.HandleReconcileSources)
	group.Get("/check", h.HandleCheck)
	group.Get("/canonical", h.HandleCanonical)
}

// HandleReconcile reconciles two posted pair lists.
// @Summary Reconcile URL Pairs
// @Description Resolves both lists, canonicalizes side A and reports pairs that do not point to the same resource. Pairs are aligned by id.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body ReconcileRequest true "Pairs for both sides"
// @Success 200 {object} reconcile.Report
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "No common or duplicate identifiers"
// @Router /reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if len(req.PairsA) == 0 || len(req.PairsB) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pairs_a and pairs_b are required"})
	}

	l.Info("Reconciling posted pairs", zap.Int("pairs_a", len(req.PairsA)), zap.Int("pairs_b", len(req.PairsB)))
	report, err := h.service.ReconcilePairs(c.UserContext(), req.PairsA, req.PairsB)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

// HandleReconcileSources reconciles the configured sources.
// @Summary Reconcile Configured Sources
// @Description Loads source_a and source_b and reconciles them. Reports are cached when reconcile.cache_ttl_seconds is set.
// @Tags reconcile
// @Produce json
// @Param refresh query boolean false "Ignore the cached report"
// @Success 200 {object} reconcile.Report
// @Failure 422 {object} map[string]string "No common or duplicate identifiers"
// @Failure 503 {object} map[string]string "Sources not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconcile/sources [get]
func (h *Handler) HandleReconcileSources(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.ReconcileSources(c.UserContext(), c.QueryBool("refresh"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(report)
}

// HandleCheck resolves and compares a single pair.
// @Summary Check One Pair
// @Description Resolves both URLs, canonicalizes the first and compares them.
// @Tags reconcile
// @Produce json
// @Param a query string true "Candidate URL"
// @Param b query string true "Reference URL"
// @Success 200 {object} reconcile.Verdict
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /reconcile/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	a, b := strings.TrimSpace(c.Query("a")), strings.TrimSpace(c.Query("b"))
	if a == "" || b == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query parameters a and b are required"})
	}

	return c.JSON(h.service.Check(c.UserContext(), a, b))
}

// HandleCanonical canonicalizes a URL.
// @Summary Canonicalize URL
// @Description Strips tracking parameters and trailing slashes. No request is made to the URL.
// @Tags reconcile
// @Produce json
// @Param url query string true "URL to canonicalize"
// @Success 200 {object} CanonicalResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /reconcile/canonical [get]
func (h *Handler) HandleCanonical(c *fiber.Ctx) error {
	raw := c.Query("url")
	if strings.TrimSpace(raw) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query parameter url is required"})
	}

	return c.JSON(CanonicalResponse{Input: raw, Canonical: h.service.Canonical(raw)})
}

// fail maps a reconciliation error to a status code.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, reconcile.ErrNoOverlap), errors.Is(err, reconcile.ErrDuplicateID):
		l.Warn("Reconciliation rejected", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrSourcesNotConfigured):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Reconciliation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

package compare

import (
	"bytes"
	"errors"

	"model-compare/core/document"
	"model-compare/core/logger"
	"model-compare/core/report"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Post("/", h.HandleCompareDocuments)
	group.Post("/objects", h.HandleCompareObjects)
	group.Get("/objects/report", h.HandleObjectsReport)
}

// HandleCompareDocuments compares two inline model exports.
// @Summary Compare Documents
// @Description Compares the node sets of two inline model exports by nodeid.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body DocumentsRequest true "Documents to compare"
// @Success 200 {object} reconcile.ComparisonResult "Comparison Result"
// @Failure 400 {object} ErrorResponse "Invalid Request"
// @Router /compare [post]
func (h *Handler) HandleCompareDocuments(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req DocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	res, err := h.service.CompareRaw(req.First, req.Second)
	if err != nil {
		return h.fail(c, l, err)
	}

	l.Info("Compared inline documents",
		zap.Int("only_in_first", res.Summary.OnlyInFirst),
		zap.Int("only_in_second", res.Summary.OnlyInSecond),
		zap.Int("common", res.Summary.Common),
	)
	return c.JSON(res)
}

// HandleCompareObjects compares two objects of the configured bucket.
// @Summary Compare Objects
// @Description Compares the node sets of two model exports stored in the bucket.
// @Tags compare
// @Accept json
// @Produce json
// @Param request body ObjectsRequest true "Objects to compare"
// @Success 200 {object} reconcile.ComparisonResult "Comparison Result"
// @Failure 400 {object} ErrorResponse "Invalid Request"
// @Failure 404 {object} ErrorResponse "Object Not Found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /compare/objects [post]
func (h *Handler) HandleCompareObjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ObjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	res, err := h.service.CompareObjects(c.Context(), req.First, req.Second)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(res)
}

// HandleObjectsReport renders the comparison report of two objects.
// @Summary Comparison Report
// @Description Renders the text (or JSON) report comparing two objects of the bucket.
// @Tags compare
// @Produce plain
// @Param first query string true "First object key"
// @Param second query string true "Second object key"
// @Param format query string false "Report format (text or json)"
// @Success 200 {string} string "Report"
// @Failure 400 {object} ErrorResponse "Invalid Request"
// @Failure 404 {object} ErrorResponse "Object Not Found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /compare/objects/report [get]
func (h *Handler) HandleObjectsReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ObjectsRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "invalid query")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}
	format, err := report.ParseFormat(req.Format)
	if err != nil {
		return badRequest(c, err.Error())
	}

	res, err := h.service.CompareObjects(c.Context(), req.First, req.Second)
	if err != nil {
		return h.fail(c, l, err)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, format, res); err != nil {
		return h.fail(c, l, err)
	}

	c.Attachment(report.OutputName(req.First, req.Second, format))
	return c.Send(buf.Bytes())
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, document.ErrInvalidDocument):
		status = fiber.StatusBadRequest
	case errors.Is(err, document.ErrInputNotFound):
		status = fiber.StatusNotFound
	}

	if status == fiber.StatusInternalServerError {
		l.Error("Comparison failed", zap.Error(err))
	} else {
		l.Warn("Comparison rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
}

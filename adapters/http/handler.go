package reporthttp

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/agronomiq/soilreport/report"
)

// DefaultBasePath is the route prefix for report endpoints.
const DefaultBasePath = "/reports/stv-direct"

// RequestIDHeader carries the per-request export identifier in responses.
const RequestIDHeader = "X-Export-ID"

// Config configures the HTTP adapter.
type Config struct {
	Exporter    *report.Exporter
	BasePath    string
	Logger      report.Logger
	IDGenerator func() string
}

// Handler exposes the report export operations over Fiber.
type Handler struct {
	exporter *report.Exporter
	basePath string
	logger   report.Logger
	nextID   func() string
}

// NewHandler creates an HTTP handler for report exports.
func NewHandler(cfg Config) *Handler {
	basePath := strings.TrimSuffix(cfg.BasePath, "/")
	if basePath == "" {
		basePath = DefaultBasePath
	}
	logger := cfg.Logger
	if logger == nil {
		logger = report.NopLogger{}
	}
	nextID := cfg.IDGenerator
	if nextID == nil {
		nextID = uuid.NewString
	}
	return &Handler{
		exporter: cfg.Exporter,
		basePath: basePath,
		logger:   logger,
		nextID:   nextID,
	}
}

// RegisterRoutes registers report endpoints on a Fiber router.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Get(h.basePath+"/:test_id", h.Single)
	router.Post(h.basePath+"/bulk", h.Bulk)
}

// Single handles GET <base>/:test_id and returns the encoded PDF payload.
func (h *Handler) Single(c *fiber.Ctx) error {
	if h == nil || h.exporter == nil {
		return writeError(c, report.NewError(report.KindInternal, "exporter is not configured", nil))
	}

	requestID := h.nextID()
	c.Set(RequestIDHeader, requestID)

	testID := c.Params("test_id")
	result, err := h.exporter.ExportSingle(c.UserContext(), testID)
	if err != nil {
		h.logger.Errorf("single export %s failed for test %s: %v", requestID, testID, err)
		return writeError(c, err)
	}

	h.logger.Infof("single export %s completed: %s", requestID, result.Filename)
	return c.JSON(result)
}

type bulkRequest struct {
	TestIDs []string `json:"test_ids"`
}

// Bulk handles POST <base>/bulk with a JSON body of test identifiers.
func (h *Handler) Bulk(c *fiber.Ctx) error {
	if h == nil || h.exporter == nil {
		return writeError(c, report.NewError(report.KindInternal, "exporter is not configured", nil))
	}

	requestID := h.nextID()
	c.Set(RequestIDHeader, requestID)

	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, report.NewError(report.KindValidation, "request body must be JSON with a test_ids array", err))
	}

	result, err := h.exporter.ExportBulk(c.UserContext(), req.TestIDs)
	if err != nil {
		h.logger.Errorf("bulk export %s failed: %v", requestID, err)
		return writeError(c, err)
	}

	h.logger.Infof("bulk export %s completed: %s", requestID, result.Filename)
	return c.JSON(result)
}

// ErrorResponse describes JSON error responses.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains error details.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func writeError(c *fiber.Ctx, err error) error {
	ge := report.AsGoError(err)
	status := statusFromKind(report.KindFromError(err))
	return c.Status(status).JSON(ErrorResponse{
		Error: ErrorBody{
			Message: ge.Message,
			Code:    ge.TextCode,
		},
	})
}

func statusFromKind(kind report.ErrorKind) int {
	switch kind {
	case report.KindValidation:
		return fiber.StatusBadRequest
	case report.KindNotFound:
		return fiber.StatusNotFound
	case report.KindTimeout:
		return fiber.StatusGatewayTimeout
	case report.KindNotImpl:
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

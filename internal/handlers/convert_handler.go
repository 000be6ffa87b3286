package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"converter-service/internal/config"
	"converter-service/internal/converter"
	"converter-service/internal/middleware"
	"converter-service/internal/models"
)

// ConvertHandler exposes the marketplace file conversion endpoint.
type ConvertHandler struct {
	service *converter.Service
	cfg     *config.Config
	log     *logrus.Logger
}

func NewConvertHandler(service *converter.Service, cfg *config.Config, log *logrus.Logger) *ConvertHandler {
	return &ConvertHandler{service: service, cfg: cfg, log: log}
}

// Convert converts an uploaded marketplace spreadsheet to the target format
// @Summary Convert a product spreadsheet between marketplace formats
// @Description Accepts a CSV or XLSX file, auto-detects its source schema and returns a bulk-upload file for the target marketplace. Validation failures return the full per-row error list and no file.
// @Tags Conversion
// @Accept multipart/form-data
// @Produce text/csv
// @Param file formData file true "Source spreadsheet (CSV or XLSX)"
// @Param targetFormat formData string true "Target format" Enums(ecokart, ebay, google, facebook)
// @Param sourceFormat formData string false "Source format override"
// @Param templateFile formData file false "Template override for composed targets"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /convert [post]
func (h *ConvertHandler) Convert(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.respondError(c, http.StatusBadRequest, models.CodeFileRequired, "Please upload a CSV or XLSX file", nil)
		return
	}
	defer file.Close()

	if header.Size > h.cfg.MaxUploadBytes() {
		h.respondError(c, http.StatusRequestEntityTooLarge, models.CodeFileTooLarge,
			fmt.Sprintf("File size cannot exceed %dMB", h.cfg.MaxUploadMB), nil)
		return
	}

	target, ok := models.ParseSchema(c.PostForm("targetFormat"))
	if !ok {
		h.respondError(c, http.StatusBadRequest, models.CodeInvalidTarget,
			"targetFormat must be one of: ecokart, ebay, google, facebook", nil)
		return
	}

	// Optional source override; an unknown value is ignored rather than
	// rejected since detection is best-effort anyway.
	sourceOverride, _ := models.ParseSchema(c.PostForm("sourceFormat"))

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, models.CodeParseError, "Failed to read uploaded file", nil)
		return
	}

	templateOverride, err := h.readTemplateOverride(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, models.CodeParseError, "Failed to read template file", nil)
		return
	}

	result, err := h.service.Convert(converter.Request{
		File:             data,
		Filename:         header.Filename,
		Target:           target,
		SourceOverride:   sourceOverride,
		TemplateOverride: templateOverride,
	})
	if err != nil {
		h.respondConvertError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

func (h *ConvertHandler) readTemplateOverride(c *gin.Context) ([]byte, error) {
	file, _, err := c.Request.FormFile("templateFile")
	if err != nil {
		// No override supplied.
		return nil, nil
	}
	defer file.Close()
	return io.ReadAll(file)
}

// respondConvertError maps the converter's typed errors to stable error
// codes. Unexpected failures are logged and surfaced as a generic failure,
// never swallowed into a success response.
func (h *ConvertHandler) respondConvertError(c *gin.Context, err error) {
	var (
		parseErr      *converter.ParseError
		missingHdrErr *converter.MissingHeaderError
		validationErr *converter.ValidationErrors
		templateErr   *converter.TemplateNotFoundError
	)

	switch {
	case errors.Is(err, converter.ErrEmptyFile):
		h.respondError(c, http.StatusBadRequest, models.CodeEmptyFile, "The file is empty or contains no data rows", nil)
	case errors.As(err, &parseErr):
		h.respondError(c, http.StatusBadRequest, models.CodeParseError, parseErr.Error(), nil)
	case errors.As(err, &missingHdrErr):
		h.respondError(c, http.StatusBadRequest, models.CodeMissingHeaders, missingHdrErr.Error(), nil)
	case errors.As(err, &validationErr):
		h.respondError(c, http.StatusBadRequest, models.CodeValidationFailed, "Your file contains validation errors", validationErr.Errors)
	case errors.As(err, &templateErr):
		h.respondError(c, http.StatusBadRequest, models.CodeTemplateNotFound, templateErr.Error(), nil)
	default:
		h.log.WithError(err).Error("conversion failed")
		h.respondError(c, http.StatusInternalServerError, models.CodeConversionFailed, "An unexpected error occurred during conversion", nil)
	}
}

func (h *ConvertHandler) respondError(c *gin.Context, status int, code, message string, rowErrors []models.RowError) {
	c.JSON(status, models.ErrorResponse{
		Success:   false,
		Error:     models.Error{Code: code, Message: message},
		Errors:    rowErrors,
		RequestID: c.GetString(middleware.RequestIDKey),
	})
}

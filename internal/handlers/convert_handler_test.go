package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converter-service/internal/config"
	"converter-service/internal/converter"
	"converter-service/internal/middleware"
	"converter-service/internal/models"
)

const ecokartCSV = "SKU,Name,Price,CategoryName\n" +
	"WID-1,Blue Widget,24.99,Men's Clothing\n" +
	"WID-2,Red Widget,14.50,Toys & Games\n"

func testConfig() *config.Config {
	return &config.Config{
		Port:              "8093",
		Environment:       "test",
		MaxUploadMB:       10,
		DefaultCurrency:   "GBP",
		StorefrontBaseURL: "https://ecokartuk.com",
	}
}

func writeTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"ebay-listing-template.csv":         "Action(SiteID=UK|Country=GB|Currency=GBP|Version=1191),*Category,*Title\n",
		"google-merchant-template.csv":      "# feed\nid,title,price\n",
		"facebook-marketplace-template.csv": "# catalog\nid,title,price\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func setupRouter(t *testing.T, cfg *config.Config, templateDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	service := converter.NewService(converter.NewDirTemplateProvider(templateDir), converter.GeneratorOptions{
		Currency:          cfg.DefaultCurrency,
		StorefrontBaseURL: cfg.StorefrontBaseURL,
	}, log)
	handler := NewConvertHandler(service, cfg, log)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.POST("/api/v1/convert", handler.Convert)
	return router
}

func multipartUpload(t *testing.T, fields map[string]string, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func postConvert(t *testing.T, router *gin.Engine, fields map[string]string, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartUpload(t, fields, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestConvertSuccess(t *testing.T) {
	router := setupRouter(t, testConfig(), writeTemplates(t))

	rec := postConvert(t, router, map[string]string{"targetFormat": "google"}, "products.csv", ecokartCSV)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, converter.ContentTypeCSV, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "google-upload-ready-")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "# feed", lines[0])
	assert.Equal(t, "id,title,price", lines[1])
}

func TestConvertToEcokartReturnsWorkbook(t *testing.T) {
	router := setupRouter(t, testConfig(), writeTemplates(t))

	rec := postConvert(t, router, map[string]string{"targetFormat": "ecokart"}, "products.csv", ecokartCSV)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, converter.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
}

func TestConvertMissingFile(t *testing.T) {
	router := setupRouter(t, testConfig(), writeTemplates(t))

	rec := postConvert(t, router, map[string]string{"targetFormat": "google"}, "", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, models.CodeFileRequired, resp.Error.Code)
	assert.NotEmpty(t, resp.RequestID)
}

func TestConvertInvalidTarget(t *testing.T) {
	router := setupRouter(t, testConfig(), writeTemplates(t))

	rec := postConvert(t, router, map[string]string{"targetFormat": "amazon"}, "products.csv", ecokartCSV)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.CodeInvalidTarget, decodeError(t, rec).Error.Code)
}

func TestConvertFileTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.MaxUploadMB = 0
	router := setupRouter(t, cfg, writeTemplates(t))

	rec := postConvert(t, router, map[string]string{"targetFormat": "google"}, "products.csv", ecokartCSV)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, models.CodeFileTooLarge, decodeError(t, rec).Error.Code)
}

func TestConvertEmptyFile(t *testing.T) {
	router := setupRouter(t, testConfig(), writeTemplates(t))

	rec := postConvert(t, router, map[string]string{"targetFormat": "google"}, "products.csv", "SKU,Name,Price\n")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.CodeEmptyFile, decodeError(t, rec).Error.Code)
}

func TestConvertMissingHeaders(t *testing.T) {
	router := setupRouter(t, testConfig(), writeTemplates(t))

	rec := postConvert(t, router, map[string]string{"targetFormat": "google"}, "products.csv",
		"Name,Description\nWidget,Nice\n")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, models.CodeMissingHeaders, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "sku")
}

func TestConvertValidationFailure(t *testing.T) {
	router := setupRouter(t, testConfig(), writeTemplates(t))

	csv := "SKU,Name,Price\n" +
		"WID-1,Blue Widget,24.99\n" +
		",Red Widget,14.50\n"

	rec := postConvert(t, router, map[string]string{"targetFormat": "google"}, "products.csv", csv)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, models.CodeValidationFailed, resp.Error.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, 3, resp.Errors[0].Row)
	assert.Equal(t, "SKU", resp.Errors[0].Field)
	assert.Contains(t, resp.Errors[0].Message, "cannot be empty")
}

func TestConvertTemplateNotFound(t *testing.T) {
	router := setupRouter(t, testConfig(), t.TempDir())

	rec := postConvert(t, router, map[string]string{"targetFormat": "ebay"}, "products.csv", ecokartCSV)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.CodeTemplateNotFound, decodeError(t, rec).Error.Code)
}

func TestConvertTemplateOverride(t *testing.T) {
	router := setupRouter(t, testConfig(), t.TempDir())

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "products.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(ecokartCSV))
	require.NoError(t, err)
	tmpl, err := w.CreateFormFile("templateFile", "custom.csv")
	require.NoError(t, err)
	_, err = tmpl.Write([]byte("# custom\nid,title,price\n"))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("targetFormat", "google"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "# custom\n"))
}

func TestConvertHonorsInboundRequestID(t *testing.T) {
	router := setupRouter(t, testConfig(), writeTemplates(t))

	body, contentType := multipartUpload(t, map[string]string{"targetFormat": "bogus"}, "products.csv", ecokartCSV)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-ID", "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", decodeError(t, rec).RequestID)
}

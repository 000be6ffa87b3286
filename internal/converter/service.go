package converter

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"converter-service/internal/models"
)

// MIME types of the produced attachments.
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Request is one conversion job: an uploaded file, the declared target, an
// optional source-schema override and an optional template override.
type Request struct {
	File             []byte
	Filename         string
	Target           models.Schema
	SourceOverride   models.Schema
	TemplateOverride []byte
}

// Result is the downloadable outcome of a successful conversion.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
	Source      models.Schema
	RowCount    int
}

// Service orchestrates one conversion per call. It holds no per-request
// state; concurrent calls share only the read-only taxonomy tables and
// generator options.
type Service struct {
	templates TemplateProvider
	opts      GeneratorOptions
	log       *logrus.Logger
	now       func() time.Time
}

func NewService(templates TemplateProvider, opts GeneratorOptions, log *logrus.Logger) *Service {
	return &Service{
		templates: templates,
		opts:      opts,
		log:       log,
		now:       time.Now,
	}
}

// Convert runs the full pipeline: parse, detect, header check, map with
// error accumulation, all-or-nothing gate, generate, compose. Error values
// are typed so the transport layer can map them to stable error codes.
func (s *Service) Convert(req Request) (*Result, error) {
	rows, err := ParseUpload(req.File, req.Filename)
	if err != nil {
		return nil, err
	}

	source := DetectSchema(rows[0], req.SourceOverride)
	if missing := MissingHeaders(rows[0], source); len(missing) > 0 {
		return nil, &MissingHeaderError{Schema: source, Missing: missing}
	}

	tr := NewTranslator()
	mapper := MapperFor(source)

	products := make([]*models.InternalProduct, 0, len(rows))
	var rowErrors []models.RowError
	for _, row := range rows {
		product, rowErr := mapper(row, tr)
		if rowErr != nil {
			rowErrors = append(rowErrors, *rowErr)
			continue
		}
		products = append(products, product)
	}
	if len(rowErrors) > 0 {
		// All-or-nothing: a partially converted file is never returned.
		return nil, &ValidationErrors{Errors: rowErrors}
	}

	opts := s.opts
	opts.Now = s.now()

	result, err := s.generate(req, source, products, tr, opts)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"source": source,
		"target": req.Target,
		"rows":   len(products),
		"file":   result.Filename,
	}).Info("conversion completed")

	return result, nil
}

func (s *Service) generate(req Request, source models.Schema, products []*models.InternalProduct, tr *Translator, opts GeneratorOptions) (*Result, error) {
	timestamp := opts.Now.UnixMilli()

	if req.Target == models.SchemaEcokart {
		data, err := GenerateEcokart(products, source)
		if err != nil {
			return nil, err
		}
		return &Result{
			Filename:    fmt.Sprintf("ecokart-upload-ready-%d.xlsx", timestamp),
			ContentType: ContentTypeXLSX,
			Data:        data,
			Source:      source,
			RowCount:    len(products),
		}, nil
	}

	var table Table
	switch req.Target {
	case models.SchemaEbay:
		table = GenerateEbay(products, tr, opts)
	case models.SchemaGoogle:
		table = GenerateGoogle(products, tr, opts)
	case models.SchemaFacebook:
		table = GenerateFacebook(products, tr, opts)
	default:
		return nil, fmt.Errorf("unsupported target format %q", req.Target)
	}

	template := req.TemplateOverride
	if len(template) == 0 {
		var err error
		template, err = s.templates.Template(req.Target)
		if err != nil {
			return nil, err
		}
	}

	data, err := ComposeCSV(template, PreambleLines(req.Target), table)
	if err != nil {
		return nil, err
	}

	return &Result{
		Filename:    fmt.Sprintf("%s-upload-ready-%d.csv", req.Target, timestamp),
		ContentType: ContentTypeCSV,
		Data:        data,
		Source:      source,
		RowCount:    len(products),
	}, nil
}

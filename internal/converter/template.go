package converter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"converter-service/internal/models"
)

// TemplateProvider supplies the bulk-upload template for targets that
// require a preserved preamble. Injected so tests can serve in-memory
// templates without a filesystem.
type TemplateProvider interface {
	Template(target models.Schema) ([]byte, error)
}

// templateFiles maps composed targets to their default template asset names.
var templateFiles = map[models.Schema]string{
	models.SchemaEbay:     "ebay-listing-template.csv",
	models.SchemaGoogle:   "google-merchant-template.csv",
	models.SchemaFacebook: "facebook-marketplace-template.csv",
}

// preambleLines is the per-target count of template lines preserved verbatim
// ahead of generated data. The eBay template is a bare header row so the
// composed file can be re-ingested by the eBay mapper; the feed templates
// carry an informational line above their header.
var preambleLines = map[models.Schema]int{
	models.SchemaEbay:     1,
	models.SchemaGoogle:   2,
	models.SchemaFacebook: 2,
}

// RequiresTemplate reports whether the target's output is composed beneath a
// template preamble.
func RequiresTemplate(target models.Schema) bool {
	_, ok := templateFiles[target]
	return ok
}

// PreambleLines returns the preserved line count for a composed target.
func PreambleLines(target models.Schema) int {
	return preambleLines[target]
}

// DirTemplateProvider reads default templates from a server-side directory.
// Template assets are read-only configuration; this subsystem never writes
// them.
type DirTemplateProvider struct {
	Dir string
}

func NewDirTemplateProvider(dir string) *DirTemplateProvider {
	return &DirTemplateProvider{Dir: dir}
}

func (p *DirTemplateProvider) Template(target models.Schema) ([]byte, error) {
	name, ok := templateFiles[target]
	if !ok {
		return nil, fmt.Errorf("target %q does not use a template", target)
	}
	path := filepath.Join(p.Dir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &TemplateNotFoundError{Target: target, Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return data, nil
}

// ComposeCSV splices generated rows beneath the first preamble lines of the
// template, which are preserved byte-for-byte. The generated table's own
// header is discarded: the template's header line is the contract.
func ComposeCSV(template []byte, preamble int, table Table) ([]byte, error) {
	normalized := strings.ReplaceAll(string(template), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(normalized, "\n"), "\n")
	if len(lines) < preamble {
		return nil, fmt.Errorf("template has %d line(s), need at least %d preamble lines", len(lines), preamble)
	}

	var buf bytes.Buffer
	for _, line := range lines[:preamble] {
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	w := csv.NewWriter(&buf)
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to encode data row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

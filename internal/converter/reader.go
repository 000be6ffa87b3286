package converter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// rowNumberKey carries the 1-based physical row number through parsing so
// validation errors point at the spreadsheet row the user sees. The first
// data row is 2 (row 1 is the header).
const rowNumberKey = "_row"

// Row is a single parsed record. Keys are normalized headers; cells that
// were empty in the source are present as "" so downstream numeric parse
// failures always mean genuinely malformed input.
type Row map[string]string

// Num returns the physical row number recorded at parse time.
func (r Row) Num() int {
	n, _ := strconv.Atoi(r[rowNumberKey])
	return n
}

// Value returns the first non-empty cell among the given canonical keys.
func (r Row) Value(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}

// normalizeHeader canonicalizes a header cell: trimmed, lower-cased, inner
// whitespace collapsed, template "required" markers stripped. Applied once at
// parse time so all downstream lookups are exact-match.
func normalizeHeader(key string) string {
	key = strings.TrimSpace(strings.ToLower(key))
	key = strings.TrimSuffix(key, " *")
	return strings.Join(strings.Fields(key), " ")
}

// xlsxMagic is the ZIP local-file signature every XLSX workbook starts with.
var xlsxMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// ParseUpload decodes an uploaded spreadsheet into header-normalized rows.
// The encoding is chosen by file extension, falling back to content sniffing
// when the extension is unknown. Returns ErrEmptyFile when no data rows
// result, or a ParseError when the blob matches neither encoding.
func ParseUpload(data []byte, filename string) ([]Row, error) {
	var rows []Row
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		rows, err = parseCSV(data)
	case ".xlsx", ".xlsm":
		rows, err = parseXLSX(data)
	default:
		if bytes.HasPrefix(data, xlsxMagic) {
			rows, err = parseXLSX(data)
		} else {
			rows, err = parseCSV(data)
		}
	}
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

func parseCSV(data []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	// Marketplace exports are frequently ragged; tolerate varying widths.
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range headers {
		headers[i] = normalizeHeader(headers[i])
	}

	var rows []Row
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading line %d: %w", lineNum+1, err)
		}

		row := make(Row, len(headers)+1)
		for _, h := range headers {
			if h != "" {
				row[h] = ""
			}
		}
		for i, value := range record {
			if i < len(headers) && headers[i] != "" {
				row[headers[i]] = strings.TrimSpace(value)
			}
		}
		row[rowNumberKey] = strconv.Itoa(lineNum + 1)
		rows = append(rows, row)
		lineNum++
	}

	return rows, nil
}

func parseXLSX(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	// First sheet only; a "Products" sheet wins if present.
	sheetName := sheets[0]
	for _, name := range sheets {
		if strings.EqualFold(name, "Products") {
			sheetName = name
			break
		}
	}

	excelRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(excelRows) == 0 {
		return nil, nil
	}

	headers := excelRows[0]
	for i := range headers {
		headers[i] = normalizeHeader(headers[i])
	}

	var rows []Row
	for rowIdx, excelRow := range excelRows[1:] {
		row := make(Row, len(headers)+1)
		for _, h := range headers {
			if h != "" {
				row[h] = ""
			}
		}
		for i, value := range excelRow {
			if i < len(headers) && headers[i] != "" {
				row[headers[i]] = strings.TrimSpace(value)
			}
		}
		row[rowNumberKey] = strconv.Itoa(rowIdx + 2)
		rows = append(rows, row)
	}

	return rows, nil
}

package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"converter-service/internal/models"
)

// TemplateHandler serves the blank Ecokart source template sellers fill in
// before converting.
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// GetSourceTemplate returns the Ecokart source template definition or file
// @Summary Download the Ecokart source template
// @Description Returns the column definitions as JSON, or a headers-only CSV/XLSX file ready to fill in.
// @Tags Conversion
// @Produce json
// @Param format query string false "Template format" Enums(json, csv, xlsx) default(json)
// @Success 200 {object} models.SuccessResponse
// @Router /convert/template [get]
func (h *TemplateHandler) GetSourceTemplate(c *gin.Context) {
	format := c.DefaultQuery("format", "json")

	template := models.EcokartTemplate()

	switch format {
	case "csv":
		h.generateCSVTemplate(c, template)
	case "xlsx":
		h.generateXLSXTemplate(c, template)
	default:
		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data:    template,
		})
	}
}

// generateCSVTemplate generates and downloads a CSV template (headers only)
func (h *TemplateHandler) generateCSVTemplate(c *gin.Context, template models.SourceTemplate) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=ecokart_source_template.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	headers := make([]string, len(template.Columns))
	for i, col := range template.Columns {
		headers[i] = col.Name
	}
	writer.Write(headers)
}

// generateXLSXTemplate generates and downloads an Excel template
func (h *TemplateHandler) generateXLSXTemplate(c *gin.Context, template models.SourceTemplate) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Products"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	requiredStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C65911"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, col := range template.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		headerText := col.Name
		if col.Required {
			headerText = col.Name + " *"
		}
		f.SetCellValue(sheetName, cell, headerText)

		if col.Required {
			f.SetCellStyle(sheetName, cell, cell, requiredStyle)
		} else {
			f.SetCellStyle(sheetName, cell, cell, headerStyle)
		}

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	// Instructions sheet with column reference.
	f.NewSheet("Instructions")
	f.SetCellValue("Instructions", "A1", "Ecokart Conversion Template Instructions")

	f.SetCellValue("Instructions", "A3", "Fill the Products sheet and upload it to the converter with your target marketplace.")
	f.SetCellValue("Instructions", "A4", "Columns marked * are required; every other column may be left blank.")
	f.SetCellValue("Instructions", "A5", "Category Name drives marketplace category mapping; unmapped categories fall back to the marketplace default.")

	f.SetCellValue("Instructions", "A7", "Column Definitions:")
	f.SetCellValue("Instructions", "A8", "Column")
	f.SetCellValue("Instructions", "B8", "Description")
	f.SetCellValue("Instructions", "C8", "Required")
	f.SetCellValue("Instructions", "D8", "Type")
	f.SetCellValue("Instructions", "E8", "Example")

	for i, col := range template.Columns {
		row := i + 9
		f.SetCellValue("Instructions", fmt.Sprintf("A%d", row), col.Name)
		f.SetCellValue("Instructions", fmt.Sprintf("B%d", row), col.Description)
		required := "Optional"
		if col.Required {
			required = "Required"
		}
		f.SetCellValue("Instructions", fmt.Sprintf("C%d", row), required)
		f.SetCellValue("Instructions", fmt.Sprintf("D%d", row), col.Type)
		f.SetCellValue("Instructions", fmt.Sprintf("E%d", row), col.Example)
	}

	f.SetColWidth("Instructions", "A", "A", 25)
	f.SetColWidth("Instructions", "B", "B", 60)
	f.SetColWidth("Instructions", "C", "C", 15)
	f.SetColWidth("Instructions", "D", "D", 15)
	f.SetColWidth("Instructions", "E", "E", 40)

	sheetIdx, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIdx)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=ecokart_source_template.xlsx")

	f.Write(c.Writer)
}

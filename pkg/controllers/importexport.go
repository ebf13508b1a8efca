package controllers

import (
	"log"
	"net/http"

	"lumora-io/api/internal/common"
	"lumora-io/api/pkg/services"
	"lumora-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	exportService *services.ExportService
}

func InitExportController(exportService *services.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

func (ec *ExportController) GetExportTemplate(c *gin.Context) {
	f, err := ec.exportService.BuildTemplate()
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	writeWorkbook(c, f, "products-template.xlsx")
}

func (ec *ExportController) ExportProducts(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	f, err := ec.exportService.ExportItems(ctx)
	if err != nil {
		util.HandleError(c, http.StatusInternalServerError, err)
		return
	}

	writeWorkbook(c, f, "products.xlsx")
}

func (ec *ExportController) ImportProducts(c *gin.Context) {
	ctx, cancel := WithTimeout()
	defer cancel()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	report, err := ec.exportService.ImportItems(ctx, file)
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return
	}

	for i, rowErr := range report.Errors {
		if i >= common.MAX_IMPORT_ERROR_DETAILS {
			log.Printf("import: %d more row errors omitted", len(report.Errors)-i)
			break
		}
		log.Printf("import: row %d: %s", rowErr.Row, rowErr.Error)
	}

	util.HandleSuccess(c, http.StatusOK, "Import finished", report)
}

func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("error writing workbook: %v", err)
	}
}

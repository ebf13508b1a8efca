package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lumora-io/api/pkg/models"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

const exportSheet = "Products"

// PriceOnRequestCell is the spreadsheet spelling of the price sentinel.
const PriceOnRequestCell = "on request"

var exportHeader = []string{"Barcode", "Name", "Description", "Price", "Category", "Subcategory", "Specs", "Images"}

// itemStore is the slice of ItemService the import/export paths need.
type itemStore interface {
	AllItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, req models.ItemRequest) (*mongo.InsertOneResult, error)
}

type ExportService struct {
	itemService itemStore
}

func NewExportService(itemService *ItemService) *ExportService {
	return &ExportService{itemService: itemService}
}

// BuildTemplate produces a workbook with the import header row only.
func (s *ExportService) BuildTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}
	return f, nil
}

// ExportItems writes every item to a workbook, one row per item.
func (s *ExportService) ExportItems(ctx context.Context) (*excelize.File, error) {
	items, err := s.itemService.AllItems(ctx)
	if err != nil {
		return nil, err
	}

	f, err := s.BuildTemplate()
	if err != nil {
		return nil, err
	}

	for i, item := range items {
		row := FormatItemRow(item)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// FormatItemRow renders an item as spreadsheet cells in header order.
func FormatItemRow(item models.Item) []interface{} {
	price := interface{}(item.Price)
	if item.Price == models.PriceOnRequestSentinel {
		price = PriceOnRequestCell
	}

	return []interface{}{
		item.Barcode,
		item.Name,
		item.Description,
		price,
		item.Category,
		item.Subcategory,
		strings.Join(item.Specs, ";"),
		strings.Join(item.Images, ";"),
	}
}

// ParseImportRow validates one data row. rowNum is 1-based as shown in the
// spreadsheet, so callers pass the header-adjusted number.
func ParseImportRow(row []string, rowNum int) (models.ItemRequest, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	req := models.ItemRequest{
		Barcode:     cell(0),
		Name:        cell(1),
		Description: cell(2),
		Category:    cell(4),
		Subcategory: cell(5),
		Specs:       splitList(cell(6)),
		Images:      splitList(cell(7)),
	}

	if req.Barcode == "" {
		return models.ItemRequest{}, errors.Errorf("row %d: barcode is required", rowNum)
	}
	if req.Name == "" {
		return models.ItemRequest{}, errors.Errorf("row %d: name is required", rowNum)
	}

	priceCell := cell(3)
	if priceCell != "" && !strings.EqualFold(priceCell, PriceOnRequestCell) {
		price, err := strconv.ParseFloat(priceCell, 64)
		if err != nil {
			return models.ItemRequest{}, errors.Errorf("row %d: invalid price %q", rowNum, priceCell)
		}
		req.Price = &price
	}

	return req, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ImportRow pairs a parsed request with the spreadsheet row it came from,
// so later failures can still cite the row.
type ImportRow struct {
	Row     int
	Request models.ItemRequest
}

// ParseImportRows walks the data rows (header excluded) and splits them into
// importable rows and a per-row report. Every malformed row contributes one
// report error.
func ParseImportRows(rows [][]string) ([]ImportRow, models.ImportReport) {
	report := models.ImportReport{Errors: []models.ImportRowError{}}
	var parsed []ImportRow

	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header row
		if emptyRow(row) {
			continue
		}
		report.Total++

		req, err := ParseImportRow(row, rowNum)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, models.ImportRowError{Row: rowNum, Error: err.Error()})
			continue
		}
		report.Success++
		parsed = append(parsed, ImportRow{Row: rowNum, Request: req})
	}

	return parsed, report
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportItems reads a multipart xlsx upload and inserts each well-formed
// row. Insert failures demote the row from success to skipped so the report
// always reflects per-row outcomes.
func (s *ExportService) ImportItems(ctx context.Context, r io.Reader) (models.ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.ImportReport{}, errors.Wrap(err, "not a readable xlsx file")
	}
	defer f.Close()

	sheet := exportSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.ImportReport{}, err
	}
	if len(rows) <= 1 {
		return models.ImportReport{Errors: []models.ImportRowError{}}, nil
	}

	parsed, report := ParseImportRows(rows[1:])
	return s.insertImportRows(ctx, parsed, report), nil
}

// insertImportRows inserts each parsed row. Insert failures demote the row
// from success to skipped, keeping its spreadsheet row in the report.
func (s *ExportService) insertImportRows(ctx context.Context, rows []ImportRow, report models.ImportReport) models.ImportReport {
	for _, row := range rows {
		if _, err := s.itemService.CreateItem(ctx, row.Request); err != nil {
			report.Success--
			report.Skipped++
			report.Errors = append(report.Errors, models.ImportRowError{
				Row:   row.Row,
				Error: fmt.Sprintf("row %d: insert failed for barcode %s: %v", row.Row, row.Request.Barcode, err),
			})
		}
	}
	return report
}

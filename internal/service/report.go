package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const stockSheet = "Stock"

var stockReportHeader = []interface{}{"ID", "Product", "Category", "Brand", "Stock"}

type ReportService struct {
	products ProductReader
}

func NewReportService(products ProductReader) *ReportService {
	return &ReportService{
		products: products,
	}
}

// StockWorkbook renders the current stock of every product as an xlsx file.
func (s *ReportService) StockWorkbook(ctx context.Context) ([]byte, error) {
	products, err := s.products.FindProducts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("s.products.FindProducts -> %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", stockSheet); err != nil {
		return nil, fmt.Errorf("f.SetSheetName -> %w", err)
	}

	if err := f.SetSheetRow(stockSheet, "A1", &stockReportHeader); err != nil {
		return nil, fmt.Errorf("f.SetSheetRow -> %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("f.NewStyle -> %w", err)
	}
	if err := f.SetCellStyle(stockSheet, "A1", "E1", bold); err != nil {
		return nil, fmt.Errorf("f.SetCellStyle -> %w", err)
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
		}

		row := []interface{}{p.ID, p.Name, p.CategoryName, p.BrandName, p.Stock}
		if err := f.SetSheetRow(stockSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("f.SetSheetRow -> %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("f.Write -> %w", err)
	}

	return buf.Bytes(), nil
}

package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateQuotationExcel_Contents(t *testing.T) {
	q := validQuotation()

	result, err := GenerateQuotationExcel(q)
	if err != nil {
		t.Fatalf("GenerateQuotationExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("could not open generated workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != q.QuoteName {
		t.Errorf("sheet name = %q, want %q", sheet, q.QuoteName)
	}

	checks := map[string]string{
		"A1": "DARSHAN ENTERPRISES",
		"A2": "Quotation: Painting Work Quotation",
		"E2": "Date: 01-06-2024",
		"A6": "Sr. No.",
		"B6": "Description",
		"F6": "Amount",
		"B7": "Epoxy painting",
		"E8": "Total",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}

	total, err := f.GetCellValue(sheet, "F8")
	if err != nil {
		t.Fatalf("GetCellValue(F8): %v", err)
	}
	if total != "1250" {
		t.Errorf("total cell = %q, want %q", total, "1250")
	}
}

func TestGenerateQuotationExcel_SheetNameFallbacks(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		q := validQuotation()
		q.QuoteName = ""

		result, err := GenerateQuotationExcel(q)
		if err != nil {
			t.Fatalf("GenerateQuotationExcel() error = %v", err)
		}

		f, err := excelize.OpenReader(bytes.NewReader(result))
		if err != nil {
			t.Fatalf("could not open generated workbook: %v", err)
		}
		defer f.Close()

		if got := f.GetSheetName(0); got != "Quotation" {
			t.Errorf("sheet name = %q, want %q", got, "Quotation")
		}
	})

	t.Run("long name capped", func(t *testing.T) {
		q := validQuotation()
		q.QuoteName = strings.Repeat("x", 40)

		result, err := GenerateQuotationExcel(q)
		if err != nil {
			t.Fatalf("GenerateQuotationExcel() error = %v", err)
		}

		f, err := excelize.OpenReader(bytes.NewReader(result))
		if err != nil {
			t.Fatalf("could not open generated workbook: %v", err)
		}
		defer f.Close()

		if got := f.GetSheetName(0); len(got) != 31 {
			t.Errorf("sheet name length = %d, want 31", len(got))
		}
	})
}

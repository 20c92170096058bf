package services

import (
	"fmt"
	"testing"
)

func TestGenerateQuotationPDF_Basic(t *testing.T) {
	q := validQuotation()

	result, err := GenerateQuotationPDF(q, PDFAssets{})
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateQuotationPDF_NoAssetsFallsBackToTextHeader(t *testing.T) {
	// No letterhead and no signature: the document must still generate with
	// the company name header and the signatory gap.
	q := validQuotation()
	q.HeaderImage = ""

	result, err := GenerateQuotationPDF(q, PDFAssets{})
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
}

func TestGenerateQuotationPDF_CustomHeaderImage(t *testing.T) {
	q := validQuotation()
	dataURL, err := EncodeHeaderUpload(pngBytes(t))
	if err != nil {
		t.Fatalf("EncodeHeaderUpload() error = %v", err)
	}
	q.HeaderImage = dataURL

	result, err := GenerateQuotationPDF(q, PDFAssets{})
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
}

func TestGenerateQuotationPDF_CorruptHeaderImageDoesNotAbort(t *testing.T) {
	q := validQuotation()
	q.HeaderImage = "data:image/png;base64,bm90IGEgcG5n" // decodes to "not a png"

	result, err := GenerateQuotationPDF(q, PDFAssets{})
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v (image failure must degrade, not abort)", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
}

func TestGenerateQuotationPDF_BundledAssets(t *testing.T) {
	q := validQuotation()
	assets := PDFAssets{Letterhead: pngBytes(t), Signature: pngBytes(t)}

	result, err := GenerateQuotationPDF(q, assets)
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
}

func TestGenerateQuotationPDF_ManyItemsPaginates(t *testing.T) {
	q := validQuotation()
	rate := 15.0
	q.LineItems = nil
	for i := 0; i < 60; i++ {
		q.LineItems = append(q.LineItems, LineItem{
			Description: fmt.Sprintf("Surface preparation and epoxy coating of structural steel member number %d including all consumables", i+1),
			Quantity:    float64(i + 1),
			Unit:        "Sqm",
			Rate:        &rate,
		})
	}

	result, err := GenerateQuotationPDF(q, PDFAssets{})
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
}

func TestGenerateQuotationPDF_LongTextBlocks(t *testing.T) {
	q := validQuotation()
	q.CustomerAddress = "Very long customer address that needs wrapping over multiple lines, Industrial Estate Phase II, Near the old pump house, Ankleshwar, Gujarat 393002"
	q.Subject = "Quotation for complete surface preparation, priming and two-coat epoxy painting of all structural steel, piping and equipment at the Ankleshwar plant"
	q.Terms = q.Terms + "\n6. Extra term one.\n7. Extra term two.\n8. Extra term three."

	result, err := GenerateQuotationPDF(q, PDFAssets{})
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
}

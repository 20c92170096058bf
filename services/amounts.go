package services

// LineAmount returns the derived amount for a single line item. A missing
// rate counts as zero.
func LineAmount(item LineItem) float64 {
	rate := 0.0
	if item.Rate != nil {
		rate = *item.Rate
	}
	return item.Quantity * rate
}

// TotalAmount sums the derived amounts over all line items.
func TotalAmount(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += LineAmount(item)
	}
	return total
}

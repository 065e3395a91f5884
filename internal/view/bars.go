package view

import (
	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
)

// Bar is one row of the category ranking chart.
type Bar struct {
	Category constants.Category
	Label    string
	Count    int
	Percent  float64 // width relative to the largest entry, 0-100
}

// ScaleBars scales category counts relative to the maximum count, so the
// largest category always renders at full width. An empty ranking yields
// nil; the renderer shows a placeholder instead of a zero-bar chart.
func ScaleBars(categories []models.CategoryCount) []Bar {
	if len(categories) == 0 {
		return nil
	}

	maxCount := 0
	for _, c := range categories {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	bars := make([]Bar, 0, len(categories))
	for _, c := range categories {
		pct := 0.0
		if maxCount > 0 {
			pct = float64(c.Count) / float64(maxCount) * 100
		}
		bars = append(bars, Bar{
			Category: c.Category,
			Label:    constants.CategoryLabel(c.Category),
			Count:    c.Count,
			Percent:  pct,
		})
	}
	return bars
}

package view

import (
	"math"
	"testing"

	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
)

func TestScaleBars_MaxIsFullWidth(t *testing.T) {
	bars := ScaleBars([]models.CategoryCount{
		{Category: constants.CategoryFitness, Count: 40},
		{Category: constants.CategoryHealth, Count: 10},
		{Category: constants.CategorySleep, Count: 20},
	})

	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	if bars[0].Percent != 100 {
		t.Errorf("max-count bar width = %v, want 100", bars[0].Percent)
	}
	if bars[1].Percent != 25 {
		t.Errorf("10/40 bar width = %v, want 25", bars[1].Percent)
	}
	if bars[2].Percent != 50 {
		t.Errorf("20/40 bar width = %v, want 50", bars[2].Percent)
	}
}

func TestScaleBars_Proportionality(t *testing.T) {
	counts := []models.CategoryCount{
		{Category: constants.CategoryLearning, Count: 7},
		{Category: constants.CategoryFinance, Count: 3},
	}
	bars := ScaleBars(counts)
	want := float64(3) / float64(7) * 100
	if math.Abs(bars[1].Percent-want) > 1e-9 {
		t.Errorf("3/7 bar width = %v, want %v", bars[1].Percent, want)
	}
}

func TestScaleBars_Empty(t *testing.T) {
	if bars := ScaleBars(nil); bars != nil {
		t.Errorf("empty ranking must yield nil, got %v", bars)
	}
}

func TestScaleBars_Labels(t *testing.T) {
	bars := ScaleBars([]models.CategoryCount{
		{Category: constants.CategorySleep, Count: 1},
		{Category: "weird", Count: 1},
	})
	if bars[0].Label != "😴 Сон" {
		t.Errorf("known category label = %q", bars[0].Label)
	}
	if bars[1].Label != "weird" {
		t.Errorf("unknown category must fall back to its raw value, got %q", bars[1].Label)
	}
}

// Package chart synthesizes generation series for the plant detail
// charts. Randomness and the reference time are injected so a fixed
// seed and instant always produce the same series.
package chart

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Period selects the chart range.
type Period string

const (
	Daily   Period = "daily"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

func (p Period) Valid() bool {
	switch p {
	case Daily, Monthly, Yearly:
		return true
	}
	return false
}

// Point is one chart sample.
type Point struct {
	Label   string  `json:"label"`
	PowerKW float64 `json:"power_kw"`
}

var shortMonths = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// Generate builds the series for one plant. ref anchors the series end
// and rng supplies all randomness. Unknown periods yield an empty
// series, matching the source's silent default branch.
func Generate(period Period, ref time.Time, capacityKW float64, rng *rand.Rand) []Point {
	switch period {
	case Daily:
		return daily(ref, capacityKW, rng)
	case Monthly:
		return monthly(ref, capacityKW, rng)
	case Yearly:
		return yearly(ref, capacityKW, rng)
	}
	return nil
}

// daily approximates a production curve: a sine over daylight hours
// scaled to 80% of capacity plus up to 100 kW of jitter, floored at 0.
func daily(ref time.Time, capacityKW float64, rng *rand.Rand) []Point {
	points := make([]Point, 0, 24)
	for i := 23; i >= 0; i-- {
		t := ref.Add(-time.Duration(i) * time.Hour)
		hour := t.Hour()
		power := math.Sin(float64(hour-6)*math.Pi/12)*capacityKW*0.8 + rng.Float64()*100
		points = append(points, Point{
			Label:   fmt.Sprintf("%d:00", hour),
			PowerKW: math.Max(0, power),
		})
	}
	return points
}

func monthly(ref time.Time, capacityKW float64, rng *rand.Rand) []Point {
	points := make([]Point, 0, 30)
	for i := 29; i >= 0; i-- {
		t := ref.AddDate(0, 0, -i)
		points = append(points, Point{
			Label:   fmt.Sprintf("%d/%d", t.Day(), int(t.Month())),
			PowerKW: capacityKW*0.4 + rng.Float64()*capacityKW*0.4,
		})
	}
	return points
}

func yearly(ref time.Time, capacityKW float64, rng *rand.Rand) []Point {
	points := make([]Point, 0, 12)
	for i := 11; i >= 0; i-- {
		t := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, -i, 0)
		points = append(points, Point{
			Label:   shortMonths[int(t.Month())-1],
			PowerKW: capacityKW*0.3 + rng.Float64()*capacityKW*0.3,
		})
	}
	return points
}

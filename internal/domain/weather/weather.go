// Package weather holds the weather snapshot value types.
package weather

import "time"

// Current is the current-conditions record.
type Current struct {
	Temperature float64 // °C
	Condition   string
	Icon        string
	Humidity    int     // percent
	WindSpeed   float64 // km/h
	UVIndex     int
}

// Day is a single forecast day.
type Day struct {
	Date      time.Time // midnight of the forecast day in the location's zone
	Offset    int       // days after today, 0..4
	MaxTemp   float64
	MinTemp   float64
	Condition string
	Icon      string
}

// Snapshot is the full weather view for the tour location.
type Snapshot struct {
	Location string
	Current  Current
	Forecast []Day
}

package models

import "time"

// WeatherReading is the current-conditions fact set for one city, as returned by the
// weather provider. All of City, Temperature, FeelsLike, Humidity and Conditions are
// populated; the client rejects payloads that lack any of them.
type WeatherReading struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"` // °C
	FeelsLike   float64   `json:"feelsLike"`   // °C
	Humidity    float64   `json:"humidity"`    // percent
	Conditions  string    `json:"conditions"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

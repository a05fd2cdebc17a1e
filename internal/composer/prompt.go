package composer

import (
	"strconv"
	"strings"

	"github.com/kjstillabower/weather-chat-service/internal/models"
)

// BuildPrompt renders the fixed instruction prompt for r. The five facts appear verbatim
// with their units; the model is told to use nothing else.
func BuildPrompt(r models.WeatherReading) string {
	var b strings.Builder
	b.WriteString("You are a helpful weather assistant.\n")
	b.WriteString("Use ONLY the data below. Do not add new facts, forecasts, or numbers that are not listed.\n")
	b.WriteString("You may add light practical advice that follows from these facts, such as what to wear or whether to carry an umbrella.\n\n")

	b.WriteString("City: " + r.City + "\n")
	b.WriteString("Temperature: " + formatNumber(r.Temperature) + "°C\n")
	b.WriteString("Feels Like: " + formatNumber(r.FeelsLike) + "°C\n")
	b.WriteString("Humidity: " + formatNumber(r.Humidity) + "%\n")
	b.WriteString("Condition: " + r.Conditions + "\n\n")

	b.WriteString("Reply in 2-3 natural, friendly sentences, like a human assistant would.\n")
	return b.String()
}

// formatNumber renders v in its shortest exact form: 30 -> "30", 15.5 -> "15.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

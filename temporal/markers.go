package temporal

import "regexp"

// Keywords that indicate need for current information.
// English plus Portuguese, matching the audiences the engine serves.
var freshnessKeywords = []string{
	"latest", "newest", "recent", "current", "today", "now",
	"this week", "this month", "this year", "breaking",
	"update", "updates", "new", "just", "announced",
	"último", "últimos", "recente", "atual", "hoje", "agora",
	"essa semana", "esse mês", "esse ano", "novidade",
	"atualização", "novo", "novos", "anunciado",
}

// Keywords that indicate historical queries with no freshness pressure.
var historicalKeywords = []string{
	"history", "historical", "origin", "origins", "invented",
	"founded", "first", "original", "classic", "traditional",
	"história", "histórico", "origem", "inventado", "fundado",
}

// Entity patterns that typically require fresh information.
var freshEntityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:price|prices|stock|stocks|market)\b`),      // financial
	regexp.MustCompile(`\b(?:weather|forecast|temperature)\b`),          // weather
	regexp.MustCompile(`\b(?:news|headlines|breaking)\b`),               // news
	regexp.MustCompile(`\b(?:score|scores|game|match|vs)\b`),            // sports
	regexp.MustCompile(`\b(?:version|release|update|patch)\b`),          // software
	regexp.MustCompile(`\b(?:gpt-?\d|claude|gemini|llama|mistral)\b`),   // AI models
}

// Markers that push a query from "recent" to "breaking".
var breakingPattern = regexp.MustCompile(
	`\b(?:breaking|today|right now|just (?:announced|released|happened)|happening now|hoje|agora)\b`)

var questionPattern = regexp.MustCompile(`\b(?:what is|who is|how to|where is)\b`)

var superlativePattern = regexp.MustCompile(`\b(?:best|top|most|fastest|cheapest)\b`)

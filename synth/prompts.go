package synth

import (
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/lancer/core"
)

// snippetLimit bounds how much of each snippet reaches the prompt.
const snippetLimit = 500

const promptTemplate = `You are a research assistant answering a question from web search results.

Current date: %s
Question: %s
%s
Search results, ordered most relevant first:

%s
Instructions:
- Answer the question directly using ONLY the search results above.
- Cite sources inline with bracketed indices, e.g. [1] or [2][3].
- Prefer results with higher freshness and authority percentages.
- If the results disagree, say so and cite both sides.
- If the results do not contain the answer, say so plainly. Do not invent facts.
- Keep the answer concise: a few sentences up to two short paragraphs.`

// intentGuidance renders a one-line steer matching the query's temporal
// reading.
func intentGuidance(intent core.TemporalIntent) string {
	switch intent.Label {
	case core.LabelBreaking:
		return "This is a breaking news question: prioritize the very newest results and mention how recent the information is.\n"
	case core.LabelRecent:
		return "This question is about current information: prefer recent results and note dates where relevant.\n"
	case core.LabelEvergreen:
		return "This question is about established knowledge: prefer authoritative results over merely recent ones.\n"
	default:
		return ""
	}
}

// buildPrompt renders the synthesis prompt. Results are numbered from 1;
// the model's bracketed citations index into this numbering.
func buildPrompt(query core.Query, intent core.TemporalIntent, results []core.ScoredResult, now time.Time) string {
	var block strings.Builder
	for i, result := range results {
		date := "undated"
		if result.PublishedAt != nil {
			date = result.PublishedAt.Format("2006-01-02")
		}

		snippet := result.Snippet
		if len(snippet) > snippetLimit {
			snippet = snippet[:snippetLimit] + "..."
		}

		fmt.Fprintf(&block, "[%d] %s (%s) [freshness: %.0f%%, authority: %.0f%%, sources: %s]\n%s\n%s\n\n",
			i+1,
			result.Title,
			date,
			result.FreshnessScore*100,
			result.AuthorityScore*100,
			strings.Join(result.Sources, ", "),
			result.URL,
			snippet,
		)
	}

	return fmt.Sprintf(promptTemplate,
		now.Format("2006-01-02"),
		query.Text,
		intentGuidance(intent),
		block.String(),
	)
}

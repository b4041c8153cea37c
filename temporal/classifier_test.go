package temporal

import (
	"testing"
	"time"

	"github.com/poiesic/lancer/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestClassify_ExplicitHints(t *testing.T) {
	classifier := NewClassifier(WithClock(fixedClock))

	cases := []struct {
		hint   core.FreshnessHint
		window core.Window
	}{
		{core.HintDay, core.Window{Width: DayWindow}},
		{core.HintWeek, core.Window{Width: WeekWindow}},
		{core.HintMonth, core.Window{Width: MonthWindow}},
		{core.HintYear, core.Window{Width: YearWindow}},
		{core.HintAny, core.Window{Unbounded: true}},
	}

	for _, tc := range cases {
		t.Run(string(tc.hint), func(t *testing.T) {
			intent := classifier.Classify(core.Query{Text: "anything at all", Freshness: tc.hint})
			assert.Equal(t, core.LabelExplicit, intent.Label)
			assert.Equal(t, tc.window, intent.Window)
		})
	}
}

func TestClassify_ExplicitHintOverridesText(t *testing.T) {
	classifier := NewClassifier(WithClock(fixedClock))

	// Text full of historical markers still follows the hint.
	intent := classifier.Classify(core.Query{
		Text:      "history of the Roman Empire",
		Freshness: core.HintWeek,
	})
	assert.Equal(t, core.LabelExplicit, intent.Label)
	assert.Equal(t, core.Window{Width: WeekWindow}, intent.Window)
}

func TestClassify_InferredLabels(t *testing.T) {
	classifier := NewClassifier(WithClock(fixedClock))

	t.Run("recency markers yield recent", func(t *testing.T) {
		intent := classifier.Classify(core.Query{Text: "latest stable Go release"})
		assert.Equal(t, core.LabelRecent, intent.Label)
		assert.Equal(t, core.Window{Width: RecentWindow}, intent.Window)
		assert.Greater(t, intent.Urgency, 0.5)
	})

	t.Run("breaking markers yield breaking", func(t *testing.T) {
		intent := classifier.Classify(core.Query{Text: "breaking news today about the election"})
		assert.Equal(t, core.LabelBreaking, intent.Label)
		assert.Equal(t, core.Window{Width: BreakingWindow}, intent.Window)
	})

	t.Run("historical markers yield evergreen", func(t *testing.T) {
		intent := classifier.Classify(core.Query{Text: "history of the Roman Empire"})
		assert.Equal(t, core.LabelEvergreen, intent.Label)
		assert.True(t, intent.Window.Unbounded)
		assert.Less(t, intent.Urgency, 0.5)
	})

	t.Run("no markers yield evergreen with neutral urgency", func(t *testing.T) {
		intent := classifier.Classify(core.Query{Text: "photosynthesis in oak trees"})
		assert.Equal(t, core.LabelEvergreen, intent.Label)
		assert.True(t, intent.Window.Unbounded)
		assert.Equal(t, 0.5, intent.Urgency)
	})

	t.Run("current year mention yields recent", func(t *testing.T) {
		intent := classifier.Classify(core.Query{Text: "tax brackets 2025"})
		assert.Equal(t, core.LabelRecent, intent.Label)
	})

	t.Run("AI model names nudge toward recent", func(t *testing.T) {
		intent := classifier.Classify(core.Query{Text: "what is the newest gpt-5 model"})
		assert.Equal(t, core.LabelRecent, intent.Label)
	})
}

func TestClassify_Pure(t *testing.T) {
	classifier := NewClassifier(WithClock(fixedClock))
	query := core.Query{Text: "latest developments in battery technology"}

	first := classifier.Classify(query)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, classifier.Classify(query))
	}
}

func TestClassify_UrgencyBounds(t *testing.T) {
	classifier := NewClassifier(WithClock(fixedClock))

	queries := []string{
		"latest newest current breaking news update today now 2025",
		"history historical origin founded classic traditional",
		"plain query",
		"",
	}
	for _, text := range queries {
		intent := classifier.Classify(core.Query{Text: text})
		assert.GreaterOrEqual(t, intent.Urgency, 0.0)
		assert.LessOrEqual(t, intent.Urgency, 1.0)
	}
}

package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overthinkhq/ponder/internal/model"
)

func TestNewClassifier(t *testing.T) {
	tests := []struct {
		name        string
		errMsg      string
		definitions []Definition
		wantErr     bool
	}{
		{
			name:        "default definitions",
			definitions: DefaultDefinitions(),
			wantErr:     false,
		},
		{
			name:        "no definitions",
			definitions: []Definition{},
			wantErr:     true,
			errMsg:      "at least one category definition",
		},
		{
			name: "definition with no signal sets",
			definitions: []Definition{
				{Category: model.CategoryFood},
			},
			wantErr: true,
			errMsg:  "no signal sets",
		},
		{
			name: "duplicate category",
			definitions: []Definition{
				{Category: model.CategoryFood, Verbs: []string{"eat"}},
				{Category: model.CategoryFood, Verbs: []string{"cook"}},
			},
			wantErr: true,
			errMsg:  "duplicate definition",
		},
		{
			name: "general is not classifiable",
			definitions: []Definition{
				{Category: model.CategoryGeneral, Verbs: []string{"do"}},
			},
			wantErr: true,
			errMsg:  "invalid category",
		},
		{
			name: "unknown category",
			definitions: []Definition{
				{Category: "weather", Verbs: []string{"rain"}},
			},
			wantErr: true,
			errMsg:  "invalid category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClassifier(tt.definitions)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				require.NotNil(t, c)
			}
		})
	}
}

func TestClassifyScenarios(t *testing.T) {
	classifier := NewDefaultClassifier()

	tests := []struct {
		name          string
		text          string
		annotated     *model.AnnotatedText
		wantCategory  model.Category
		minConfidence float64
	}{
		{
			name: "bus or uber",
			text: "Should I take the bus or Uber to work?",
			annotated: &model.AnnotatedText{
				Tokens:  []string{"Should", "I", "take", "the", "bus", "or", "Uber", "to", "work", "?"},
				Actions: []string{"take"},
				Nouns:   []string{"bus", "work"},
				Entities: []model.Entity{
					{Text: "Uber", Label: model.EntityOrganization, Start: 24, End: 28},
				},
			},
			// nouns bus+work (+6), phrase "or uber" (+6), entity text uber (+3)
			// = 15, runner-up 0, boosted and clamped to 1.0
			wantCategory:  model.CategoryTransportation,
			minConfidence: 0.5,
		},
		{
			name: "buy iphone or wait",
			text: "Should I buy iPhone 15 or wait for 16?",
			annotated: &model.AnnotatedText{
				Tokens:  []string{"Should", "I", "buy", "iPhone", "15", "or", "wait", "for", "16", "?"},
				Actions: []string{"buy", "wait"},
				Entities: []model.Entity{
					{Text: "iPhone 15", Label: "PRODUCT", Start: 13, End: 22},
				},
			},
			wantCategory:  model.CategoryPurchase,
			minConfidence: 0.5,
		},
		{
			name: "cook or order food",
			text: "Should I cook at home or order from Swiggy?",
			annotated: &model.AnnotatedText{
				Tokens:  []string{"Should", "I", "cook", "at", "home", "or", "order", "from", "Swiggy", "?"},
				Actions: []string{"cook", "order"},
				Entities: []model.Entity{
					{Text: "Swiggy", Label: model.EntityOrganization, Start: 36, End: 42},
				},
			},
			wantCategory: model.CategoryFood,
		},
		{
			name: "job offer",
			text: "Should I accept the job offer or stay at my company?",
			annotated: &model.AnnotatedText{
				Tokens:  []string{"Should", "I", "accept", "the", "job", "offer", "or", "stay", "at", "my", "company", "?"},
				Actions: []string{"accept", "stay"},
				Nouns:   []string{"job", "offer", "company"},
			},
			wantCategory:  model.CategoryCareer,
			minConfidence: 0.5,
		},
		{
			name: "no signal",
			text: "What should I do today?",
			annotated: &model.AnnotatedText{
				Tokens:  []string{"What", "should", "I", "do", "today", "?"},
				Actions: []string{"do"},
				Entities: []model.Entity{
					{Text: "today", Label: model.EntityDate, Start: 18, End: 23},
				},
			},
			wantCategory:  model.CategoryGeneral,
			minConfidence: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(tt.text, tt.annotated)

			assert.Equal(t, tt.wantCategory, result.Category)
			assert.GreaterOrEqual(t, result.Confidence, tt.minConfidence)
			assert.NoError(t, result.Validate())
		})
	}
}

func TestClassifyZeroSignalFloor(t *testing.T) {
	classifier := NewDefaultClassifier()

	result := classifier.Classify("What should I do today?", &model.AnnotatedText{
		Tokens:  []string{"What", "should", "I", "do", "today", "?"},
		Actions: []string{"do"},
	})

	// The floor is exact: no signal anywhere yields general at 0.3.
	assert.Equal(t, model.CategoryGeneral, result.Category)
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

func TestClassifyEmptyInput(t *testing.T) {
	classifier := NewDefaultClassifier()

	tests := []struct {
		annotated *model.AnnotatedText
		name      string
		text      string
	}{
		{name: "empty text", text: "", annotated: &model.AnnotatedText{}},
		{name: "whitespace text", text: "   ", annotated: &model.AnnotatedText{}},
		{name: "nil annotation", text: "", annotated: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(tt.text, tt.annotated)
			assert.Equal(t, model.CategoryGeneral, result.Category)
			assert.InDelta(t, 0.3, result.Confidence, 1e-9)
		})
	}
}

func TestClassifyLongestPhrasePrecedence(t *testing.T) {
	classifier, err := NewClassifier([]Definition{
		{
			Category: model.CategoryTransportation,
			Phrases:  []string{"vs uber", "or uber"},
		},
	})
	require.NoError(t, err)

	// Both phrases appear; only one bonus may be awarded.
	result := classifier.Classify("bus vs uber or uber today", &model.AnnotatedText{})

	assert.Equal(t, model.CategoryTransportation, result.Category)
	// A single phrase bonus of 6 gives exactly 6/12.
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
}

func TestClassifyTieBreakDeterminism(t *testing.T) {
	classifier, err := NewClassifier([]Definition{
		{Category: model.CategoryTransportation, Nouns: []string{"thing"}},
		{Category: model.CategoryPurchase, Nouns: []string{"thing"}},
	})
	require.NoError(t, err)

	annotated := &model.AnnotatedText{
		Tokens: []string{"the", "thing"},
		Nouns:  []string{"thing"},
	}

	first := classifier.Classify("the thing", annotated)
	for i := 0; i < 100; i++ {
		result := classifier.Classify("the thing", annotated)
		assert.Equal(t, first, result)
	}

	// Equal scores resolve to the first declared category.
	assert.Equal(t, model.CategoryTransportation, first.Category)
}

func TestClassifyDeterminism(t *testing.T) {
	classifier := NewDefaultClassifier()

	annotated := &model.AnnotatedText{
		Tokens:  []string{"Should", "I", "take", "the", "bus", "?"},
		Actions: []string{"take"},
		Nouns:   []string{"bus"},
	}

	first := classifier.Classify("Should I take the bus?", annotated)
	second := classifier.Classify("Should I take the bus?", annotated)

	assert.Equal(t, first.Category, second.Category)
	// Bit-identical confidence, not merely close.
	assert.Equal(t, first.Confidence, second.Confidence)
}

func TestClassifyMonotonicity(t *testing.T) {
	classifier := NewDefaultClassifier()

	text := "Should I take the bus to the station?"
	base := &model.AnnotatedText{
		Tokens: []string{"Should", "I", "take", "the", "bus", "to", "the", "station", "?"},
		Nouns:  []string{"bus"},
	}
	more := &model.AnnotatedText{
		Tokens: base.Tokens,
		Nouns:  []string{"bus", "station"},
	}

	baseResult := classifier.Classify(text, base)
	moreResult := classifier.Classify(text, more)

	require.Equal(t, model.CategoryTransportation, baseResult.Category)
	require.Equal(t, model.CategoryTransportation, moreResult.Category)
	assert.GreaterOrEqual(t, moreResult.Confidence, baseResult.Confidence)
}

func TestClassifyEntitySignals(t *testing.T) {
	classifier, err := NewClassifier([]Definition{
		{
			Category:     model.CategoryTransportation,
			Nouns:        []string{"uber"},
			EntityLabels: []model.EntityLabel{model.EntityGeopolitical},
		},
	})
	require.NoError(t, err)

	tests := []struct {
		name           string
		entities       []model.Entity
		wantConfidence float64
	}{
		{
			name: "entity text in noun set",
			entities: []model.Entity{
				{Text: "Uber", Label: model.EntityOrganization},
			},
			wantConfidence: 3.0 / 12.0,
		},
		{
			name: "entity label in allowlist",
			entities: []model.Entity{
				{Text: "Bangalore", Label: model.EntityGeopolitical},
			},
			wantConfidence: 3.0 / 12.0,
		},
		{
			name: "text and label both count",
			entities: []model.Entity{
				{Text: "uber", Label: model.EntityGeopolitical},
			},
			wantConfidence: 6.0 / 12.0,
		},
		{
			name: "unknown label contributes nothing",
			entities: []model.Entity{
				{Text: "whatever", Label: "BOGUS"},
			},
			wantConfidence: 0.3, // falls through to the general floor
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Tokens cover the entity text so the raw-text fallback stays out
			// of the score.
			result := classifier.Classify("uber bangalore whatever", &model.AnnotatedText{
				Tokens:   []string{"uber", "bangalore", "whatever"},
				Entities: tt.entities,
			})
			assert.InDelta(t, tt.wantConfidence, result.Confidence, 1e-9)
		})
	}
}

func TestClassifyModifierSignal(t *testing.T) {
	classifier, err := NewClassifier([]Definition{
		{
			Category:  model.CategoryPurchase,
			Nouns:     []string{"watch"},
			Modifiers: []string{"expensive", "cheap"},
		},
	})
	require.NoError(t, err)

	// noun watch (+3) + expensive (+2) + cheap (+2) = 7
	result := classifier.Classify("expensive watch or cheap watch", &model.AnnotatedText{
		Tokens: []string{"expensive", "watch", "or", "cheap", "watch"},
		Nouns:  []string{"watch"},
	})

	assert.Equal(t, model.CategoryPurchase, result.Category)
	assert.InDelta(t, 7.0/12.0, result.Confidence, 1e-9)
}

func TestClassifyRawTextFallback(t *testing.T) {
	classifier, err := NewClassifier([]Definition{
		{
			Category: model.CategoryPurchase,
			Nouns:    []string{"macbook"},
		},
	})
	require.NoError(t, err)

	// The provider tokenized "MacBookPro" as one token, so "macbook" is
	// absent from the token list but present in the raw text.
	result := classifier.Classify("Is the MacBookPro worth it?", &model.AnnotatedText{
		Tokens: []string{"Is", "the", "MacBookPro", "worth", "it", "?"},
	})

	assert.Equal(t, model.CategoryPurchase, result.Category)
	assert.InDelta(t, 2.0/12.0, result.Confidence, 1e-9)
}

func TestClassifyConfidenceBounds(t *testing.T) {
	classifier := NewDefaultClassifier()

	// Stack every transportation signal to push the raw score well past the
	// clamp and verify confidence never escapes [0, 1].
	annotated := &model.AnnotatedText{
		Tokens:  []string{"commute"},
		Actions: []string{"go", "travel", "commute", "drive", "ride"},
		Nouns:   []string{"bus", "car", "train", "taxi", "uber", "metro"},
		Entities: []model.Entity{
			{Text: "airport", Label: model.EntityFacility},
			{Text: "Bangalore", Label: model.EntityGeopolitical},
		},
	}

	texts := []string{
		"fastest way to get to the airport, bus vs metro or uber",
		"",
		"Should I take the bus or Uber to work?",
		"completely unrelated text",
	}

	for i, text := range texts {
		t.Run(fmt.Sprintf("input_%d", i), func(t *testing.T) {
			result := classifier.Classify(text, annotated)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)
		})
	}
}

func TestClassifyStrongMatchBoost(t *testing.T) {
	classifier := NewDefaultClassifier()

	// bus + work nouns (+6), "or uber" phrase (+6), uber entity text (+3)
	// lands exactly on the strong-match threshold of 15.
	result := classifier.Classify("Should I take the bus or Uber to work?", &model.AnnotatedText{
		Tokens:  []string{"Should", "I", "take", "the", "bus", "or", "Uber", "to", "work", "?"},
		Actions: []string{"take"},
		Nouns:   []string{"bus", "work"},
		Entities: []model.Entity{
			{Text: "Uber", Label: model.EntityOrganization},
		},
	})

	assert.Equal(t, model.CategoryTransportation, result.Category)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
}

package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/overthinkhq/ponder/internal/model"
)

func TestExtractConstraintFlags(t *testing.T) {
	extractor := NewDefaultExtractor()

	tests := []struct {
		name string
		text string
		want model.ConstraintSet
	}{
		{
			name: "urgent transport",
			text: "Need urgent transport to hospital",
			want: model.ConstraintSet{
				TimeSensitive:  true,
				UrgencyLevel:   model.UrgencyHigh,
				PrimaryConcern: model.FamilyTimeSensitive,
			},
		},
		{
			name: "budget keywords",
			text: "Looking for a cheap and affordable option",
			want: model.ConstraintSet{
				BudgetConscious: true,
				UrgencyLevel:    model.UrgencyNormal,
				PrimaryConcern:  model.FamilyBudgetConscious,
			},
		},
		{
			name: "quality keywords",
			text: "I want the best quality premium option",
			want: model.ConstraintSet{
				QualityFocused: true,
				UrgencyLevel:   model.UrgencyNormal,
				PrimaryConcern: model.FamilyQualityFocused,
			},
		},
		{
			name: "convenience keywords",
			text: "Something easy and convenient please",
			want: model.ConstraintSet{
				ConvenienceFocused: true,
				UrgencyLevel:       model.UrgencyNormal,
				PrimaryConcern:     model.FamilyConvenience,
			},
		},
		{
			name: "no signal yields defaults",
			text: "Should I take the bus or Uber to work?",
			want: model.ConstraintSet{
				UrgencyLevel: model.UrgencyNormal,
			},
		},
		{
			name: "case insensitive",
			text: "URGENT: need this ASAP",
			want: model.ConstraintSet{
				TimeSensitive:  true,
				UrgencyLevel:   model.UrgencyHigh,
				PrimaryConcern: model.FamilyTimeSensitive,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(&model.AnnotatedText{}, tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPrimaryConcernRanking(t *testing.T) {
	extractor := NewDefaultExtractor()

	// Two budget keywords against one time keyword: budget wins.
	got := extractor.Extract(&model.AnnotatedText{}, "urgent but cheap and affordable")
	assert.True(t, got.TimeSensitive)
	assert.True(t, got.BudgetConscious)
	assert.Equal(t, model.FamilyBudgetConscious, got.PrimaryConcern)
}

func TestExtractPrimaryConcernTieBreak(t *testing.T) {
	extractor := NewDefaultExtractor()

	// One keyword hit in each family: the first declared family wins the tie.
	got := extractor.Extract(&model.AnnotatedText{}, "urgent and cheap")
	assert.Equal(t, model.FamilyTimeSensitive, got.PrimaryConcern)

	for i := 0; i < 50; i++ {
		again := extractor.Extract(&model.AnnotatedText{}, "urgent and cheap")
		assert.Equal(t, got, again)
	}
}

func TestExtractMonetaryEntity(t *testing.T) {
	extractor := NewDefaultExtractor()

	annotated := &model.AnnotatedText{
		Entities: []model.Entity{
			{Text: "50000 rupees", Label: model.EntityMoney, Start: 38, End: 50},
			{Text: "100 dollars", Label: model.EntityMoney, Start: 60, End: 71},
		},
	}

	got := extractor.Extract(annotated, "Should I buy this expensive watch worth 50000 rupees?")

	// The first money entity's surface text passes through verbatim.
	assert.Equal(t, "50000 rupees", got.BudgetAmount)
}

func TestExtractTemporalEntity(t *testing.T) {
	extractor := NewDefaultExtractor()

	tests := []struct {
		name     string
		entities []model.Entity
		want     string
	}{
		{
			name: "time entity",
			entities: []model.Entity{
				{Text: "5pm", Label: model.EntityTime},
			},
			want: "5pm",
		},
		{
			name: "date entity",
			entities: []model.Entity{
				{Text: "tomorrow", Label: model.EntityDate},
			},
			want: "tomorrow",
		},
		{
			name: "first of several",
			entities: []model.Entity{
				{Text: "tomorrow", Label: model.EntityDate},
				{Text: "5pm", Label: model.EntityTime},
			},
			want: "tomorrow",
		},
		{
			name:     "none",
			entities: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(&model.AnnotatedText{Entities: tt.entities}, "when should I leave?")
			assert.Equal(t, tt.want, got.TimeConstraint)
		})
	}
}

func TestExtractNilAnnotation(t *testing.T) {
	extractor := NewDefaultExtractor()

	got := extractor.Extract(nil, "urgent decision")
	assert.True(t, got.TimeSensitive)
	assert.Empty(t, got.BudgetAmount)
	assert.Empty(t, got.TimeConstraint)
}

func TestConstraintSetAny(t *testing.T) {
	assert.False(t, (&model.ConstraintSet{}).Any())
	assert.True(t, (&model.ConstraintSet{QualityFocused: true}).Any())
}

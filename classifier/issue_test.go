package classifier

import (
	"testing"

	"lawbandhu-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIssue(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantPersonal bool
		wantField    *models.LegalField
		wantConf     models.Confidence
	}{
		{
			name:         "eviction",
			text:         "My landlord is trying to evict me",
			wantPersonal: true,
			wantField:    fieldPtr(models.FieldProperty),
			wantConf:     models.ConfidenceMedium,
		},
		{
			name:         "abstract question still counts as personal",
			text:         "What is contract law?",
			wantPersonal: true,
			wantField:    fieldPtr(models.FieldContract),
			wantConf:     models.ConfidenceMedium,
		},
		{
			name:         "arrest with several signals",
			text:         "I was arrested by the police yesterday and I need help with bail",
			wantPersonal: true,
			wantField:    fieldPtr(models.FieldCriminal),
			wantConf:     models.ConfidenceHigh,
		},
		{
			name:         "family",
			text:         "My husband wants a divorce and custody of our child",
			wantPersonal: true,
			wantField:    fieldPtr(models.FieldFamily),
			wantConf:     models.ConfidenceMedium,
		},
		{
			name:         "strongest field wins over overlapping ones",
			text:         "My company fired me without paying my salary",
			wantPersonal: true,
			wantField:    fieldPtr(models.FieldEmployment),
			wantConf:     models.ConfidenceMedium,
		},
		{
			name:         "first person without field",
			text:         "how to prepare tea for my guests",
			wantPersonal: true,
			wantField:    nil,
			wantConf:     models.ConfidenceLow,
		},
		{
			name:         "nothing at all",
			text:         "who is the best cricket player",
			wantPersonal: false,
			wantField:    nil,
			wantConf:     models.ConfidenceLow,
		},
		{
			name:         "empty",
			text:         "",
			wantPersonal: false,
			wantField:    nil,
			wantConf:     models.ConfidenceLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyIssue(tt.text)
			assert.Equal(t, tt.wantPersonal, got.IsPersonalIssue)
			assert.Equal(t, tt.wantConf, got.Confidence)
			if tt.wantField == nil {
				assert.Nil(t, got.LegalField)
				return
			}
			require.NotNil(t, got.LegalField)
			assert.Equal(t, *tt.wantField, *got.LegalField)
		})
	}
}

func TestClassifyIssue_AbstractQuestionCapsAtMedium(t *testing.T) {
	got := ClassifyIssue("What is contract law?")
	assert.LessOrEqual(t, got.Confidence.Rank(), models.ConfidenceMedium.Rank())
}

func TestDetectField_TieGoesToCanonicalOrder(t *testing.T) {
	// "company" is both an Employment and a Corporate term, one hit each.
	field, hits := DetectField("company")
	require.NotNil(t, field)
	assert.Equal(t, models.FieldEmployment, *field)
	assert.Equal(t, 1, hits)

	// "accident" is both Criminal and Civil; Criminal comes first.
	field, _ = DetectField("accident")
	require.NotNil(t, field)
	assert.Equal(t, models.FieldCriminal, *field)
}

func TestFieldKeywords_CoverEveryField(t *testing.T) {
	for _, field := range models.LegalFields {
		assert.NotEmpty(t, fieldKeywords[field], "no keywords for %s", field)
	}
	assert.Len(t, fieldKeywords, len(models.LegalFields))
}

func TestClassify_CombinesBothVerdicts(t *testing.T) {
	got := Classify("My landlord is trying to evict me")
	assert.True(t, got.IsLegal)
	assert.Equal(t, models.ConfidenceHigh, got.LegalConfidence)
	assert.True(t, got.IsPersonalIssue)
	require.NotNil(t, got.LegalField)
	assert.Equal(t, models.FieldProperty, *got.LegalField)
	assert.Equal(t, models.ConfidenceMedium, got.IssueConfidence)
}

func fieldPtr(f models.LegalField) *models.LegalField {
	return &f
}

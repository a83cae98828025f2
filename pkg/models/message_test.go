package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepValid(t *testing.T) {
	assert.True(t, StepOverview.Valid())
	assert.True(t, StepAnalysis.Valid())
	assert.True(t, StepIdea.Valid())
	assert.False(t, Step("").Valid())
	assert.False(t, Step("summary").Valid())
}

func TestStepMessageValidate(t *testing.T) {
	valid := StepMessage{TaskID: 1, ReportID: 2, Step: StepOverview}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		msg  StepMessage
	}{
		{"missing task id", StepMessage{ReportID: 2, Step: StepOverview}},
		{"missing report id", StepMessage{TaskID: 1, Step: StepOverview}},
		{"unknown step", StepMessage{TaskID: 1, ReportID: 2, Step: "bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.msg.Validate())
		})
	}
}

func TestCommentTypeFromEmotionCode(t *testing.T) {
	assert.Equal(t, CommentPositive, CommentTypeFromEmotionCode(1))
	assert.Equal(t, CommentNegative, CommentTypeFromEmotionCode(2))
	assert.Equal(t, CommentNeutral, CommentTypeFromEmotionCode(3))
	assert.Equal(t, CommentAdvice, CommentTypeFromEmotionCode(4))

	// Unknown codes fall back to neutral.
	assert.Equal(t, CommentNeutral, CommentTypeFromEmotionCode(0))
	assert.Equal(t, CommentNeutral, CommentTypeFromEmotionCode(5))
	assert.Equal(t, CommentNeutral, CommentTypeFromEmotionCode(-1))
}

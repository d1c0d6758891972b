package question

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerFromIndices(t *testing.T) {
	assert.Equal(t, AnswerNone, AnswerFromIndices(nil).Kind)
	assert.Equal(t, SingleAnswer(1), AnswerFromIndices([]int{1}))
	assert.Equal(t, MultipleAnswer(0, 1), AnswerFromIndices([]int{0, 1}))
}

func TestQuestionJSONShape(t *testing.T) {
	cases := []struct {
		name string
		q    Question
		want string
	}{
		{
			name: "single answer is a bare integer",
			q:    Question{Question: "Colour?", Options: []string{"Red", "Blue", "Green"}, Answer: SingleAnswer(1)},
			want: `{"question":"Colour?","options":["Red","Blue","Green"],"answer":1}`,
		},
		{
			name: "multiple answers are an array",
			q:    Question{Question: "Cities?", Options: []string{"Paris", "Lyon", "Berlin"}, Answer: MultipleAnswer(0, 1)},
			want: `{"question":"Cities?","options":["Paris","Lyon","Berlin"],"answer":[0,1]}`,
		},
		{
			name: "no answer is null",
			q:    Question{Question: "Pet?", Options: []string{"Cat", "Dog", "Bird"}, Answer: NoAnswer()},
			want: `{"question":"Pet?","options":["Cat","Dog","Bird"],"answer":null}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.q)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))

			var back Question
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tc.q, back)
		})
	}
}

func TestAnswerUnmarshalRejectsGarbage(t *testing.T) {
	var a Answer
	assert.Error(t, json.Unmarshal([]byte(`"one"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`[1,"x"]`), &a))
}

func TestAnswerUnmarshalEmptyArrayIsNone(t *testing.T) {
	var q Question
	require.NoError(t, json.Unmarshal([]byte(`{"question":"q","options":["a"],"answer":[]}`), &q))
	assert.Equal(t, AnswerNone, q.Answer.Kind)
}

func TestAnswerMissingFieldIsNone(t *testing.T) {
	var q Question
	require.NoError(t, json.Unmarshal([]byte(`{"question":"q","options":["a"]}`), &q))
	assert.Equal(t, AnswerNone, q.Answer.Kind)
}

func TestValidate(t *testing.T) {
	ok := Question{Options: []string{"a", "b"}, Answer: MultipleAnswer(0, 1)}
	assert.NoError(t, ok.Validate())

	bad := Question{Options: []string{"a", "b"}, Answer: SingleAnswer(2)}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidAnswerIndex)

	negative := Question{Options: []string{"a"}, Answer: SingleAnswer(-1)}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidAnswerIndex)
}

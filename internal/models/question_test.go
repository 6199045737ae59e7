package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionFormatKeepsNulls(t *testing.T) {
	text := "Who discovered penicillin?"
	q := Question{ID: 21, Text: &text}

	raw, err := json.Marshal(q.Format())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":21,"question":"Who discovered penicillin?","answer":null,"category":null,"difficulty":null}`, string(raw))
}

func TestFormatQuestionsEmptyIsNotNull(t *testing.T) {
	raw, err := json.Marshal(FormatQuestions(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestCategoryMap(t *testing.T) {
	m := CategoryMap([]Category{{ID: 1, Type: "Science"}, {ID: 6, Type: "Sports"}})

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":"Science","6":"Sports"}`, string(raw))
}

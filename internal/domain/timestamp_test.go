package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2024-03-01T10:20:30Z"`, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"rfc3339 millis", `"2024-03-01T10:20:30.123Z"`, time.Date(2024, 3, 1, 10, 20, 30, 123000000, time.UTC)},
		{"no zone", `"2024-03-01T10:20:30"`, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"sql style", `"2024-03-01 10:20:30"`, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestTimestamp_UnmarshalJSON_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func TestUser_MissingCreatedAt(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Ana Dupont","username":"anad"}`), &u))
	assert.Equal(t, int64(1), u.ID)
	assert.True(t, u.CreatedAt.IsZero())
	assert.Nil(t, u.Age)
}

func TestNewMessage_WireFormat(t *testing.T) {
	body, err := json.Marshal(NewMessage{Content: "Bonjour", UserID: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"Bonjour","userId":1}`, string(body))
}

func TestNewTask_OmitsEmptyOptionalFields(t *testing.T) {
	body, err := json.Marshal(NewTask{Title: "Write report"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Write report"}`, string(body))
}

func TestTaskStatus_Valid(t *testing.T) {
	assert.True(t, TaskInProgress.Valid())
	assert.False(t, TaskStatus("archived").Valid())
}

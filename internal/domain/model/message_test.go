//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessageRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&CreateMessageRequest{Title: "Class moved", Body: "Saturday class moved to 10am."}).Validate())

	err := (&CreateMessageRequest{Title: "", Body: "x"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")

	err = (&CreateMessageRequest{Title: "t", Body: "  "}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body is required")

	err = (&CreateMessageRequest{Title: "t", Body: strings.Repeat("a", 10001)}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body cannot exceed")
}

func TestCreateNotificationRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&CreateNotificationRequest{Title: "Exam week", Body: "Papers start Monday."}).Validate())
	require.Error(t, (&CreateNotificationRequest{Title: "", Body: "x"}).Validate())
}

func TestCreateSaleRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&CreateSaleRequest{StudentID: "s-1", LessonID: "l-1"}).Validate())
	require.Error(t, (&CreateSaleRequest{LessonID: "l-1"}).Validate())
	require.Error(t, (&CreateSaleRequest{StudentID: "s-1"}).Validate())
}

func TestUpdateMessageRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, (&UpdateMessageRequest{}).Validate(), "no fields to update")
	body := "updated body"
	assert.NoError(t, (&UpdateMessageRequest{Body: &body}).Validate())
}

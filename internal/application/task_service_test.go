package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/domain/repository"
)

func newTaskService(repo *fakeTaskRepo) *TaskService {
	return NewTaskService(repo, nil, nil, "")
}

func TestTaskCreateAndGet(t *testing.T) {
	svc := newTaskService(newFakeTaskRepo())

	created, err := svc.Create(context.Background(), "u-1", CreateTaskInput{Title: "write report", Description: "q3"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u-1", created.UserID)
	assert.False(t, created.Completed)

	got, err := svc.Get(context.Background(), "u-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTaskOwnershipIsolation(t *testing.T) {
	svc := newTaskService(newFakeTaskRepo())
	created, err := svc.Create(context.Background(), "u-1", CreateTaskInput{Title: "mine"})
	require.NoError(t, err)

	// Another user's task reads as missing, not forbidden.
	_, err = svc.Get(context.Background(), "u-2", created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Update(context.Background(), "u-2", created.ID, UpdateTaskInput{})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(context.Background(), "u-2", created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskList(t *testing.T) {
	svc := newTaskService(newFakeTaskRepo())
	for _, title := range []string{"a", "b"} {
		_, err := svc.Create(context.Background(), "u-1", CreateTaskInput{Title: title})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), "u-2", CreateTaskInput{Title: "other"})
	require.NoError(t, err)

	tasks, err := svc.List(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTaskPartialUpdate(t *testing.T) {
	svc := newTaskService(newFakeTaskRepo())
	created, err := svc.Create(context.Background(), "u-1", CreateTaskInput{Title: "initial", Description: "desc"})
	require.NoError(t, err)

	done := true
	updated, err := svc.Update(context.Background(), "u-1", created.ID, UpdateTaskInput{Completed: &done})
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	assert.Equal(t, "initial", updated.Title, "unset fields must be preserved")
	assert.Equal(t, "desc", updated.Description)
}

func TestTaskDelete(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := newTaskService(repo)
	created, err := svc.Create(context.Background(), "u-1", CreateTaskInput{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "u-1", created.ID))
	_, err = svc.Get(context.Background(), "u-1", created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAttachFileWithoutStorage(t *testing.T) {
	svc := newTaskService(newFakeTaskRepo())
	created, err := svc.Create(context.Background(), "u-1", CreateTaskInput{Title: "doc"})
	require.NoError(t, err)

	_, err = svc.AttachFile(context.Background(), "u-1", created.ID, strings.NewReader("data"), "a.pdf", "application/pdf")
	assert.ErrorIs(t, err, ErrAttachmentsDisabled)
}

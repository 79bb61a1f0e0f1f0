package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"
	"taskhub/pkg/helpers"
)

type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput uses pointers so a PUT can change any subset of fields.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskService is plain CRUD over task records with per-user ownership.
// Attachments go to GCS when a client is configured.
type TaskService struct {
	Repo      repository.TaskRepository
	Logger    *logrus.Logger
	GCS       *storage.Client
	GCSBucket string
}

func NewTaskService(repo repository.TaskRepository, logger *logrus.Logger, gcs *storage.Client, bucket string) *TaskService {
	return &TaskService{Repo: repo, Logger: logger, GCS: gcs, GCSBucket: bucket}
}

func (s *TaskService) Create(ctx context.Context, userID string, in CreateTaskInput) (entity.Task, error) {
	now := time.Now()
	t := entity.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Save(ctx, t); err != nil {
		return entity.Task{}, err
	}
	return t, nil
}

func (s *TaskService) List(ctx context.Context, userID string) ([]entity.Task, error) {
	return s.Repo.FindByUser(ctx, userID)
}

// Get returns the task only when it belongs to userID; a foreign task is
// indistinguishable from a missing one.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (entity.Task, error) {
	t, err := s.Repo.FindByID(ctx, taskID)
	if err != nil {
		return entity.Task{}, err
	}
	if t.UserID != userID {
		return entity.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID string, in UpdateTaskInput) (entity.Task, error) {
	t, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return entity.Task{}, err
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	t.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, t); err != nil {
		return entity.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if _, err := s.Get(ctx, userID, taskID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, taskID)
}

// AttachFile uploads a file to GCS and stores its public URL on the task.
func (s *TaskService) AttachFile(ctx context.Context, userID, taskID string, r io.Reader, filename, contentType string) (entity.Task, error) {
	t, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return entity.Task{}, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return entity.Task{}, ErrAttachmentsDisabled
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("attachments", userID, taskID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return entity.Task{}, err
	}

	t.AttachmentURL = url
	t.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, t); err != nil {
		return entity.Task{}, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"task_id": taskID, "object": objectPath}).Info("attachment uploaded")
	}
	return t, nil
}

package application

import (
	"context"
	"sync"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/valueobject"
)

// fakeUserRepo is an in-memory UserRepository that counts calls so tests can
// assert which paths touched storage.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User // keyed by ID

	saveCalls     int
	findByIDCalls int
	failSave      error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (r *fakeUserRepo) put(u entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findByIDCalls++
	u, ok := r.users[id]
	if !ok {
		return entity.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email valueobject.Email) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email.String() {
			return u, nil
		}
	}
	return entity.User{}, repository.ErrNotFound
}

func (r *fakeUserRepo) Save(_ context.Context, u entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.failSave != nil {
		return r.failSave
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, email valueobject.Email) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email.String() {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeTaskRepo is an in-memory TaskRepository.
type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]entity.Task{}}
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id string) (entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return entity.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *fakeTaskRepo) FindByUser(_ context.Context, userID string) ([]entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Save(_ context.Context, t entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	r.tasks[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)

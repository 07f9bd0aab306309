package services

import (
	"bytes"
	"context"
	"io"
	"sync"

	"inflou_backend/internal/email"
	"inflou_backend/internal/models"
	"inflou_backend/internal/repositories"
	"inflou_backend/internal/services/dto"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]*models.User
	existsErr error
	createErr error
	// skipExists имитирует гонку: ранняя проверка ничего не видит
	skipExists bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	if r.skipExists {
		return false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[email]
	return ok, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	saveErr error
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string][]byte{}}
}

func (s *fakeStorage) Save(ctx context.Context, path string, r io.Reader, contentType string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/static/uploads/" + path, nil
}

func uploadOf(name, content string) *dto.UploadFile {
	return &dto.UploadFile{
		Filename:    name,
		Size:        int64(len(content)),
		ContentType: "application/octet-stream",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewBufferString(content)), nil
		},
	}
}

type fakeContactRepo struct {
	saved     []*models.ContactMessage
	createErr error
}

func (r *fakeContactRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.saved = append(r.saved, msg)
	return nil
}

type fakeProvider struct {
	validateErr error
	sendErr     error
	sent        []*email.Email
}

func (p *fakeProvider) Send(ctx context.Context, e *email.Email) error {
	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, e)
	return nil
}

func (p *fakeProvider) Validate() error {
	return p.validateErr
}

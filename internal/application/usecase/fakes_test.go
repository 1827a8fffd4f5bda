package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"memoria/internal/domain/model"
	dbRepository "memoria/internal/domain/repository/database"
	sessionRepository "memoria/internal/domain/repository/session"
)

// In-memory stands-ins for the mongo, redis and minio stores.

type fakeMemoryStore struct {
	mu      sync.Mutex
	records map[string]model.Memory
}

func newFakeMemoryStore() *fakeMemoryStore {
	return &fakeMemoryStore{records: map[string]model.Memory{}}
}

func (s *fakeMemoryStore) Create(_ context.Context, memory *model.Memory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[memory.ID] = *memory

	return nil
}

func (s *fakeMemoryStore) GetByID(_ context.Context, id string) (*model.Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	memory, ok := s.records[id]
	if !ok {
		return nil, dbRepository.ErrNotFound
	}

	return &memory, nil
}

func (s *fakeMemoryStore) List(_ context.Context, filter dbRepository.MemoryFilter) ([]model.Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Memory
	for _, m := range s.records {
		switch {
		case filter.OnlySecret && !m.IsSecret:
			continue
		case !filter.OnlySecret && !filter.IncludeSecret && m.IsSecret:
			continue
		}
		if filter.Featured != nil && m.IsFeatured != *filter.Featured {
			continue
		}
		if filter.Category != nil && m.Category != *filter.Category {
			continue
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}

		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (s *fakeMemoryStore) Update(_ context.Context, memory *model.Memory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[memory.ID]; !ok {
		return dbRepository.ErrNotFound
	}
	s.records[memory.ID] = *memory

	return nil
}

func (s *fakeMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return dbRepository.ErrNotFound
	}
	delete(s.records, id)

	return nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]model.User // by id
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]model.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return dbRepository.ErrUsernameTaken
		}
	}
	s.users[user.ID] = *user

	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, dbRepository.ErrNotFound
	}

	return &user, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			user := u

			return &user, nil
		}
	}

	return nil, dbRepository.ErrNotFound
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	next     int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]string{}}
}

func (s *fakeSessionStore) Create(_ context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	token := fmt.Sprintf("token-%d", s.next)
	s.sessions[token] = userID

	return token, nil
}

func (s *fakeSessionStore) Get(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.sessions[token]
	if !ok {
		return "", sessionRepository.ErrNotFound
	}

	return userID, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)

	return nil
}

type savedBlob struct {
	objectName  string
	contentType string
	size        int64
	data        []byte
}

type fakeBlobStore struct {
	mu    sync.Mutex
	saved []savedBlob
}

func (s *fakeBlobStore) Save(_ context.Context, objectName string, body io.Reader, size int64,
	contentType string,
) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, savedBlob{
		objectName:  objectName,
		contentType: contentType,
		size:        size,
		data:        buf.Bytes(),
	})

	return "http://blobs.test/" + objectName, nil
}

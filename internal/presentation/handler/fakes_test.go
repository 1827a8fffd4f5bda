package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"memoria/internal/application/usecase"
	"memoria/internal/domain/dto"
	"memoria/internal/domain/model"
	sessionRepository "memoria/internal/domain/repository/session"
)

// fakeAuth is a canned-response Auth usecase.
type fakeAuth struct {
	loginToken   string
	loginProfile *dto.UserProfile
	loginStatus  int
	loginErr     error

	createdID     string
	createStatus  int
	createErr     error
	loggedOut     []string
	createdAdmins []string
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (string, *dto.UserProfile, int, error) {
	if f.loginErr != nil {
		return "", nil, f.loginStatus, f.loginErr
	}

	return f.loginToken, f.loginProfile, http.StatusOK, nil
}

func (f *fakeAuth) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)

	return nil
}

func (f *fakeAuth) ResolveSession(context.Context, string) (*model.User, error) {
	return nil, sessionRepository.ErrNotFound
}

func (f *fakeAuth) CreateAdmin(_ context.Context, username, _, _ string) (string, int, error) {
	if f.createErr != nil {
		return "", f.createStatus, f.createErr
	}
	f.createdAdmins = append(f.createdAdmins, username)

	return f.createdID, http.StatusCreated, nil
}

// fakeMemories records calls and replays a fixed result set.
type fakeMemories struct {
	memories []dto.MemoryResponse
	err      error
	status   int

	lastViewer   usecase.Viewer
	lastCategory string
	lastKey      string
	lastID       string
	deleted      []string
}

func (f *fakeMemories) List(_ context.Context, viewer usecase.Viewer) ([]dto.MemoryResponse, int, error) {
	f.lastViewer = viewer

	return f.result()
}

func (f *fakeMemories) Featured(_ context.Context, viewer usecase.Viewer) ([]dto.MemoryResponse, int, error) {
	f.lastViewer = viewer

	return f.result()
}

func (f *fakeMemories) ByCategory(_ context.Context, viewer usecase.Viewer, category string) ([]dto.MemoryResponse, int, error) {
	f.lastViewer = viewer
	f.lastCategory = category

	return f.result()
}

func (f *fakeMemories) Get(_ context.Context, viewer usecase.Viewer, id string) (*dto.MemoryResponse, int, error) {
	f.lastViewer = viewer
	f.lastID = id
	if f.err != nil {
		return nil, f.status, f.err
	}
	if len(f.memories) == 0 {
		return nil, http.StatusNotFound, errors.New("memory not found")
	}

	return &f.memories[0], http.StatusOK, nil
}

func (f *fakeMemories) Create(context.Context, *dto.MemoryCreateRequest) (*dto.MemoryResponse, int, error) {
	if f.err != nil {
		return nil, f.status, f.err
	}

	return &f.memories[0], http.StatusCreated, nil
}

func (f *fakeMemories) Update(_ context.Context, id string, _ *dto.MemoryUpdateRequest) (*dto.MemoryResponse, int, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.status, f.err
	}

	return &f.memories[0], http.StatusOK, nil
}

func (f *fakeMemories) Delete(_ context.Context, id string) (int, error) {
	f.deleted = append(f.deleted, id)
	if f.err != nil {
		return f.status, f.err
	}

	return http.StatusNoContent, nil
}

func (f *fakeMemories) RevealSecrets(_ context.Context, key string) ([]dto.MemoryResponse, int, error) {
	f.lastKey = key

	return f.result()
}

func (f *fakeMemories) result() ([]dto.MemoryResponse, int, error) {
	if f.err != nil {
		return nil, f.status, f.err
	}

	return f.memories, http.StatusOK, nil
}

// fakeSettings serves one in-memory settings view.
type fakeSettings struct {
	settings dto.SettingsResponse
	err      error

	lastUpdate *dto.SettingsUpdateRequest
}

func (f *fakeSettings) Get(context.Context) (*dto.SettingsResponse, int, error) {
	if f.err != nil {
		return nil, http.StatusInternalServerError, f.err
	}

	return &f.settings, http.StatusOK, nil
}

func (f *fakeSettings) Update(_ context.Context, req *dto.SettingsUpdateRequest) (*dto.SettingsResponse, int, error) {
	if f.err != nil {
		return nil, http.StatusInternalServerError, f.err
	}
	f.lastUpdate = req

	return &f.settings, http.StatusOK, nil
}

// fakeUploader captures the upload call.
type fakeUploader struct {
	response *dto.UploadResponse
	status   int
	err      error

	lastFilename string
	lastSize     int64
	lastBody     []byte
}

func (f *fakeUploader) Upload(_ context.Context, filename string, size int64, body io.Reader) (*dto.UploadResponse, int, error) {
	f.lastFilename = filename
	f.lastSize = size
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	f.lastBody = data

	if f.err != nil {
		return nil, f.status, f.err
	}

	return f.response, http.StatusCreated, nil
}

func sampleMemory(id string) dto.MemoryResponse {
	return dto.MemoryResponse{
		ID:       id,
		Title:    "sample",
		MediaURL: "https://cdn.example.com/sample.jpg",
		Position: dto.Position{X: 1},
		Category: model.CategoryPhoto,
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"photoshare/internal/models"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ParseSessionToken(tokenString string) (*models.Identity, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) Upload(ctx context.Context, userID int, fileName string, file io.Reader, size int64, description, keywords string) error {
	args := m.Called(ctx, userID, fileName, file, size, description, keywords)
	return args.Error(0)
}

func (m *MockPhotoService) Edit(ctx context.Context, photoID int, fileName string, file io.Reader, size int64, description, keywords string) error {
	args := m.Called(ctx, photoID, fileName, file, size, description, keywords)
	return args.Error(0)
}

func (m *MockPhotoService) Delete(ctx context.Context, photoID int) error {
	args := m.Called(ctx, photoID)
	return args.Error(0)
}

type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Send(ctx context.Context, senderID, receiverID int, content string) error {
	args := m.Called(ctx, senderID, receiverID, content)
	return args.Error(0)
}

func (m *MockMessageService) SendPostMessage(ctx context.Context, senderID, photoID int, content string) (bool, error) {
	args := m.Called(ctx, senderID, photoID, content)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageService) Delete(ctx context.Context, messageID int) error {
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID int, instructions, interests string) error {
	args := m.Called(ctx, userID, instructions, interests)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID int, instructions, interests string) error {
	args := m.Called(ctx, userID, instructions, interests)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.UserListEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserListEntry), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, keyword string) ([]models.UserListEntry, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserListEntry), args.Error(1)
}

type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) GetByID(ctx context.Context, photoID int) (*models.Photo, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetAllWithOwner(ctx context.Context) ([]models.PhotoWithOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PhotoWithOwner), args.Error(1)
}

func (m *MockPhotoRepository) GetByUserID(ctx context.Context, userID int) ([]models.Photo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) UpdateMeta(ctx context.Context, photoID int, description, keywords string) error {
	args := m.Called(ctx, photoID, description, keywords)
	return args.Error(0)
}

func (m *MockPhotoRepository) UpdateWithFilename(ctx context.Context, photoID int, filename, description, keywords string) error {
	args := m.Called(ctx, photoID, filename, description, keywords)
	return args.Error(0)
}

func (m *MockPhotoRepository) Delete(ctx context.Context, photoID int) error {
	args := m.Called(ctx, photoID)
	return args.Error(0)
}

func (m *MockPhotoRepository) SearchByKeyword(ctx context.Context, keyword string) ([]models.Photo, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, senderID, receiverID int, content string) error {
	args := m.Called(ctx, senderID, receiverID, content)
	return args.Error(0)
}

func (m *MockMessageRepository) GetChatUsers(ctx context.Context, userID int) ([]models.ChatUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatUser), args.Error(1)
}

func (m *MockMessageRepository) GetThread(ctx context.Context, userID, chatUserID int) ([]models.MessageWithSender, error) {
	args := m.Called(ctx, userID, chatUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MessageWithSender), args.Error(1)
}

func (m *MockMessageRepository) Delete(ctx context.Context, messageID int) error {
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	args := m.Called(ctx, storedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockFileStore) Remove(ctx context.Context, storedName string) error {
	args := m.Called(ctx, storedName)
	return args.Error(0)
}

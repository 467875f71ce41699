package services

import (
	"fmt"
	"mime/multipart"
	"sync"
)

// MockImageService is a mock implementation of ImageService for testing
type MockImageService struct {
	images map[string]bool
	mu     sync.RWMutex

	// FailUpload forces UploadImage to fail, for error-path tests
	FailUpload bool
}

// NewMockImageService creates a new mock image service
func NewMockImageService() *MockImageService {
	return &MockImageService{
		images: make(map[string]bool),
	}
}

// SetAsMockForTesting sets this mock as the global image service instance
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// UploadImage simulates an image upload
func (m *MockImageService) UploadImage(fileHeader *multipart.FileHeader, kind string) (string, error) {
	if m.FailUpload {
		return "", fmt.Errorf("mock upload failure")
	}

	key := fmt.Sprintf("%s/mock_%s", kind, fileHeader.Filename)
	m.mu.Lock()
	m.images[key] = true
	m.mu.Unlock()
	return key, nil
}

// GetImageURL returns a mock URL for an uploaded image
func (m *MockImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}
	return "https://mock.example.com/" + imageKey, nil
}

// DeleteImage removes an image from mock storage
func (m *MockImageService) DeleteImage(imageKey string) error {
	m.mu.Lock()
	delete(m.images, imageKey)
	m.mu.Unlock()
	return nil
}

// HasImage checks whether an image was uploaded
func (m *MockImageService) HasImage(imageKey string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.images[imageKey]
}

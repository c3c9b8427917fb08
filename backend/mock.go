package backend

import (
	"context"
	"io"
)

// MockContentStore is a test double for ContentStore.
// All function fields must be set before the corresponding method is called.
type MockContentStore struct {
	AddBytesFn func(ctx context.Context, data []byte) (string, error)
	CatFn      func(ctx context.Context, handle string) (io.ReadCloser, error)
}

func (m *MockContentStore) AddBytes(ctx context.Context, data []byte) (string, error) {
	return m.AddBytesFn(ctx, data)
}
func (m *MockContentStore) Cat(ctx context.Context, handle string) (io.ReadCloser, error) {
	return m.CatFn(ctx, handle)
}

// MockLedgerFileService is a test double for LedgerFileService.
// All function fields must be set before the corresponding method is called.
type MockLedgerFileService struct {
	CreateFn   func(ctx context.Context, contents []byte, memo string) (FileID, error)
	AppendFn   func(ctx context.Context, id FileID, contents []byte) error
	ContentsFn func(ctx context.Context, id FileID) ([]byte, error)
}

func (m *MockLedgerFileService) Create(ctx context.Context, contents []byte, memo string) (FileID, error) {
	return m.CreateFn(ctx, contents, memo)
}
func (m *MockLedgerFileService) Append(ctx context.Context, id FileID, contents []byte) error {
	return m.AppendFn(ctx, id, contents)
}
func (m *MockLedgerFileService) Contents(ctx context.Context, id FileID) ([]byte, error) {
	return m.ContentsFn(ctx, id)
}

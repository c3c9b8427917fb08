package ledgerfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docvault-org/libdocvault-go/backend"
)

var testID = backend.FileID{Shard: 0, Realm: 0, Num: 4521}

// recordingService is a MockLedgerFileService that appends every accepted
// write to an in-memory file.
func recordingService(t *testing.T, stored *[]byte) *backend.MockLedgerFileService {
	t.Helper()
	return &backend.MockLedgerFileService{
		CreateFn: func(ctx context.Context, contents []byte, memo string) (backend.FileID, error) {
			*stored = append([]byte(nil), contents...)
			return testID, nil
		},
		AppendFn: func(ctx context.Context, id backend.FileID, contents []byte) error {
			require.Equal(t, testID, id)
			*stored = append(*stored, contents...)
			return nil
		},
		ContentsFn: func(ctx context.Context, id backend.FileID) ([]byte, error) {
			if id != testID {
				return nil, backend.ErrNotFound
			}
			return *stored, nil
		},
	}
}

func TestUploadSingleChunk(t *testing.T) {
	var stored []byte
	a, err := New(recordingService(t, &stored), 4096)
	require.NoError(t, err)

	data := bytes.Repeat([]byte{0x42}, 2048)
	rcpt, err := a.Upload(context.Background(), data, "evidence", nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.4521", rcpt.Handle)
	assert.Equal(t, "ledger://0.0.4521", rcpt.Locator)
	assert.Equal(t, data, stored, "2048 bytes fit the 4096 cap in one create")
}

func TestUploadOrderedAppends(t *testing.T) {
	var calls []string
	var stored []byte
	svc := &backend.MockLedgerFileService{
		CreateFn: func(ctx context.Context, contents []byte, memo string) (backend.FileID, error) {
			calls = append(calls, "create")
			stored = append(stored, contents...)
			return testID, nil
		},
		AppendFn: func(ctx context.Context, id backend.FileID, contents []byte) error {
			calls = append(calls, fmt.Sprintf("append-%d", len(calls)))
			stored = append(stored, contents...)
			return nil
		},
	}
	a, err := New(svc, 10)
	require.NoError(t, err)

	data := []byte("0123456789abcdefghijABCDEFGHIJxy") // 32 bytes -> 4 chunks of cap 10
	rcpt, err := a.Upload(context.Background(), data, "", nil)
	require.NoError(t, err)
	require.NotNil(t, rcpt)

	assert.Equal(t, []string{"create", "append-1", "append-2", "append-3"}, calls)
	assert.Equal(t, data, stored, "in-order writes reassemble the input exactly")
}

func TestUploadProgress(t *testing.T) {
	var stored []byte
	a, err := New(recordingService(t, &stored), 1000)
	require.NoError(t, err)

	var events []backend.Progress
	data := bytes.Repeat([]byte{1}, 2500)
	_, err = a.Upload(context.Background(), data, "", func(p backend.Progress) {
		events = append(events, p)
	})
	require.NoError(t, err)
	require.NotEmpty(t, events)

	var prev int64 = -1
	for _, p := range events {
		assert.GreaterOrEqual(t, p.BytesTransferred, prev, "progress must be monotone")
		assert.LessOrEqual(t, p.BytesTransferred, p.TotalBytes)
		assert.Equal(t, int64(2500), p.TotalBytes)
		prev = p.BytesTransferred
	}
	last := events[len(events)-1]
	assert.Equal(t, int64(2500), last.BytesTransferred)
	assert.Equal(t, 100.0, last.Percentage)
}

func TestUploadPartialFailure(t *testing.T) {
	appendCalls := 0
	svc := &backend.MockLedgerFileService{
		CreateFn: func(ctx context.Context, contents []byte, memo string) (backend.FileID, error) {
			return testID, nil
		},
		AppendFn: func(ctx context.Context, id backend.FileID, contents []byte) error {
			appendCalls++
			if appendCalls == 2 {
				// Chunk 3 of 5: the second append.
				return errors.New("network reset")
			}
			return nil
		},
	}
	a, err := New(svc, 100)
	require.NoError(t, err)

	data := bytes.Repeat([]byte{7}, 500) // 5 chunks
	rcpt, err := a.Upload(context.Background(), data, "", nil)
	require.Error(t, err)
	assert.Nil(t, rcpt)

	var partial *PartialUploadError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 2, partial.ChunksDone)
	assert.Equal(t, 5, partial.TotalChunks)
	assert.Equal(t, testID, partial.FileID)
	assert.ErrorIs(t, err, backend.ErrTransport)

	// No retry and no further appends after the failure.
	assert.Equal(t, 2, appendCalls)
}

func TestResumeAt(t *testing.T) {
	var stored []byte
	a, err := New(recordingService(t, &stored), 100)
	require.NoError(t, err)

	data := bytes.Repeat([]byte{9}, 500)
	chunks, err := SplitIntoChunks(data, 100)
	require.NoError(t, err)

	// Simulate a prior partial upload that wrote the first two chunks.
	stored = append(stored, chunks[0]...)
	stored = append(stored, chunks[1]...)

	rcpt, err := a.ResumeAt(context.Background(), testID, data, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.0.4521", rcpt.Handle)
	assert.Equal(t, data, stored)
}

func TestResumeAtInvalidOffset(t *testing.T) {
	var stored []byte
	a, err := New(recordingService(t, &stored), 100)
	require.NoError(t, err)

	data := bytes.Repeat([]byte{9}, 500)
	for _, offset := range []int{0, 5, 17, -1} {
		_, err := a.ResumeAt(context.Background(), testID, data, offset, nil)
		assert.ErrorIs(t, err, ErrInvalidResumeOffset, "offset %d", offset)
	}
}

func TestUploadCancelledContext(t *testing.T) {
	svc := &backend.MockLedgerFileService{
		CreateFn: func(ctx context.Context, contents []byte, memo string) (backend.FileID, error) {
			return testID, nil
		},
		AppendFn: func(ctx context.Context, id backend.FileID, contents []byte) error {
			t.Fatal("append must not be issued after cancellation")
			return nil
		},
	}
	a, err := New(svc, 100)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = a.Upload(ctx, bytes.Repeat([]byte{1}, 300), "", nil)
	var partial *PartialUploadError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.ChunksDone, "the create already happened")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDownload(t *testing.T) {
	stored := []byte("ledger file body")
	a, err := New(recordingService(t, &stored), 4096)
	require.NoError(t, err)

	got, err := a.Download(context.Background(), testID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = a.Download(context.Background(), backend.FileID{Num: 999})
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestUploadEmptyContent(t *testing.T) {
	var stored []byte
	a, err := New(recordingService(t, &stored), 4096)
	require.NoError(t, err)

	_, err = a.Upload(context.Background(), nil, "", nil)
	assert.ErrorIs(t, err, backend.ErrEmptyContent)
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, 4096)
	assert.ErrorIs(t, err, backend.ErrUnavailable)

	_, err = New(&backend.MockLedgerFileService{}, 0)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

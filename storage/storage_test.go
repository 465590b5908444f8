package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/nijaru/yt-kb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewFileStore(root)
	require.NoError(t, err)

	_, err = store.Load(ctx, "gottman", "test-video")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, store.Save(ctx, "gottman", "test-video", "first"))
	require.NoError(t, store.Save(ctx, "gottman", "test-video", "second"))

	doc, err := store.Load(ctx, "gottman", "test-video")
	require.NoError(t, err)
	assert.Equal(t, "second", doc)

	data, err := os.ReadFile(filepath.Join(root, "gottman", "test-video.md"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Join(root, "gottman"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStoreReadErrorIsStorageFailure(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewFileStore(root)
	require.NoError(t, err)

	// A directory where the document should be makes ReadFile fail with
	// something other than not-exist.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "gottman", "broken.md"), 0755))

	_, err = store.Load(ctx, "gottman", "broken")
	require.Error(t, err)
	assert.True(t, errors.IsStorage(err))
}

func TestNewFileStoreRequiresRoot(t *testing.T) {
	_, err := NewFileStore("")
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidInput, errors.KindOf(err))
}

type fakeObjects struct {
	objects map[string]string
	getErr  error
}

func (f *fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	doc, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte(doc)))}, nil
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = string(data)
	return &s3.PutObjectOutput{}, nil
}

func TestSpacesStore(t *testing.T) {
	ctx := context.Background()
	fake := &fakeObjects{objects: map[string]string{}}
	store := newSpacesStore(fake, "kb", "/knowledge-base/")

	_, err := store.Load(ctx, "gottman", "test-video")
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, store.Save(ctx, "gottman", "test-video", "hello"))
	assert.Contains(t, fake.objects, "knowledge-base/gottman/test-video.md")

	doc, err := store.Load(ctx, "gottman", "test-video")
	require.NoError(t, err)
	assert.Equal(t, "hello", doc)

	fake.getErr = io.ErrUnexpectedEOF
	_, err = store.Load(ctx, "gottman", "test-video")
	assert.True(t, errors.IsStorage(err))
}

func TestKeyLocksSerializeSameKey(t *testing.T) {
	var locks KeyLocks
	var mu sync.Mutex
	active, maxActive := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("gottman", "same-key")
			defer unlock()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxActive)
}

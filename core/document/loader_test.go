package document

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"model-compare/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with the given content in a temp dir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_LoadFile(t *testing.T) {
	loader := NewLoader(nil)
	ctx := context.Background()

	t.Run("valid JSON", func(t *testing.T) {
		path := writeFile(t, "model.json", `{"graph": {"nodes": [{"nodeid": 123456789012345678901}]}}`)

		doc, err := loader.Load(ctx, path)
		require.NoError(t, err)

		nodes := doc.(map[string]any)["graph"].(map[string]any)["nodes"].([]any)
		assert.Equal(t, json.Number("123456789012345678901"), nodes[0].(map[string]any)["nodeid"])
	})

	t.Run("valid YAML", func(t *testing.T) {
		path := writeFile(t, "model.yaml", "graph:\n  nodes:\n    - nodeid: n1\n      name: A\n")

		doc, err := loader.Load(ctx, path)
		require.NoError(t, err)

		graph := doc.(map[string]any)["graph"].(map[string]any)
		assert.Len(t, graph["nodes"], 1)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.json")

		_, err := loader.Load(ctx, path)
		assert.ErrorIs(t, err, ErrInputNotFound)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("directory is unreadable", func(t *testing.T) {
		_, err := loader.Load(ctx, t.TempDir())
		assert.ErrorIs(t, err, ErrInputNotFound)
		assert.NotErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeFile(t, "broken.json", `{"graph": [`)

		_, err := loader.Load(ctx, path)
		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("trailing data", func(t *testing.T) {
		path := writeFile(t, "twice.json", `{"graph": {}} {"graph": {}}`)

		_, err := loader.Load(ctx, path)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "empty.json", "")

		_, err := loader.Load(ctx, path)
		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.Contains(t, err.Error(), "empty document")
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := writeFile(t, "broken.yml", "graph: [unclosed\n")

		_, err := loader.Load(ctx, path)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})
}

func TestLoader_LoadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("object source", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "models", "v1/arch.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`{"graph": []}`)), nil)

		doc, err := NewLoader(mockClient).Load(ctx, "s3://models/v1/arch.json")
		require.NoError(t, err)
		assert.Contains(t, doc, "graph")
		mockClient.AssertExpectations(t)
	})

	t.Run("missing object", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "models", "gone.json", mock.Anything).
			Return(io.NopCloser(&failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}), nil)

		_, err := NewLoader(mockClient).Load(ctx, "s3://models/gone.json")
		assert.ErrorIs(t, err, ErrInputNotFound)
		assert.Contains(t, err.Error(), "s3://models/gone.json")
	})

	t.Run("body read failure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "models", "x.json", mock.Anything).
			Return(io.NopCloser(&failingReader{err: errors.New("connection reset by peer")}), nil)

		_, err := NewLoader(mockClient).Load(ctx, "s3://models/x.json")
		assert.ErrorIs(t, err, ErrInputNotFound)
		assert.NotErrorIs(t, err, ErrInvalidDocument)
		assert.ErrorContains(t, err, "connection reset by peer")
	})

	t.Run("get object error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "models", "x.json", mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, err := NewLoader(mockClient).Load(ctx, "s3://models/x.json")
		assert.ErrorIs(t, err, ErrInputNotFound)
	})

	t.Run("invalid object content", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "models", "bad.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader(`not json`)), nil)

		_, err := NewLoader(mockClient).Load(ctx, "s3://models/bad.json")
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("no storage configured", func(t *testing.T) {
		_, err := NewLoader(nil).Load(ctx, "s3://models/x.json")
		assert.ErrorIs(t, err, ErrInputNotFound)
	})

	t.Run("malformed reference", func(t *testing.T) {
		_, err := NewLoader(new(mocks.Client)).Load(ctx, "s3://models")
		assert.ErrorIs(t, err, ErrInputNotFound)
	})
}

func TestLoader_LoadPair(t *testing.T) {
	loader := NewLoader(nil)
	ctx := context.Background()

	first := writeFile(t, "a.json", `{"graph": {"nodes": [{"nodeid": "n1"}]}}`)
	second := writeFile(t, "b.json", `{"graph": {"nodes": [{"nodeid": "n2"}]}}`)

	t.Run("both load", func(t *testing.T) {
		a, b, err := loader.LoadPair(ctx, first, second)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("second missing", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.json")

		a, b, err := loader.LoadPair(ctx, first, missing)
		assert.ErrorIs(t, err, ErrInputNotFound)
		assert.Contains(t, err.Error(), missing)
		assert.Nil(t, a)
		assert.Nil(t, b)
	})
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("model.json"))
	assert.Equal(t, FormatJSON, FormatFor("model"))
	assert.Equal(t, FormatYAML, FormatFor("model.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("dir/model.YML"))
}

// failingReader returns err on the first read, like a minio object that does not exist.
type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

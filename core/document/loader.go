package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"model-compare/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// Loader reads model exports from local files or object storage.
type Loader struct {
	client storage.Client
}

// NewLoader creates a loader. client may be nil when only local files are read.
func NewLoader(client storage.Client) *Loader {
	return &Loader{client: client}
}

// Load reads and decodes one document. src is a file path or an
// "s3://bucket/object" reference.
func (l *Loader) Load(ctx context.Context, src string) (any, error) {
	if bucket, object, ok := storage.ParseURI(src); ok {
		if bucket == "" || object == "" {
			return nil, fmt.Errorf("%w: %s: malformed object reference", ErrInputNotFound, src)
		}
		return l.LoadObject(ctx, bucket, object)
	}
	return l.loadFile(src)
}

// LoadPair loads two documents concurrently. If both fail, the first error
// observed is returned.
func (l *Loader) LoadPair(ctx context.Context, first, second string) (any, any, error) {
	var firstDoc, secondDoc any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := l.Load(gctx, first)
		firstDoc = doc
		return err
	})
	g.Go(func() error {
		doc, err := l.Load(gctx, second)
		secondDoc = doc
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return firstDoc, secondDoc, nil
}

// LoadObject reads and decodes a document stored in a bucket.
func (l *Loader) LoadObject(ctx context.Context, bucket, object string) (any, error) {
	src := storage.URIScheme + bucket + "/" + object
	if l.client == nil {
		return nil, fmt.Errorf("%w: %s: object storage is not configured", ErrInputNotFound, src)
	}

	reader, err := l.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, src, err)
	}
	defer reader.Close()

	// minio reports a missing object on first read, not on GetObject
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, src, err)
	}
	return decodeSource(data, FormatFor(object), src)
}

func (l *Loader) loadFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
	}
	return decodeSource(data, FormatFor(path), path)
}

// decodeSource parses a fully read source. Only syntax errors reach this point.
func decodeSource(data []byte, format Format, src string) (any, error) {
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, src, err)
	}
	return doc, nil
}

package compare

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"model-compare/core/cache"
	"model-compare/core/document"
	"model-compare/core/graph"
	"model-compare/core/metrics"
	"model-compare/core/reconcile"
	"model-compare/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	sourceInline  = "inline"
	sourceObjects = "objects"
)

// Service runs comparisons for the HTTP API.
type Service struct {
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	loader   *document.Loader
	mappings *cache.MappingCache
	metrics  *metrics.Collector
}

// NewService creates a new compare service. logger, mappings and collector may be nil.
func NewService(client storage.Client, bucket string, logger *zap.Logger, mappings *cache.MappingCache, collector *metrics.Collector) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:   client,
		bucket:   bucket,
		logger:   logger,
		loader:   document.NewLoader(client),
		mappings: mappings,
		metrics:  collector,
	}
}

// CompareDocuments reconciles two already decoded documents.
func (s *Service) CompareDocuments(first, second any) *reconcile.ComparisonResult {
	res := reconcile.Reconcile(graph.Extract(first), graph.Extract(second))
	s.metrics.ObserveComparison(sourceInline, res.Summary)
	return res
}

// CompareRaw decodes two inline JSON documents and reconciles them.
func (s *Service) CompareRaw(first, second []byte) (*reconcile.ComparisonResult, error) {
	firstDoc, err := decodeInline("first", first)
	if err != nil {
		return nil, err
	}
	secondDoc, err := decodeInline("second", second)
	if err != nil {
		return nil, err
	}
	return s.CompareDocuments(firstDoc, secondDoc), nil
}

// CompareObjects reconciles two objects of the configured bucket.
func (s *Service) CompareObjects(ctx context.Context, first, second string) (*reconcile.ComparisonResult, error) {
	var firstNodes, secondNodes graph.NodeMapping

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.mapping(gctx, first)
		firstNodes = m
		return err
	})
	g.Go(func() error {
		m, err := s.mapping(gctx, second)
		secondNodes = m
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.LoadError(errorKind(err))
		return nil, err
	}

	res := reconcile.Reconcile(firstNodes, secondNodes)
	s.metrics.ObserveComparison(sourceObjects, res.Summary)
	return res, nil
}

// mapping returns the node mapping of one object, going through the cache
// when one is configured. Cache entries are keyed by the object's ETag.
func (s *Service) mapping(ctx context.Context, object string) (graph.NodeMapping, error) {
	build := func() (graph.NodeMapping, error) {
		doc, err := s.loader.LoadObject(ctx, s.bucket, object)
		if err != nil {
			return nil, err
		}
		return graph.Extract(doc), nil
	}

	if s.mappings == nil || s.client == nil {
		return build()
	}

	info, err := s.client.StatObject(ctx, s.bucket, object, minio.StatObjectOptions{})
	if err != nil {
		src := storage.URIScheme + s.bucket + "/" + object
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s: %w", document.ErrInputNotFound, src, err)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", src, err)
	}

	key := cache.Key(s.bucket, object, info.ETag)
	nodes, hit, err := s.mappings.GetOrBuild(key, build)
	if err != nil {
		return nil, err
	}
	s.metrics.CacheResult(hit)
	s.logger.Debug("Resolved node mapping",
		zap.String("object", object),
		zap.String("etag", info.ETag),
		zap.Bool("cache_hit", hit),
		zap.Int("nodes", len(nodes)),
	)
	return nodes, nil
}

func decodeInline(field string, raw []byte) (any, error) {
	doc, err := document.Decode(bytes.NewReader(raw), document.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", document.ErrInvalidDocument, field, err)
	}
	return doc, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, document.ErrInputNotFound):
		return "not_found"
	case errors.Is(err, document.ErrInvalidDocument):
		return "invalid"
	default:
		return "storage"
	}
}

package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

//go:generate mockgen -source=./embedding.go -destination=./mocks/embedder.mock.go -package=svcmocks Embedder

// Embedder maps text to a fixed-length vector. Returned slices may be shared
// between callers and must not be modified.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

const (
	semanticSimilarityTask = "SEMANTIC_SIMILARITY"

	// sharedEmbedTimeout bounds a model call that other requests may be waiting on.
	sharedEmbedTimeout = 60 * time.Second
)

type geminiEmbedder struct {
	client     *genai.Client
	embedModel string
}

func NewGeminiEmbedder(ctx context.Context, apiKey, embedModel string) (Embedder, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiEmbedder{
		client:     client,
		embedModel: embedModel,
	}, nil
}

// Embed implements Embedder.
func (g *geminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), &genai.EmbedContentConfig{
		TaskType: semanticSimilarityTask,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 || result.Embeddings[0] == nil {
		return nil, errors.New("empty embedding result")
	}
	if len(result.Embeddings[0].Values) == 0 {
		return nil, errors.New("embedding has no values")
	}

	return result.Embeddings[0].Values, nil
}

// ModelLoader builds the embedder backing an EmbeddingModel.
type ModelLoader func(ctx context.Context) (Embedder, error)

func GeminiLoader(apiKey, embedModel string) ModelLoader {
	return func(ctx context.Context) (Embedder, error) {
		return NewGeminiEmbedder(ctx, apiKey, embedModel)
	}
}

// EmbeddingModel is the process-wide embedding handle. The underlying embedder
// is built once, on first use or by an explicit Load, and never replaced.
// Vectors are memoized in a bounded LRU keyed by a hash of the input text.
type EmbeddingModel struct {
	loader  ModelLoader
	mu      sync.Mutex
	current atomic.Pointer[Embedder]

	cache  *lru.Cache[string, []float32]
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

// NewEmbeddingModel returns an unloaded handle. cacheSize 0 disables memoization.
func NewEmbeddingModel(loader ModelLoader, cacheSize int) (*EmbeddingModel, error) {
	m := &EmbeddingModel{loader: loader}

	if cacheSize > 0 {
		cache, err := lru.New[string, []float32](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create embeddings cache: %w", err)
		}
		m.cache = cache
	}

	return m, nil
}

// Load builds the embedder if it has not been built yet. Concurrent callers
// wait for a single load; a failed load is retried by the next caller.
func (m *EmbeddingModel) Load(ctx context.Context) (Embedder, error) {
	if e := m.current.Load(); e != nil {
		return *e, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if e := m.current.Load(); e != nil {
		return *e, nil
	}

	log.Println("🔄 Loading embedding model...")
	e, err := m.loader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedding model: %w", err)
	}
	m.current.Store(&e)
	log.Println("✅ Embedding model loaded successfully")

	return e, nil
}

func (m *EmbeddingModel) Loaded() bool {
	return m.current.Load() != nil
}

// Embed implements Embedder.
func (m *EmbeddingModel) Embed(ctx context.Context, text string) ([]float32, error) {
	embedder, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}

	if m.cache == nil {
		return embedder.Embed(ctx, text)
	}

	key := cacheKey(text)
	if vec, ok := m.cache.Get(key); ok {
		m.hits.Add(1)
		return vec, nil
	}
	m.misses.Add(1)

	ch := m.group.DoChan(key, func() (any, error) {
		// A flight for the same key may have finished since the lookup above.
		if vec, ok := m.cache.Get(key); ok {
			return vec, nil
		}

		// Shared by every waiter on key, detached from the starting caller.
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedEmbedTimeout)
		defer cancel()

		vec, err := embedder.Embed(callCtx, text)
		if err != nil {
			return nil, err
		}
		m.cache.Add(key, vec)
		return vec, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]float32), nil
	}
}

// Stats returns cache hit and miss counts since start.
func (m *EmbeddingModel) Stats() (hits, misses int64) {
	return m.hits.Load(), m.misses.Load()
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"meprofiled/backend/internal/config"
	svcmocks "meprofiled/backend/internal/services/mocks"
)

func defaultBoostConfig(mode string) config.BoostConfig {
	return config.BoostConfig{Mode: mode, Low: 0.45, High: 0.90, Mid: 0.65, Steepness: 10}
}

func TestNewBoost(t *testing.T) {
	for _, mode := range []string{config.BoostNone, config.BoostLinear, config.BoostLogistic} {
		t.Run(mode, func(t *testing.T) {
			boost, err := NewBoost(defaultBoostConfig(mode))
			require.NoError(t, err)

			assert.InDelta(t, 0, boost(0), 1e-9)
			assert.InDelta(t, 1, boost(1), 1e-9)

			prev := boost(0)
			for i := 1; i <= 100; i++ {
				x := float64(i) / 100
				y := boost(x)
				assert.GreaterOrEqual(t, y, prev, "not monotonic at %.2f", x)
				assert.GreaterOrEqual(t, y, 0.0)
				assert.LessOrEqual(t, y, 1.0)
				prev = y
			}
		})
	}

	t.Run("linear rescales between bounds", func(t *testing.T) {
		boost, err := NewBoost(defaultBoostConfig(config.BoostLinear))
		require.NoError(t, err)
		assert.InDelta(t, 0, boost(0.30), 1e-9)
		assert.InDelta(t, 0, boost(0.45), 1e-9)
		assert.InDelta(t, 0.5, boost(0.675), 1e-9)
		assert.InDelta(t, 1, boost(0.95), 1e-9)
	})

	t.Run("logistic is centered on mid", func(t *testing.T) {
		boost, err := NewBoost(defaultBoostConfig(config.BoostLogistic))
		require.NoError(t, err)
		assert.Less(t, boost(0.4), 0.2)
		assert.Greater(t, boost(0.9), 0.8)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewBoost(config.BoostConfig{Mode: "cubic"})
		assert.Error(t, err)

		_, err = NewBoost(config.BoostConfig{Mode: config.BoostLinear, Low: 0.9, High: 0.5})
		assert.Error(t, err)

		_, err = NewBoost(config.BoostConfig{Mode: config.BoostLogistic, Steepness: 0})
		assert.Error(t, err)
	})
}

func TestCosineSimilarity(t *testing.T) {
	testCases := []struct {
		name    string
		a, b    []float32
		want    float64
		wantErr bool
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "scaled", a: []float32{1, 1}, b: []float32{3, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite clamps to zero", a: []float32{1, 0}, b: []float32{-1, 0}, want: 0},
		{name: "empty", a: nil, b: []float32{1}, wantErr: true},
		{name: "dimension mismatch", a: []float32{1, 0}, b: []float32{1, 0, 0}, wantErr: true},
		{name: "zero norm", a: []float32{0, 0}, b: []float32{1, 0}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CosineSimilarity(tc.a, tc.b)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-6)
		})
	}
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "héllo", TruncateText("héllo wörld", 5, 512))
	assert.Equal(t, "one two", TruncateText("one  two\nthree four", 5000, 2))
	assert.Equal(t, "short text", TruncateText("short text", 5000, 512))
	assert.Equal(t, 512, len(strings.Fields(TruncateText(strings.Repeat("word ", 1000), 5000, 512))))
	assert.Equal(t, 5000, len([]rune(TruncateText(strings.Repeat("ä", 6000), 5000, 512))))
}

func TestSimilarityEngine_Compare(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) Embedder
		wantRaw float64
		wantErr bool
	}{
		{
			name: "identical texts",
			mock: func(ctrl *gomock.Controller) Embedder {
				embedder := svcmocks.NewMockEmbedder(ctrl)
				embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return([]float32{0.3, 0.4, 0.5}, nil).Times(2)
				return embedder
			},
			wantRaw: 1,
		},
		{
			name: "embedder failure",
			mock: func(ctrl *gomock.Controller) Embedder {
				embedder := svcmocks.NewMockEmbedder(ctrl)
				embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).Return(nil, errors.New("quota exceeded")).MinTimes(1).MaxTimes(2)
				return embedder
			},
			wantErr: true,
		},
		{
			name: "dimension mismatch",
			mock: func(ctrl *gomock.Controller) Embedder {
				embedder := svcmocks.NewMockEmbedder(ctrl)
				embedder.EXPECT().Embed(gomock.Any(), "resume text").Return([]float32{1, 0}, nil)
				embedder.EXPECT().Embed(gomock.Any(), "job text").Return([]float32{1, 0, 0}, nil)
				return embedder
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			boost, err := NewBoost(defaultBoostConfig(config.BoostLinear))
			require.NoError(t, err)

			engine := NewSimilarityEngine(tc.mock(ctrl), boost, 5000, 512)
			sim, err := engine.Compare(context.Background(), "resume text", "job text")
			if tc.wantErr {
				var embeddingErr *EmbeddingError
				assert.True(t, errors.As(err, &embeddingErr))
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tc.wantRaw, sim.Raw, 1e-6)
			assert.InDelta(t, 1, sim.Score, 1e-6)
		})
	}
}

func TestSimilarityEngine_TruncatesBeforeEmbedding(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := svcmocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().Embed(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, text string) ([]float32, error) {
		assert.LessOrEqual(t, len(strings.Fields(text)), 3)
		return []float32{1, 1}, nil
	}).Times(2)

	boost, err := NewBoost(defaultBoostConfig(config.BoostNone))
	require.NoError(t, err)

	engine := NewSimilarityEngine(embedder, boost, 5000, 3)
	_, err = engine.Compare(context.Background(), "one two three four five", "a b c d e f")
	require.NoError(t, err)
}

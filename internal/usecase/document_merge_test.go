package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/usecase"
)

func doc(index int, docType string, number domain.MultilingualText) *domain.Document {
	return &domain.Document{
		Index:          index,
		DocumentType:   domain.DocumentType{Code: docType},
		OfficialNumber: number,
		Title:          domain.MultilingualText{"de": docType},
		PublishedFrom:  lastYear,
	}
}

func TestMergeDocuments(t *testing.T) {
	logger := zap.NewNop()

	t.Run("theme document wins over matching topic document", func(t *testing.T) {
		themeDoc := doc(1, "Law", domain.MultilingualText{"de": "A1"})
		duplicate := doc(1, "Law", domain.MultilingualText{"de": "A1"})
		hint := doc(2, "Hint", nil)

		merged, removed := usecase.MergeDocuments(
			[]*domain.Document{themeDoc},
			[]*domain.Document{duplicate, hint},
			logger,
		)

		require.Len(t, merged, 2)
		assert.Same(t, themeDoc, merged[0])
		assert.Same(t, hint, merged[1])
		assert.Equal(t, 1, removed)
	})

	t.Run("empty side returns the other unchanged", func(t *testing.T) {
		docs := []*domain.Document{doc(1, "Law", nil)}

		merged, removed := usecase.MergeDocuments(nil, docs, logger)
		assert.Equal(t, docs, merged)
		assert.Zero(t, removed)

		merged, removed = usecase.MergeDocuments(docs, nil, logger)
		assert.Equal(t, docs, merged)
		assert.Zero(t, removed)
	})

	t.Run("different official numbers are kept", func(t *testing.T) {
		merged, removed := usecase.MergeDocuments(
			[]*domain.Document{doc(1, "Law", domain.MultilingualText{"de": "A1"})},
			[]*domain.Document{doc(1, "Law", domain.MultilingualText{"de": "A2"})},
			logger,
		)
		assert.Len(t, merged, 2)
		assert.Zero(t, removed)
	})

	t.Run("topic document matching several theme documents is removed once", func(t *testing.T) {
		theme := []*domain.Document{
			doc(1, "Law", domain.MultilingualText{"de": "A1"}),
			doc(1, "Law", domain.MultilingualText{"fr": "B1"}),
		}
		topic := []*domain.Document{doc(1, "Law", domain.MultilingualText{"de": "A1", "fr": "B1"})}

		merged, removed := usecase.MergeDocuments(theme, topic, logger)
		assert.Equal(t, theme, merged)
		assert.Equal(t, 1, removed)
	})

	t.Run("relative order of unmatched topic documents is kept", func(t *testing.T) {
		theme := []*domain.Document{doc(5, "Law", nil)}
		a, b, c := doc(3, "Hint", nil), doc(5, "Law", nil), doc(1, "Edict", nil)

		merged, _ := usecase.MergeDocuments(theme, []*domain.Document{a, b, c}, logger)
		require.Len(t, merged, 3)
		assert.Same(t, a, merged[1])
		assert.Same(t, c, merged[2])
	})
}

func TestDocumentMemo(t *testing.T) {
	ctx := context.Background()
	req := domain.DocumentRequest{GeolinkID: 42, LawStatus: inForce, Language: "de"}

	t.Run("loads a key once", func(t *testing.T) {
		memo := usecase.NewDocumentMemo()
		var calls int32
		load := func(context.Context, domain.DocumentRequest) ([]*domain.Document, error) {
			atomic.AddInt32(&calls, 1)
			return []*domain.Document{doc(1, "Law", nil)}, nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				docs, err := memo.Get(ctx, req, load)
				assert.NoError(t, err)
				assert.Len(t, docs, 1)
			}()
		}
		wg.Wait()

		_, err := memo.Get(ctx, req, load)
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		assert.Equal(t, 1, memo.Len())
	})

	t.Run("law status and language are part of the key", func(t *testing.T) {
		memo := usecase.NewDocumentMemo()
		load := func(_ context.Context, r domain.DocumentRequest) ([]*domain.Document, error) {
			return []*domain.Document{doc(r.GeolinkID, r.Language, nil)}, nil
		}

		_, _ = memo.Get(ctx, req, load)
		fr := req
		fr.Language = "fr"
		_, _ = memo.Get(ctx, fr, load)
		changed := req
		changed.LawStatus = domain.LawStatus{Code: "AenderungMitVorwirkung"}
		_, _ = memo.Get(ctx, changed, load)

		assert.Equal(t, 3, memo.Len())
	})

	t.Run("extra query is part of the key", func(t *testing.T) {
		memo := usecase.NewDocumentMemo()
		load := func(_ context.Context, r domain.DocumentRequest) ([]*domain.Document, error) {
			return []*domain.Document{doc(r.GeolinkID, r.ExtraQuery, nil)}, nil
		}

		landUse := req
		landUse.ExtraQuery = "oereb_id=5"
		noise := req
		noise.ExtraQuery = "oereb_id=9"

		first, err := memo.Get(ctx, landUse, load)
		require.NoError(t, err)
		second, err := memo.Get(ctx, noise, load)
		require.NoError(t, err)

		assert.Equal(t, "oereb_id=5", first[0].DocumentType.Code)
		assert.Equal(t, "oereb_id=9", second[0].DocumentType.Code)
		assert.Equal(t, 2, memo.Len())
	})

	t.Run("expired caller does not fail other waiters", func(t *testing.T) {
		memo := usecase.NewDocumentMemo()
		started := make(chan struct{})
		release := make(chan struct{})
		load := func(loadCtx context.Context, _ domain.DocumentRequest) ([]*domain.Document, error) {
			close(started)
			<-release
			if err := loadCtx.Err(); err != nil {
				return nil, err
			}
			return []*domain.Document{doc(1, "Law", nil)}, nil
		}

		short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		shortErr := make(chan error, 1)
		go func() {
			_, err := memo.Get(short, req, load)
			shortErr <- err
		}()
		<-started

		type result struct {
			docs []*domain.Document
			err  error
		}
		waiting := make(chan result, 1)
		go func() {
			docs, err := memo.Get(ctx, req, load)
			waiting <- result{docs, err}
		}()

		assert.ErrorIs(t, <-shortErr, context.DeadlineExceeded)
		close(release)

		res := <-waiting
		require.NoError(t, res.err)
		assert.Len(t, res.docs, 1)
		assert.Equal(t, 1, memo.Len())
	})

	t.Run("errors are not remembered", func(t *testing.T) {
		memo := usecase.NewDocumentMemo()
		failing := func(context.Context, domain.DocumentRequest) ([]*domain.Document, error) {
			return nil, errors.New("registry unavailable")
		}

		_, err := memo.Get(ctx, req, failing)
		assert.Error(t, err)
		assert.Zero(t, memo.Len())
	})
}

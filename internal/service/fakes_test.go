package service

import (
	"context"
	"sort"
	"time"

	"cnc-assist/internal/apperrors"
	"cnc-assist/internal/models"

	"github.com/google/uuid"
)

type fakeQAStore struct {
	items        map[uuid.UUID]*models.QAInteraction
	reports      []models.AnswerReport
	createCalls  int
	createErr    error
	addReportErr error
}

func newFakeQAStore() *fakeQAStore {
	return &fakeQAStore{items: make(map[uuid.UUID]*models.QAInteraction)}
}

func (f *fakeQAStore) Create(_ context.Context, qa *models.QAInteraction) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	cp := *qa
	f.items[qa.ID] = &cp
	return nil
}

func (f *fakeQAStore) GetByID(_ context.Context, id uuid.UUID) (*models.QAInteraction, error) {
	qa, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *qa
	return &cp, nil
}

func (f *fakeQAStore) UpdateCounters(_ context.Context, id uuid.UUID, likes, dislikes int) error {
	qa, ok := f.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	qa.Likes = likes
	qa.Dislikes = dislikes
	return nil
}

func (f *fakeQAStore) UpdateReports(_ context.Context, id uuid.UUID, reports int, hidden bool) error {
	qa, ok := f.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	qa.Reports = reports
	qa.Hidden = hidden
	return nil
}

func (f *fakeQAStore) ListReported(_ context.Context) ([]*models.QAInteraction, error) {
	var out []*models.QAInteraction
	for _, qa := range f.items {
		if qa.Reports > 0 {
			cp := *qa
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reports > out[j].Reports })
	return out, nil
}

func (f *fakeQAStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeQAStore) AddReport(_ context.Context, qaID uuid.UUID, reporter string) error {
	if f.addReportErr != nil {
		return f.addReportErr
	}
	f.reports = append(f.reports, models.AnswerReport{
		ID:        uuid.New(),
		QAID:      qaID,
		Reporter:  reporter,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

type fakeRetriever struct {
	chunks    []*models.Chunk
	err       error
	calls     int
	lastQuery string
}

func (f *fakeRetriever) Retrieve(_ context.Context, query string) ([]*models.Chunk, error) {
	f.calls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.chunks, nil
}

type fakeChatModel struct {
	reply        string
	err          error
	calls        int
	lastMessages []ChatMessage
}

func (f *fakeChatModel) Complete(_ context.Context, messages []ChatMessage) (string, error) {
	f.calls++
	f.lastMessages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeEmbedder struct {
	vector []float32
	errFor func(text string) error
	calls  int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.errFor != nil {
		if err := f.errFor(text); err != nil {
			return nil, err
		}
	}
	return f.vector, nil
}

type fakeChunkStore struct {
	inserted      []*models.Chunk
	insertErr     error
	searchResult  []*models.Chunk
	searchErr     error
	lastTopK      int
	lastMinSim    float64
	lastEmbedding []float32
	deleteCalls   int
}

func (f *fakeChunkStore) Insert(_ context.Context, chunk *models.Chunk) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, chunk)
	return nil
}

func (f *fakeChunkStore) SearchSimilar(_ context.Context, embedding []float32, topK int, minSimilarity float64) ([]*models.Chunk, error) {
	f.lastEmbedding = embedding
	f.lastTopK = topK
	f.lastMinSim = minSimilarity
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResult, nil
}

func (f *fakeChunkStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.inserted)), nil
}

func (f *fakeChunkStore) DeleteAll(_ context.Context) error {
	f.deleteCalls++
	f.inserted = nil
	return nil
}

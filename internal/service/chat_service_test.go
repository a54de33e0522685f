package service

import (
	"context"
	"errors"
	"testing"

	"cnc-assist/internal/cache"
	"cnc-assist/internal/dto"
	"cnc-assist/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAnswerer struct {
	answer string
	noData bool
	err    error
	calls  int
}

func (f *fakeAnswerer) Answer(_ context.Context, _ string, _ []dto.ChatTurn, _ []*models.Chunk) (string, bool, error) {
	f.calls++
	if f.err != nil {
		return "", false, f.err
	}
	return f.answer, f.noData, nil
}

func oneChunk(content string) []*models.Chunk {
	return []*models.Chunk{{ID: uuid.New(), Content: content, Similarity: 0.9}}
}

func TestChatAnswersAndPersists(t *testing.T) {
	retriever := &fakeRetriever{chunks: oneChunk("lathe basics")}
	answerer := &fakeAnswerer{answer: "A lathe rotates the workpiece."}
	store := newFakeQAStore()
	svc := NewChatService(cache.NewMemory(), retriever, answerer, store, zap.NewNop())

	resp, err := svc.Chat(context.Background(), "What is a lathe?", nil)

	require.NoError(t, err)
	assert.Equal(t, "A lathe rotates the workpiece.", resp.Answer)
	assert.False(t, resp.Cached)
	assert.False(t, resp.NoData)

	id, err := uuid.Parse(resp.QAID)
	require.NoError(t, err)
	qa, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "What is a lathe?", qa.Question)
	assert.Equal(t, "A lathe rotates the workpiece.", qa.Answer)
	assert.Equal(t, 0, qa.Likes)
	assert.False(t, qa.Hidden)
}

func TestChatRepeatQuestionServedFromCache(t *testing.T) {
	retriever := &fakeRetriever{chunks: oneChunk("lathe basics")}
	answerer := &fakeAnswerer{answer: "A lathe rotates the workpiece."}
	store := newFakeQAStore()
	svc := NewChatService(cache.NewMemory(), retriever, answerer, store, zap.NewNop())

	first, err := svc.Chat(context.Background(), "What is a lathe?", nil)
	require.NoError(t, err)
	require.False(t, first.Cached)

	second, err := svc.Chat(context.Background(), "  what IS a lathe?  ", nil)
	require.NoError(t, err)

	assert.True(t, second.Cached)
	assert.Equal(t, first.Answer, second.Answer)
	assert.Empty(t, second.QAID, "cache hits do not re-attach an interaction id")
	assert.Equal(t, 1, retriever.calls, "cache hit must skip retrieval")
	assert.Equal(t, 1, answerer.calls, "cache hit must skip generation")
	assert.Equal(t, 1, store.createCalls, "cache hit must not persist again")
}

func TestChatNoDataAnswerIsPersistedAndCached(t *testing.T) {
	retriever := &fakeRetriever{}
	answerer := &fakeAnswerer{answer: NoDataAnswer, noData: true}
	store := newFakeQAStore()
	svc := NewChatService(cache.NewMemory(), retriever, answerer, store, zap.NewNop())

	resp, err := svc.Chat(context.Background(), "unknown topic", nil)
	require.NoError(t, err)
	assert.True(t, resp.NoData)
	assert.Equal(t, NoDataAnswer, resp.Answer)
	assert.Equal(t, 1, store.createCalls)

	again, err := svc.Chat(context.Background(), "unknown topic", nil)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, NoDataAnswer, again.Answer)
}

func TestChatRetrieverErrorPropagates(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("embedding API error")}
	answerer := &fakeAnswerer{}
	store := newFakeQAStore()
	svc := NewChatService(cache.NewMemory(), retriever, answerer, store, zap.NewNop())

	_, err := svc.Chat(context.Background(), "question", nil)

	require.Error(t, err)
	assert.Equal(t, 0, answerer.calls)
	assert.Equal(t, 0, store.createCalls)
}

func TestChatPersistenceFailureDoesNotFailRequest(t *testing.T) {
	retriever := &fakeRetriever{chunks: oneChunk("context")}
	answerer := &fakeAnswerer{answer: "answer"}
	store := newFakeQAStore()
	store.createErr = errors.New("db down")
	svc := NewChatService(cache.NewMemory(), retriever, answerer, store, zap.NewNop())

	resp, err := svc.Chat(context.Background(), "question", nil)

	require.NoError(t, err)
	assert.Equal(t, "answer", resp.Answer)
	assert.Empty(t, resp.QAID)
}

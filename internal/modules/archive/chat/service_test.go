package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/linkmoa/core/internal/config"
	"github.com/linkmoa/core/internal/models"
	"github.com/linkmoa/core/internal/modules/processing/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.LinkModel{}, &models.ChatMessageModel{}))
	return db
}

func newTestService(t *testing.T, db *gorm.DB, aiCfg config.AIConfig) *Service {
	t.Helper()
	return NewService(db, ai.NewService(aiCfg, zap.NewNop()), zap.NewNop())
}

func seedItem(t *testing.T, db *gorm.DB, content string) *models.LinkModel {
	t.Helper()
	item := &models.LinkModel{
		UserID:   "u1",
		URL:      "https://example.com/doc",
		Title:    "Doc",
		Content:  content,
		Category: models.CategoryOther,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// fakeCompletions serves a fixed answer on the OpenAI-compatible path.
func fakeCompletions(t *testing.T, answer string) config.AIConfig {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": answer}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	return config.AIConfig{
		Providers: []config.AIProvider{{
			ID:       "test",
			Type:     "OpenAI-Compatible",
			APIKey:   "test-key",
			Endpoint: srv.URL,
			Enabled:  true,
		}},
	}
}

func countMessages(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.ChatMessageModel{}).Count(&count).Error)
	return count
}

func TestAskWithoutContentRecordsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, config.AIConfig{})
	item := seedItem(t, db, "")

	answer, err := svc.Ask(context.Background(), item.ID, "뭐라고 써있어?")
	require.NoError(t, err)

	assert.Equal(t, NoContentAnswer, answer)
	assert.Zero(t, countMessages(t, db))
}

func TestAskUnknownItemRecordsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, config.AIConfig{})

	answer, err := svc.Ask(context.Background(), 999, "질문")
	require.NoError(t, err)

	assert.Equal(t, NoContentAnswer, answer)
	assert.Zero(t, countMessages(t, db))
}

func TestAskRecordsQuestionAndAnswerPair(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, fakeCompletions(t, "요약하면 42입니다."))
	item := seedItem(t, db, "문서 본문 내용")

	answer, err := svc.Ask(context.Background(), item.ID, "정답은?")
	require.NoError(t, err)
	assert.Equal(t, "요약하면 42입니다.", answer)

	history, err := svc.History(item.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.SenderUser, history[0].Sender)
	assert.Equal(t, "정답은?", history[0].Message)
	assert.Equal(t, models.SenderAI, history[1].Sender)
	assert.Equal(t, "요약하면 42입니다.", history[1].Message)
}

func TestAskRecordsAIFailureAsAnswer(t *testing.T) {
	db := newTestDB(t)
	// No provider configured: the responder surfaces the failure inside the
	// answer text and the turn is still recorded.
	svc := newTestService(t, db, config.AIConfig{})
	item := seedItem(t, db, "문서 본문 내용")

	answer, err := svc.Ask(context.Background(), item.ID, "정답은?")
	require.NoError(t, err)

	assert.Contains(t, answer, "오류 발생:")
	assert.Equal(t, int64(2), countMessages(t, db))
}

func TestHistoryEmptyForUnknownItem(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, config.AIConfig{})

	history, err := svc.History(12345)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestHistoryChronologicalOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db, config.AIConfig{})
	item := seedItem(t, db, "본문")

	now := time.Now()
	later := models.ChatMessageModel{LinkID: item.ID, Sender: models.SenderAI, Message: "second"}
	later.CreatedAt = now.Add(time.Minute)
	earlier := models.ChatMessageModel{LinkID: item.ID, Sender: models.SenderUser, Message: "first"}
	earlier.CreatedAt = now
	require.NoError(t, db.Create(&later).Error)
	require.NoError(t, db.Create(&earlier).Error)

	history, err := svc.History(item.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first", history[0].Message)
	assert.Equal(t, "second", history[1].Message)
}

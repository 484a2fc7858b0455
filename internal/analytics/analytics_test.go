package analytics

import (
	"strings"
	"testing"
	"time"

	"goal-chatter/internal/storage"
)

func TestAnalyzeDailyLogs(t *testing.T) {
	// Тестовая дата
	testDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	events := []storage.Event{
		// События в целевой день
		{Timestamp: testDate.Add(2 * time.Hour), UserID: 123, Kind: storage.KindGoal, UserMessage: "Хочу бегать", AssistantResponse: "Цель сохранена"},
		{Timestamp: testDate.Add(4 * time.Hour), UserID: 123, Kind: storage.KindDialog, UserMessage: "Привет", AssistantResponse: "Привет!"},
		{Timestamp: testDate.Add(6 * time.Hour), UserID: 456, Kind: storage.KindQuestion, UserMessage: "Что такое Go?", AssistantResponse: "Ошибка", Failed: true},
		// Событие в другой день (не должно учитываться)
		{Timestamp: testDate.AddDate(0, 0, 1), UserID: 789, Kind: storage.KindQuestion, UserMessage: "Завтра", AssistantResponse: "Ответ"},
		// Пустое сообщение (не должно учитываться)
		{Timestamp: testDate.Add(8 * time.Hour), UserID: 123, AssistantResponse: "[system]"},
	}

	stats := AnalyzeDailyLogs(events, testDate)

	if stats.Date != "2024-01-15" {
		t.Errorf("Expected date '2024-01-15', got '%s'", stats.Date)
	}
	if stats.TotalMessages != 3 {
		t.Errorf("Expected 3 total messages, got %d", stats.TotalMessages)
	}
	if stats.UniqueUsers != 2 {
		t.Errorf("Expected 2 unique users, got %d", stats.UniqueUsers)
	}
	if stats.FailedReplies != 1 {
		t.Errorf("Expected 1 failed reply, got %d", stats.FailedReplies)
	}
	for kind, want := range map[storage.Kind]int{storage.KindGoal: 1, storage.KindDialog: 1, storage.KindQuestion: 1} {
		if stats.ByKind[kind] != want {
			t.Errorf("Expected %d %s events, got %d", want, kind, stats.ByKind[kind])
		}
	}

	user123, exists := stats.UserStats[123]
	if !exists {
		t.Fatal("Expected stats for user 123")
	}
	if user123.Messages != 2 || user123.ByKind[storage.KindGoal] != 1 {
		t.Errorf("Unexpected stats for user 123: %+v", user123)
	}
}

func TestAnalyzeDailyLogsEmptyData(t *testing.T) {
	testDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	stats := AnalyzeDailyLogs(nil, testDate)

	if stats.Date != "2024-01-15" {
		t.Errorf("Expected date '2024-01-15', got '%s'", stats.Date)
	}
	if stats.TotalMessages != 0 || stats.UniqueUsers != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
}

func TestGenerateReportSummary(t *testing.T) {
	stats := &DailyStats{
		Date:          "2024-01-15",
		TotalMessages: 5,
		UniqueUsers:   2,
		FailedReplies: 1,
		ByKind:        map[storage.Kind]int{storage.KindGoal: 2, storage.KindQuestion: 3},
		UserStats: map[int64]UserStats{
			123: {UserID: 123, Messages: 3},
			456: {UserID: 456, Messages: 2},
		},
	}

	summary := stats.GenerateReportSummary()

	for _, expected := range []string{
		"2024-01-15",
		"Всего сообщений: 5",
		"Уникальных пользователей: 2",
		"Целей сохранено: 2",
		"Ошибок ответа: 1",
		"Пользователь 123",
		"Пользователь 456",
	} {
		if !strings.Contains(summary, expected) {
			t.Errorf("Expected summary to contain '%s'. Summary: %s", expected, summary)
		}
	}
	if strings.Index(summary, "Пользователь 123") > strings.Index(summary, "Пользователь 456") {
		t.Errorf("Expected users sorted by id. Summary: %s", summary)
	}
}

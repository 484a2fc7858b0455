package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"goal-chatter/internal/storage"
)

// DailyStats содержит статистику за день
type DailyStats struct {
	Date          string               `json:"date"`
	TotalMessages int                  `json:"total_messages"`
	UniqueUsers   int                  `json:"unique_users"`
	FailedReplies int                  `json:"failed_replies"`
	ByKind        map[storage.Kind]int `json:"by_kind"`
	UserStats     map[int64]UserStats  `json:"user_stats"`
}

// UserStats содержит статистику по пользователю
type UserStats struct {
	UserID   int64                `json:"user_id"`
	Messages int                  `json:"messages"`
	ByKind   map[storage.Kind]int `json:"by_kind"`
}

// AnalyzeDailyLogs анализирует лог взаимодействий за указанную дату
func AnalyzeDailyLogs(events []storage.Event, targetDate time.Time) *DailyStats {
	// Нормализуем дату до начала дня
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:      startOfDay.Format("2006-01-02"),
		ByKind:    make(map[storage.Kind]int),
		UserStats: make(map[int64]UserStats),
	}

	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}
		// Пустые сообщения не учитываем
		if event.UserMessage == "" {
			continue
		}

		stats.TotalMessages++
		stats.ByKind[event.Kind]++
		if event.Failed {
			stats.FailedReplies++
		}

		userStat, exists := stats.UserStats[event.UserID]
		if !exists {
			userStat = UserStats{
				UserID: event.UserID,
				ByKind: make(map[storage.Kind]int),
			}
		}
		userStat.Messages++
		userStat.ByKind[event.Kind]++
		stats.UserStats[event.UserID] = userStat
	}

	stats.UniqueUsers = len(stats.UserStats)
	return stats
}

// GenerateReportSummary создает текстовый отчет для администратора
func (ds *DailyStats) GenerateReportSummary() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 Статистика за %s\n\n", ds.Date))
	sb.WriteString(fmt.Sprintf("Всего сообщений: %d\n", ds.TotalMessages))
	sb.WriteString(fmt.Sprintf("Уникальных пользователей: %d\n", ds.UniqueUsers))
	sb.WriteString(fmt.Sprintf("Целей сохранено: %d\n", ds.ByKind[storage.KindGoal]))
	sb.WriteString(fmt.Sprintf("Вопросов: %d\n", ds.ByKind[storage.KindQuestion]))
	sb.WriteString(fmt.Sprintf("Реплик в диалоге: %d\n", ds.ByKind[storage.KindDialog]))
	if ds.FailedReplies > 0 {
		sb.WriteString(fmt.Sprintf("Ошибок ответа: %d\n", ds.FailedReplies))
	}

	if len(ds.UserStats) > 0 {
		ids := make([]int64, 0, len(ds.UserStats))
		for id := range ds.UserStats {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		sb.WriteString(fmt.Sprintf("\nАктивность пользователей (%d):\n", len(ids)))
		for _, id := range ids {
			sb.WriteString(fmt.Sprintf("- Пользователь %d: %d сообщений\n", id, ds.UserStats[id].Messages))
		}
	}
	return sb.String()
}

package conversation

import "fmt"

const (
	msgNotConfigured = "❌ Модель не настроена. Проверьте OPENAI_API_KEY в настройках бота."
	msgEmptyResponse = "Не удалось получить ответ от модели."
	msgRequestFailed = "⚠️ Ошибка при запросе к модели. Попробуйте ещё раз чуть позже."
	msgTimeout       = "⏳ Модель слишком долго отвечает. Попробуйте ещё раз."
)

func goalSavedText(goal string) string {
	return fmt.Sprintf("🎯 Цель сохранена: «%s»\n\nЯ помогу тебе к ней прийти!", goal)
}

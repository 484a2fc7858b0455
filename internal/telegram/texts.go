package telegram

import (
	"fmt"
	"strings"
)

const (
	textHelp = "🧠 Я ассистент. Задавай любые вопросы — помогу по учебе, коду, идеям!\n\n" +
		"Расскажи о своей цели словами «хочу», «планирую», «цель», «буду» или «собираюсь», и я её запомню.\n\n" +
		"Команды: /start, /help, /goals"
	textAsk         = "💬 Напиши свой вопрос прямо сюда 👇\n\nЯ готов помочь с любыми вопросами!"
	textAddGoal     = "✍️ Напиши свою цель, например: «Хочу выучить английский до лета»."
	textNoGoals     = "🎯 У тебя пока нет целей. Напиши, чего ты хочешь добиться!"
	textDialogOn    = "🗣 Режим диалога включён. Я помню, о чём мы говорили.\n\nНажми «Назад», чтобы выйти."
	textDialogOff   = "↩️ Режим диалога выключен. Чем ещё помочь?"
	textUnknownCb   = "Неизвестная команда"
	textUnknownCmd  = "Не знаю такой команды. Попробуй /help"
	textDefaultName = "Пользователь"
)

func startText(name string) string {
	return fmt.Sprintf("Привет, %s! Я твой Telegram GPT-ассистент.", name)
}

func goalsText(goals []string) string {
	if len(goals) == 0 {
		return textNoGoals
	}
	var sb strings.Builder
	sb.WriteString("🎯 Твои цели:\n")
	for i, g := range goals {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, g))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// truncate shortens s to n runes for log lines.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

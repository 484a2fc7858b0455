package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Callback payloads of the inline buttons.
const (
	cbHelp    = "help"
	cbAsk     = "ask"
	cbGoals   = "goals"
	cbAddGoal = "add_goal"
	cbDialog  = "dialog"
	cbBack    = "back"
)

func mainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 Задать вопрос", cbAsk),
			tgbotapi.NewInlineKeyboardButtonData("🧠 Помощь", cbHelp),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Мои цели", cbGoals),
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить цель", cbAddGoal),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗣 Поговорить", cbDialog),
		),
	)
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("↩️ Назад", cbBack),
		),
	)
}

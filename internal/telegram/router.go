package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID
	log.Printf("📋 Command /%s from %d (@%s)", msg.Command(), userID, msg.From.UserName)

	switch msg.Command() {
	case "start":
		name := msg.From.FirstName
		if name == "" {
			name = textDefaultName
		}
		b.conv.Start(userID, name)
		kb := mainKeyboard()
		b.sendWithKeyboard(chatID, startText(name), &kb)
	case "help":
		b.sendMessage(chatID, textHelp)
	case "goals":
		b.sendMessage(chatID, goalsText(b.conv.Goals(userID)))
	default:
		b.sendMessage(chatID, textUnknownCmd)
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		b.answerCallback(cb.ID, "")
		return
	}
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	log.Printf("🔘 Callback %q from %d", cb.Data, userID)

	switch cb.Data {
	case cbHelp:
		b.answerCallback(cb.ID, "")
		b.editMessage(chatID, messageID, textHelp, nil)
	case cbAsk:
		b.answerCallback(cb.ID, "")
		b.editMessage(chatID, messageID, textAsk, nil)
	case cbGoals:
		b.answerCallback(cb.ID, "")
		kb := mainKeyboard()
		b.editMessage(chatID, messageID, goalsText(b.conv.Goals(userID)), &kb)
	case cbAddGoal:
		b.answerCallback(cb.ID, "")
		b.editMessage(chatID, messageID, textAddGoal, nil)
	case cbDialog:
		b.conv.EnterDialog(userID)
		b.answerCallback(cb.ID, "")
		kb := backKeyboard()
		b.editMessage(chatID, messageID, textDialogOn, &kb)
	case cbBack:
		b.conv.LeaveDialog(userID)
		b.answerCallback(cb.ID, "")
		kb := mainKeyboard()
		b.editMessage(chatID, messageID, textDialogOff, &kb)
	default:
		log.Printf("❓ Unknown callback: %q", cb.Data)
		b.answerCallback(cb.ID, textUnknownCb)
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("📨 Incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, truncate(msg.Text, 50))

	reply := b.conv.HandleText(ctx, msg.From.ID, msg.Text)
	if reply.Dialog {
		kb := backKeyboard()
		b.sendWithKeyboard(msg.Chat.ID, reply.Text, &kb)
		return
	}
	b.sendMessage(msg.Chat.ID, reply.Text)
}

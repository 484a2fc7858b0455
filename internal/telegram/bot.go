package telegram

import (
	"context"
	"log"
	"runtime/debug"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/semaphore"

	"goal-chatter/internal/analytics"
	"goal-chatter/internal/conversation"
	"goal-chatter/internal/errreport"
	"goal-chatter/internal/storage"
)

type Bot struct {
	api         *tgbotapi.BotAPI
	s           sender
	conv        *conversation.Controller
	recorder    storage.Recorder
	adminUserID int64

	sem         *semaphore.Weighted
	maxInFlight int64
}

// New connects to Telegram. maxInFlight bounds how many updates are handled
// at once; turns of the same user are still serialized by the controller.
func New(botToken string, conv *conversation.Controller, recorder storage.Recorder, adminUserID int64, maxInFlight int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	if maxInFlight <= 0 {
		maxInFlight = 1
	}
	log.Printf("🤖 Authorized on account @%s", api.Self.UserName)
	return &Bot{
		api:         api,
		s:           botAPISender{api: api},
		conv:        conv,
		recorder:    recorder,
		adminUserID: adminUserID,
		sem:         semaphore.NewWeighted(maxInFlight),
		maxInFlight: maxInFlight,
	}, nil
}

// Start polls for updates until ctx is cancelled, then waits for handlers
// that are still running.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query"}

	updates := b.api.GetUpdatesChan(u)
	log.Println("🚀 Bot started, waiting for messages...")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.drain()
			return
		case update, ok := <-updates:
			if !ok {
				b.drain()
				return
			}
			b.dispatch(ctx, update)
		}
	}
}

// dispatch runs the update in its own goroutine once a slot is free. The
// handler keeps ctx values but not its cancellation, so turns already in
// flight at shutdown can finish while drain waits.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) bool {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	handlerCtx := context.WithoutCancel(ctx)
	go func() {
		defer b.sem.Release(1)
		b.handleUpdate(handlerCtx, update)
	}()
	return true
}

func (b *Bot) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := b.sem.Acquire(ctx, b.maxInFlight); err != nil {
		log.Printf("⚠️ handlers still running at shutdown: %v", err)
		return
	}
	b.sem.Release(b.maxInFlight)
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ panic while handling update %d: %v\n%s", update.UpdateID, r, debug.Stack())
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		msg := update.Message
		if msg.From == nil || msg.Chat == nil {
			return
		}
		if msg.IsCommand() {
			b.handleCommand(msg)
			return
		}
		if msg.Text == "" {
			return
		}
		b.handleIncomingMessage(ctx, msg)
	}
}

// SendDailyReport sends today's usage statistics to the admin.
func (b *Bot) SendDailyReport(ctx context.Context) error {
	if b.adminUserID == 0 || b.recorder == nil {
		return nil
	}
	events, err := b.recorder.LoadInteractions()
	if err != nil {
		errreport.Capture(err, "report")
		return err
	}
	stats := analytics.AnalyzeDailyLogs(events, time.Now().UTC())
	b.sendMessage(b.adminUserID, stats.GenerateReportSummary())
	log.Printf("📊 Daily report sent to admin %d (%d messages)", b.adminUserID, stats.TotalMessages)
	return nil
}

func (b *Bot) sendMessage(chatID int64, text string) {
	b.sendWithKeyboard(chatID, text, nil)
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) editMessage(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	var edit tgbotapi.EditMessageTextConfig
	if kb != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *kb)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	if _, err := b.s.Send(edit); err != nil {
		log.Printf("failed to edit message: %v", err)
	}
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.s.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
}

// Package conversation decides what to do with every text message: store it
// as a goal, answer it as a standalone question or continue a dialog with
// memory.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"goal-chatter/internal/errreport"
	"goal-chatter/internal/llm"
	"goal-chatter/internal/state"
	"goal-chatter/internal/storage"
)

// Store is the part of the state store the controller needs.
type Store interface {
	Get(userID int64) state.UserRecord
	AppendGoal(userID int64, text string)
	AppendHistory(userID int64, role, text string)
	SetDialogMode(userID int64, enabled bool)
	SetName(userID int64, name string)
}

// Options are passed through to every completion request.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// Reply is what the transport should send back.
type Reply struct {
	Text string
	Kind storage.Kind
	// Dialog is set when the user is in dialog mode and the reply needs a
	// way back.
	Dialog bool
	// Failed marks replies that carry an error message instead of an answer.
	Failed bool
}

type Controller struct {
	store    Store
	llm      llm.Client
	recorder storage.Recorder
	opts     Options
	locks    *userLocks
	now      func() time.Time
}

// New builds a controller. recorder may be nil.
func New(store Store, client llm.Client, recorder storage.Recorder, opts Options) *Controller {
	if client == nil {
		client = llm.NotConfigured{}
	}
	return &Controller{
		store:    store,
		llm:      client,
		recorder: recorder,
		opts:     opts,
		locks:    newUserLocks(),
		now:      time.Now,
	}
}

// Start registers the user and remembers their display name.
func (c *Controller) Start(userID int64, name string) {
	unlock := c.locks.lock(userID)
	defer unlock()
	c.store.SetName(userID, name)
}

func (c *Controller) EnterDialog(userID int64) {
	unlock := c.locks.lock(userID)
	defer unlock()
	c.store.SetDialogMode(userID, true)
}

func (c *Controller) LeaveDialog(userID int64) {
	unlock := c.locks.lock(userID)
	defer unlock()
	c.store.SetDialogMode(userID, false)
}

func (c *Controller) Goals(userID int64) []string {
	unlock := c.locks.lock(userID)
	defer unlock()
	return c.store.Get(userID).Goals
}

// HandleText routes one free-text message. It never fails: completion errors
// become the reply text.
func (c *Controller) HandleText(ctx context.Context, userID int64, text string) Reply {
	unlock := c.locks.lock(userID)
	defer unlock()

	var reply Reply
	switch rec := c.store.Get(userID); {
	case rec.DialogMode:
		reply = c.dialogTurn(ctx, userID, text)
	case IsGoal(text):
		c.store.AppendGoal(userID, text)
		reply = Reply{Text: goalSavedText(text), Kind: storage.KindGoal}
	default:
		reply = c.question(ctx, userID, text)
	}

	c.record(userID, text, reply)
	return reply
}

func (c *Controller) question(ctx context.Context, userID int64, text string) Reply {
	msgs := []llm.Message{
		llm.SystemMessage(llm.GoalHelperPersona),
		{Role: llm.RoleUser, Content: text},
	}
	answer, err := c.complete(ctx, userID, msgs)
	if err != nil {
		return Reply{Text: errorText(err), Kind: storage.KindQuestion, Failed: true}
	}
	return Reply{Text: answer, Kind: storage.KindQuestion}
}

func (c *Controller) dialogTurn(ctx context.Context, userID int64, text string) Reply {
	c.store.AppendHistory(userID, llm.RoleUser, text)

	// history already ends with the new turn
	hist := c.store.Get(userID).ChatHistory
	msgs := make([]llm.Message, 0, len(hist)+1)
	msgs = append(msgs, llm.SystemMessage(llm.DialogPersona))
	msgs = append(msgs, hist...)

	answer, err := c.complete(ctx, userID, msgs)
	if err != nil {
		return Reply{Text: errorText(err), Kind: storage.KindDialog, Dialog: true, Failed: true}
	}
	c.store.AppendHistory(userID, llm.RoleAssistant, answer)
	return Reply{Text: answer, Kind: storage.KindDialog, Dialog: true}
}

func (c *Controller) complete(ctx context.Context, userID int64, msgs []llm.Message) (string, error) {
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	log.Printf("🔄 Sending %d messages to LLM for user %d", len(msgs), userID)
	resp, err := c.generate(ctx, llm.Request{
		Messages:    msgs,
		Model:       c.opts.Model,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
	})
	if err != nil {
		log.Printf("❌ LLM request failed for user %d: %v", userID, err)
		if !errors.Is(err, llm.ErrNotConfigured) {
			errreport.Capture(err, "llm")
		}
		return "", err
	}
	log.Printf("✅ LLM response [model=%s, tokens: prompt=%d, completion=%d, total=%d]",
		resp.Model, resp.PromptTokens, resp.CompletionTokens, resp.TotalTokens)
	return resp.Content, nil
}

// generate turns a panicking client into an ordinary error.
func (c *Controller) generate(ctx context.Context, req llm.Request) (resp llm.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("llm client panic: %v", r)
		}
	}()
	return c.llm.Generate(ctx, req)
}

func (c *Controller) record(userID int64, text string, reply Reply) {
	if c.recorder == nil {
		return
	}
	ev := storage.Event{
		Timestamp:         c.now().UTC(),
		UserID:            userID,
		Kind:              reply.Kind,
		UserMessage:       text,
		AssistantResponse: reply.Text,
		Failed:            reply.Failed,
	}
	if err := c.recorder.AppendInteraction(ev); err != nil {
		log.Printf("⚠️ failed to record interaction: %v", err)
	}
}

func errorText(err error) string {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return msgNotConfigured
	case errors.Is(err, llm.ErrEmptyResponse):
		return msgEmptyResponse
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	default:
		return msgRequestFailed
	}
}

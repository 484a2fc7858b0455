package history

import (
	"fmt"
	"testing"

	"goal-chatter/internal/llm"
)

func TestLogAppendAndCopy(t *testing.T) {
	h := New(DefaultLimit)
	h.AppendUser("hello")
	h.AppendAssistant("hi")

	msgs := h.Messages()
	if len(msgs) != 2 {
		t.Fatalf("unexpected length: %d", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[0].Content != "hello" {
		t.Fatalf("unexpected [0]: %+v", msgs[0])
	}
	if msgs[1].Role != "assistant" || msgs[1].Content != "hi" {
		t.Fatalf("unexpected [1]: %+v", msgs[1])
	}

	// Ensure copy semantics (modifying returned slice does not affect internal state)
	msgs[0] = llm.Message{Role: "user", Content: "mutated"}
	if h.Messages()[0].Content != "hello" {
		t.Fatalf("internal state mutated via returned slice")
	}
}

func TestLogEvictsOldestFirst(t *testing.T) {
	h := New(20)
	for i := 0; i < 55; i++ {
		h.AppendUser(fmt.Sprintf("m%d", i))
		if h.Len() > 20 {
			t.Fatalf("length %d exceeds cap after append %d", h.Len(), i)
		}
	}
	msgs := h.Messages()
	if len(msgs) != 20 {
		t.Fatalf("want 20, got %d", len(msgs))
	}
	for i, m := range msgs {
		if want := fmt.Sprintf("m%d", 35+i); m.Content != want {
			t.Fatalf("position %d: want %s, got %s", i, want, m.Content)
		}
	}
}

func TestTrim(t *testing.T) {
	var msgs []llm.Message
	for i := 0; i < 12; i++ {
		msgs = append(msgs, llm.Message{Role: "user", Content: fmt.Sprint(i)})
	}
	out := Trim(msgs, 10)
	if len(out) != 10 || out[0].Content != "2" || out[9].Content != "11" {
		t.Fatalf("unexpected trim result: %+v", out)
	}
}

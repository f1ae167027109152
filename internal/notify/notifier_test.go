package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dmarkhas/gameshop/internal/domain/model"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []string
	err  error
	done chan struct{}
}

func (s *recordingSender) Send(_ context.Context, recipient, subject, _ string) error {
	s.mu.Lock()
	s.sent = append(s.sent, recipient+"/"+subject)
	s.mu.Unlock()
	if s.done != nil {
		s.done <- struct{}{}
	}
	return s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNotifierDeliversOrderConfirmation(t *testing.T) {
	sender := &recordingSender{done: make(chan struct{}, 1)}
	notifier := NewNotifier(sender, 4, discardLogger())
	notifier.Start(context.Background())
	t.Cleanup(notifier.Stop)

	notifier.OrderConfirmation(&model.User{Email: "buyer@example.com"}, &model.Order{ID: 17})

	select {
	case <-sender.done:
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 1 || sender.sent[0] != "buyer@example.com/Order nr. 17" {
		t.Fatalf("unexpected deliveries: %v", sender.sent)
	}
}

func TestNotifierSurvivesSenderFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down"), done: make(chan struct{}, 2)}
	notifier := NewNotifier(sender, 4, discardLogger())
	notifier.Start(context.Background())
	t.Cleanup(notifier.Stop)

	notifier.OrderConfirmation(&model.User{Email: "a@example.com"}, &model.Order{ID: 1})
	notifier.OrderConfirmation(&model.User{Email: "b@example.com"}, &model.Order{ID: 2})

	for i := 0; i < 2; i++ {
		select {
		case <-sender.done:
		case <-time.After(time.Second):
			t.Fatal("worker stopped after delivery failure")
		}
	}
}

func TestNotifierEnqueueNeverBlocks(t *testing.T) {
	// Worker not started: the queue fills and further messages are dropped.
	notifier := NewNotifier(&recordingSender{}, 1, discardLogger())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			notifier.OrderConfirmation(&model.User{Email: "x@example.com"}, &model.Order{ID: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}
}

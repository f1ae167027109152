package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmarkhas/gameshop/internal/domain/model"
)

// Sender delivers a single message to a recipient. Actual transport (SMTP,
// webhook) lives outside this package.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// LogSender writes notifications to the log. It stands in for a real mail
// backend in environments without one.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(_ context.Context, recipient, subject, body string) error {
	s.Logger.Info("notification",
		slog.String("recipient", recipient),
		slog.String("subject", subject),
		slog.String("body", body),
	)
	return nil
}

type message struct {
	recipient string
	subject   string
	body      string
}

// Notifier dispatches notifications out-of-band. Enqueue never blocks the
// caller and a failed delivery never propagates back: confirmations are
// strictly fire-and-forget relative to checkout.
type Notifier struct {
	sender Sender
	logger *slog.Logger

	queue  chan message
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotifier constructs a notifier with the given queue capacity.
func NewNotifier(sender Sender, queueSize int, logger *slog.Logger) *Notifier {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Notifier{
		sender: sender,
		logger: logger,
		queue:  make(chan message, queueSize),
	}
}

// Start launches background delivery.
func (n *Notifier) Start(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel

	n.wg.Add(1)
	go n.run(runCtx)
}

// Stop drains in-flight deliveries and waits for the worker to exit.
func (n *Notifier) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.mu.Unlock()

	n.wg.Wait()
}

// OrderConfirmation enqueues the "order placed" notification for the user.
func (n *Notifier) OrderConfirmation(user *model.User, order *model.Order) {
	subject := fmt.Sprintf("Order nr. %d", order.ID)
	body := fmt.Sprintf("You have successfully placed an order.\nYour order ID is %d", order.ID)
	n.enqueue(message{recipient: user.Email, subject: subject, body: body})
}

func (n *Notifier) enqueue(msg message) {
	select {
	case n.queue <- msg:
	default:
		// Dropping beats blocking a request: the queue is sized for bursts.
		n.logger.Warn("notification queue full, dropping message", slog.String("recipient", msg.recipient))
	}
}

func (n *Notifier) run(ctx context.Context) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-n.queue:
			if err := n.sender.Send(ctx, msg.recipient, msg.subject, msg.body); err != nil {
				n.logger.Error("notification delivery failed",
					slog.String("recipient", msg.recipient),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

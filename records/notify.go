package records

import (
	"context"

	"go.uber.org/zap"

	"github.com/parsa000721/records/logging"
)

// DeletePrompt is the question put to the user before a record is removed
const DeletePrompt = "क्या आप वाकई इस प्रकरण को हटाना चाहते हैं?"

// Confirmer answers a yes/no question at the user boundary
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer
type ConfirmFunc func(ctx context.Context, prompt string) bool

// Confirm calls f(ctx, prompt)
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Notifier is told about persistence failures. Failures never reach the caller.
type Notifier interface {
	LoadFailed(err error)
	SaveFailed(err error)
}

type logNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier returns a Notifier that logs through zap
func NewLogNotifier() Notifier {
	return &logNotifier{log: logging.Named("records")}
}

func (n *logNotifier) LoadFailed(err error) {
	n.log.Errorw("failed to load case records, starting with an empty collection", "error", err)
}

func (n *logNotifier) SaveFailed(err error) {
	n.log.Errorw("failed to save case records", "error", err)
}

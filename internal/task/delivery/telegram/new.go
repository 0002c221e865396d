package telegram

import (
	"fmt"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"taskbuddy/internal/nlu"
	"taskbuddy/internal/task"
	pkgLog "taskbuddy/pkg/log"
	pkgTelegram "taskbuddy/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type pendingOp string

const (
	pendingComplete pendingOp = "complete"
	pendingDelete   pendingOp = "delete"
)

// pendingSelection remembers the candidates offered to a chat after an
// ambiguous complete/delete, until the user answers with a number.
type pendingSelection struct {
	op      pendingOp
	taskIDs []string
	labels  []string
}

// pendingCacheSize bounds memory per process; old selections are simply
// evicted and the user gets a fresh disambiguation prompt.
const pendingCacheSize = 512

type handler struct {
	l       pkgLog.Logger
	interp  nlu.Interpreter
	uc      task.UseCase
	bot     *pkgTelegram.Bot
	pending *lru.Cache[int64, pendingSelection]
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	interp nlu.Interpreter,
	uc task.UseCase,
	bot *pkgTelegram.Bot,
) (Handler, error) {
	pending, err := lru.New[int64, pendingSelection](pendingCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create pending selection cache: %w", err)
	}
	return &handler{
		l:       l,
		interp:  interp,
		uc:      uc,
		bot:     bot,
		pending: pending,
	}, nil
}

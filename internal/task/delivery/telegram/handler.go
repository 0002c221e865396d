package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taskbuddy/internal/model"
	"taskbuddy/internal/router"
	"taskbuddy/internal/task"
	pkgResponse "taskbuddy/pkg/response"
	pkgTelegram "taskbuddy/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an answer within a few seconds and
// retries the update otherwise.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on
	// the gin context.
	msg := update.Message

	go func() {
		// Detach from the request context, which is cancelled after the
		// response is written.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong handling that. Please try again!")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" || msg.From == nil || msg.Chat == nil {
		return nil
	}
	chatID := msg.Chat.ID

	switch text {
	case "/start":
		return h.bot.SendMessage(chatID, welcomeMessage)
	case "/help":
		return h.bot.SendMessage(chatID, helpMessage)
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	if isGreeting(text) {
		return h.bot.SendMessage(chatID, pickReply(greetingReplies))
	}

	// A bare number answers an earlier disambiguation prompt.
	if selection, ok := h.pending.Get(chatID); ok {
		if choice, err := strconv.Atoi(text); err == nil {
			return h.resolveSelection(ctx, sc, chatID, selection, choice)
		}
	}

	if isFarewell(text) {
		return h.bot.SendMessage(chatID, pickReply(farewellReplies))
	}

	h.bot.SendTyping(chatID)

	referenceTime := time.Unix(msg.Date, 0).UTC()
	if msg.Date == 0 {
		referenceTime = time.Now().UTC()
	}

	intent := h.interp.Interpret(ctx, text, referenceTime)
	h.l.Infof(ctx, "telegram handler: intent=%s confidence=%d user=%s", intent.Kind, intent.Confidence, sc.UserID)

	switch intent.Kind {
	case router.IntentAdd:
		return h.handleAdd(ctx, sc, chatID, intent.Description, intent.Deadline, string(intent.Difficulty))
	case router.IntentList:
		out, err := h.uc.List(ctx, sc)
		if err != nil {
			return h.bot.SendMessage(chatID, userMessage(err, ""))
		}
		return h.bot.SendMessage(chatID, formatTasks(out.Tasks, referenceTime))
	case router.IntentQueryDue:
		if intent.DueScope == nil {
			out, err := h.uc.List(ctx, sc)
			if err != nil {
				return h.bot.SendMessage(chatID, userMessage(err, ""))
			}
			return h.bot.SendMessage(chatID, formatTasks(out.Tasks, referenceTime))
		}
		out, err := h.uc.QueryDue(ctx, sc, *intent.DueScope)
		if err != nil {
			return h.bot.SendMessage(chatID, userMessage(err, ""))
		}
		return h.bot.SendMessage(chatID, formatTasks(out.Tasks, referenceTime))
	case router.IntentComplete:
		return h.handleMatch(ctx, sc, chatID, intent.Description, pendingComplete)
	case router.IntentDelete:
		return h.handleMatch(ctx, sc, chatID, intent.Description, pendingDelete)
	}

	return nil
}

func (h *handler) handleAdd(ctx context.Context, sc model.Scope, chatID int64, description string, deadline *time.Time, difficulty string) error {
	created, err := h.uc.Add(ctx, sc, task.AddInput{
		Description: description,
		Deadline:    deadline,
		Difficulty:  difficulty,
		ChatID:      chatID,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Add failed: %v", err)
		return h.bot.SendMessage(chatID, userMessage(err, description))
	}
	return h.bot.SendMessage(chatID, formatAdded(created))
}

// handleMatch runs a description-based complete or delete. A single match
// is acted on directly; several matches become a numbered prompt whose
// answer resolveSelection picks up.
func (h *handler) handleMatch(ctx context.Context, sc model.Scope, chatID int64, description string, op pendingOp) error {
	input := task.MatchInput{Description: description}

	var out task.MatchOutput
	var err error
	if op == pendingComplete {
		out, err = h.uc.Complete(ctx, sc, input)
	} else {
		out, err = h.uc.Delete(ctx, sc, input)
	}
	if err != nil {
		if !errors.Is(err, task.ErrNoMatch) && !errors.Is(err, task.ErrEmptyDescription) {
			h.l.Errorf(ctx, "telegram handler: %s failed: %v", op, err)
		}
		return h.bot.SendMessage(chatID, userMessage(err, description))
	}

	if out.Resolved != nil {
		h.pending.Remove(chatID)
		if op == pendingComplete {
			return h.bot.SendMessage(chatID, completionReply(out.Resolved.Description))
		}
		return h.bot.SendMessage(chatID, fmt.Sprintf("Task '%s' has been deleted from your list.", out.Resolved.Description))
	}

	selection := pendingSelection{op: op}
	for _, candidate := range out.Candidates {
		selection.taskIDs = append(selection.taskIDs, candidate.ID)
		selection.labels = append(selection.labels, candidate.Description)
	}
	h.pending.Add(chatID, selection)

	return h.bot.SendMessage(chatID, formatCandidates(op, out.Candidates))
}

func (h *handler) resolveSelection(ctx context.Context, sc model.Scope, chatID int64, selection pendingSelection, choice int) error {
	if choice < 1 || choice > len(selection.taskIDs) {
		return h.bot.SendMessage(chatID, "Invalid number. Please try again.")
	}

	id := selection.taskIDs[choice-1]
	label := selection.labels[choice-1]

	var err error
	if selection.op == pendingComplete {
		_, err = h.uc.CompleteByID(ctx, sc, id)
	} else {
		_, err = h.uc.DeleteByID(ctx, sc, id)
	}
	if err != nil {
		h.pending.Remove(chatID)
		if errors.Is(err, task.ErrNotFound) {
			return h.bot.SendMessage(chatID, "That task is gone already. Send the request again if something is off!")
		}
		h.l.Errorf(ctx, "telegram handler: %s by id failed: %v", selection.op, err)
		return h.bot.SendMessage(chatID, userMessage(err, label))
	}

	h.pending.Remove(chatID)
	if selection.op == pendingComplete {
		return h.bot.SendMessage(chatID, fmt.Sprintf("Great job! Task '%s' has been marked as completed.", label))
	}
	return h.bot.SendMessage(chatID, fmt.Sprintf("Task '%s' has been deleted from your list.", label))
}

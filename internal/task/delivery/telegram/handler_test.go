package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskbuddy/internal/model"
	"taskbuddy/internal/nlu"
	"taskbuddy/internal/router"
	"taskbuddy/internal/task"
	"taskbuddy/internal/task/delivery/telegram"
	pkgTelegram "taskbuddy/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockInterpreter struct {
	intent nlu.TaskIntent
}

func (m *mockInterpreter) Interpret(ctx context.Context, utterance string, referenceTime time.Time) nlu.TaskIntent {
	return m.intent
}

type mockUseCase struct {
	mu sync.Mutex

	addOutput   model.Task
	addErr      error
	addCalls    []task.AddInput
	listOutput  task.ListOutput
	queryOutput task.ListOutput
	matchOutput task.MatchOutput
	matchErr    error
	byIDOutput  model.Task
	byIDErr     error
	byIDCalls   []string
}

func (m *mockUseCase) Add(ctx context.Context, sc model.Scope, input task.AddInput) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls = append(m.addCalls, input)
	return m.addOutput, m.addErr
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	return m.listOutput, nil
}

func (m *mockUseCase) QueryDue(ctx context.Context, sc model.Scope, until time.Time) (task.ListOutput, error) {
	return m.queryOutput, nil
}

func (m *mockUseCase) Complete(ctx context.Context, sc model.Scope, input task.MatchInput) (task.MatchOutput, error) {
	return m.matchOutput, m.matchErr
}

func (m *mockUseCase) CompleteByID(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byIDCalls = append(m.byIDCalls, "complete:"+id)
	return m.byIDOutput, m.byIDErr
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, input task.MatchInput) (task.MatchOutput, error) {
	return m.matchOutput, m.matchErr
}

func (m *mockUseCase) DeleteByID(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byIDCalls = append(m.byIDCalls, "delete:"+id)
	return m.byIDOutput, m.byIDErr
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine *gin.Engine
	muc    *mockUseCase
	interp *mockInterpreter

	mu       sync.Mutex
	messages []string
}

func (env *testEnv) captured() []string {
	env.mu.Lock()
	defer env.mu.Unlock()
	return append([]string(nil), env.messages...)
}

// waitForMessages polls until the background goroutine has sent n messages.
func (env *testEnv) waitForMessages(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if msgs := env.captured(); len(msgs) >= n {
			return msgs
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d messages, got %v", n, env.captured())
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		muc:    &mockUseCase{},
		interp: &mockInterpreter{},
	}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				env.mu.Lock()
				env.messages = append(env.messages, text)
				env.mu.Unlock()
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	h, err := telegram.New(&mockLogger{}, env.interp, env.muc, bot)
	if err != nil {
		t.Fatalf("failed to create handler: %v", err)
	}

	env.engine = gin.New()
	env.engine.POST("/webhook/telegram", h.HandleWebhook)
	return env
}

func (env *testEnv) postMessage(t *testing.T, text string) *httptest.ResponseRecorder {
	t.Helper()
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			From:      &pkgTelegram.User{ID: 7, Username: "tester"},
			Chat:      &pkgTelegram.Chat{ID: 42, Type: "private"},
			Date:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC).Unix(),
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	env.engine.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhookBadJSON(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader("{not json"))
	env.engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhookIgnoresNonMessage(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(`{"update_id": 5}`))
	env.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("expected ignored status, got %s", w.Body.String())
	}
}

func TestStartCommand(t *testing.T) {
	env := newTestEnv(t)

	w := env.postMessage(t, "/start")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	msgs := env.waitForMessages(t, 1)
	if !strings.Contains(msgs[0], "task buddy") {
		t.Errorf("unexpected welcome message: %s", msgs[0])
	}
}

func TestGreetingShortCircuitsPipeline(t *testing.T) {
	env := newTestEnv(t)
	// Would be classified as ADD if it reached the pipeline.
	env.interp.intent = nlu.TaskIntent{Kind: router.IntentAdd, Description: "hello"}

	env.postMessage(t, "hello")
	msgs := env.waitForMessages(t, 1)

	env.muc.mu.Lock()
	addCalls := len(env.muc.addCalls)
	env.muc.mu.Unlock()
	if addCalls != 0 {
		t.Errorf("greeting reached the use case")
	}
	if msgs[0] == "" {
		t.Error("expected a greeting reply")
	}
}

func TestFarewell(t *testing.T) {
	env := newTestEnv(t)

	env.postMessage(t, "bye!")
	msgs := env.waitForMessages(t, 1)
	if msgs[0] == "" {
		t.Error("expected a farewell reply")
	}
}

func TestAddFlow(t *testing.T) {
	env := newTestEnv(t)

	deadline := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)
	env.interp.intent = nlu.TaskIntent{
		Kind:        router.IntentAdd,
		Description: "finish the report",
		Deadline:    &deadline,
		Difficulty:  "medium",
	}
	env.muc.addOutput = model.Task{
		Description: "finish the report",
		Deadline:    &deadline,
		Difficulty:  "medium",
	}

	env.postMessage(t, "I need to finish the report by tomorrow at 5pm")
	msgs := env.waitForMessages(t, 1)

	env.muc.mu.Lock()
	addCalls := append([]task.AddInput(nil), env.muc.addCalls...)
	env.muc.mu.Unlock()
	if len(addCalls) != 1 {
		t.Fatalf("expected 1 Add call, got %d", len(addCalls))
	}
	got := addCalls[0]
	if got.Description != "finish the report" || got.ChatID != 42 {
		t.Errorf("unexpected AddInput: %+v", got)
	}
	if !strings.Contains(msgs[0], "Task added: finish the report") {
		t.Errorf("unexpected reply: %s", msgs[0])
	}
	if !strings.Contains(msgs[0], "2024-01-02 17:00") {
		t.Errorf("reply missing deadline: %s", msgs[0])
	}
}

func TestListFlow(t *testing.T) {
	env := newTestEnv(t)

	due := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)
	env.interp.intent = nlu.TaskIntent{Kind: router.IntentList}
	env.muc.listOutput = task.ListOutput{Tasks: []model.Task{
		{Description: "finish the report", Deadline: &due, Difficulty: "hard"},
		{Description: "buy milk", Difficulty: "easy"},
	}}

	env.postMessage(t, "show my tasks")
	msgs := env.waitForMessages(t, 1)

	reply := msgs[0]
	if !strings.Contains(reply, "finish the report") || !strings.Contains(reply, "buy milk") {
		t.Errorf("reply missing tasks: %s", reply)
	}
	// Message date is Jan 1, deadline Jan 2.
	if !strings.Contains(reply, "Due tomorrow!") {
		t.Errorf("reply missing countdown: %s", reply)
	}
	if !strings.Contains(reply, "challenging") {
		t.Errorf("reply missing difficulty flavor: %s", reply)
	}
}

func TestListFlowEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.interp.intent = nlu.TaskIntent{Kind: router.IntentList}

	env.postMessage(t, "show my tasks")
	msgs := env.waitForMessages(t, 1)
	if !strings.Contains(msgs[0], "schedule is clear") {
		t.Errorf("unexpected empty-list reply: %s", msgs[0])
	}
}

func TestCompleteSingleMatch(t *testing.T) {
	env := newTestEnv(t)

	resolved := model.Task{ID: "t1", Description: "python assignment", Status: model.TaskStatusDone}
	env.interp.intent = nlu.TaskIntent{Kind: router.IntentComplete, Description: "python assignment"}
	env.muc.matchOutput = task.MatchOutput{Resolved: &resolved}

	env.postMessage(t, "I've completed the python assignment")
	msgs := env.waitForMessages(t, 1)
	if !strings.Contains(msgs[0], "python assignment") {
		t.Errorf("unexpected completion reply: %s", msgs[0])
	}
}

func TestCompleteNoMatch(t *testing.T) {
	env := newTestEnv(t)

	env.interp.intent = nlu.TaskIntent{Kind: router.IntentComplete, Description: "python assignment"}
	env.muc.matchErr = task.ErrNoMatch

	env.postMessage(t, "I've completed the python assignment")
	msgs := env.waitForMessages(t, 1)
	if !strings.Contains(msgs[0], "No tasks found matching 'python assignment'") {
		t.Errorf("unexpected reply: %s", msgs[0])
	}
}

func TestCompleteDisambiguation(t *testing.T) {
	env := newTestEnv(t)

	env.interp.intent = nlu.TaskIntent{Kind: router.IntentComplete, Description: "finish"}
	env.muc.matchOutput = task.MatchOutput{Candidates: []model.Task{
		{ID: "t1", Description: "finish the essay"},
		{ID: "t2", Description: "finish the report"},
	}}

	env.postMessage(t, "I finished it")
	msgs := env.waitForMessages(t, 1)
	if !strings.Contains(msgs[0], "1. finish the essay") || !strings.Contains(msgs[0], "2. finish the report") {
		t.Fatalf("unexpected disambiguation prompt: %s", msgs[0])
	}

	// Out-of-range answer keeps the selection alive.
	env.postMessage(t, "9")
	msgs = env.waitForMessages(t, 2)
	if !strings.Contains(msgs[1], "Invalid number") {
		t.Fatalf("unexpected reply to bad choice: %s", msgs[1])
	}

	env.muc.byIDOutput = model.Task{ID: "t2", Description: "finish the report", Status: model.TaskStatusDone}
	env.postMessage(t, "2")
	msgs = env.waitForMessages(t, 3)
	if !strings.Contains(msgs[2], "finish the report") {
		t.Errorf("unexpected resolution reply: %s", msgs[2])
	}

	env.muc.mu.Lock()
	byIDCalls := append([]string(nil), env.muc.byIDCalls...)
	env.muc.mu.Unlock()
	if len(byIDCalls) != 1 || byIDCalls[0] != "complete:t2" {
		t.Errorf("unexpected byID calls: %v", byIDCalls)
	}
}

func TestDeleteFlow(t *testing.T) {
	env := newTestEnv(t)

	resolved := model.Task{ID: "t1", Description: "math homework"}
	env.interp.intent = nlu.TaskIntent{Kind: router.IntentDelete, Description: "math homework"}
	env.muc.matchOutput = task.MatchOutput{Resolved: &resolved}

	env.postMessage(t, "delete the math homework")
	msgs := env.waitForMessages(t, 1)
	if !strings.Contains(msgs[0], "Task 'math homework' has been deleted") {
		t.Errorf("unexpected delete reply: %s", msgs[0])
	}
}

func TestQueryDueFlow(t *testing.T) {
	env := newTestEnv(t)

	scope := time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC)
	due := time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC)
	env.interp.intent = nlu.TaskIntent{Kind: router.IntentQueryDue, DueScope: &scope}
	env.muc.queryOutput = task.ListOutput{Tasks: []model.Task{
		{Description: "finish the report", Deadline: &due, Difficulty: "medium"},
	}}

	env.postMessage(t, "what's due this week")
	msgs := env.waitForMessages(t, 1)
	if !strings.Contains(msgs[0], "finish the report") {
		t.Errorf("unexpected query reply: %s", msgs[0])
	}
	if !strings.Contains(msgs[0], fmt.Sprintf("You've got %d days", 4)) {
		t.Errorf("reply missing countdown: %s", msgs[0])
	}
}

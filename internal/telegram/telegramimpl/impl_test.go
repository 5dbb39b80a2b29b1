package telegramimpl

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/x-relay-telegram-bot/internal/telegram"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/x-relay-telegram-bot/pkg/errors"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
)

const testToken = "123456:SECRET-TOKEN"

type apiCall struct {
	method string
	form   map[string]string
	files  []string
}

// fakeBotAPI answers Bot API requests and records them.
type fakeBotAPI struct {
	mu    sync.Mutex
	calls []apiCall
	fail  map[string]bool
	reset map[string]bool
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(r.URL.Path, "/")
	method := parts[len(parts)-1]

	call := apiCall{method: method, form: map[string]string{}}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			for k, v := range r.MultipartForm.Value {
				call.form[k] = v[0]
			}
			for k := range r.MultipartForm.File {
				call.files = append(call.files, k)
			}
		}
	} else if err := r.ParseForm(); err == nil {
		for k, v := range r.PostForm {
			call.form[k] = v[0]
		}
	}

	f.mu.Lock()
	if method != "getMe" {
		f.calls = append(f.calls, call)
	}
	fail := f.fail[method]
	reset := f.reset[method]
	f.mu.Unlock()

	if reset {
		conn, _, err := w.(http.Hijacker).Hijack()
		if err == nil {
			conn.Close()
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case fail:
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: wrong file"}`))
	case method == "getMe":
		w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"relay","username":"relay_bot"}}`))
	case method == "sendMediaGroup":
		w.Write([]byte(`{"ok":true,"result":[{"message_id":10,"chat":{"id":5}},{"message_id":11,"chat":{"id":5}}]}`))
	default:
		w.Write([]byte(`{"ok":true,"result":{"message_id":42,"chat":{"id":5}}}`))
	}
}

func newTestTelegram(t *testing.T) (*TelegramImpl, *fakeBotAPI) {
	t.Helper()
	api := &fakeBotAPI{fail: map[string]bool{}, reset: map[string]bool{}}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	bot, err := tgbotapi.NewBotAPIWithClient(testToken, server.URL+"/bot%s/%s", server.Client())
	if err != nil {
		t.Fatalf("NewBotAPIWithClient: %v", err)
	}

	return &TelegramImpl{TgBot: bot, Logger: logger.NewNop(), Config: &config.Config{}}, api
}

func (f *fakeBotAPI) lastCall(t *testing.T) apiCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("no API calls recorded")
	}
	return f.calls[len(f.calls)-1]
}

func TestSendHTMLMessage(t *testing.T) {
	tg, api := newTestTelegram(t)

	id, err := tg.SendHTMLMessage(5, " <b>Twitter/X</b>", &telegram.Button{Text: "Открыть твит", URL: "https://x.com/a/status/1"})
	if err != nil {
		t.Fatalf("SendHTMLMessage() error = %v", err)
	}
	if id != 42 {
		t.Errorf("message id = %d, want 42", id)
	}

	call := api.lastCall(t)
	if call.method != "sendMessage" {
		t.Fatalf("method = %q, want sendMessage", call.method)
	}
	if call.form["parse_mode"] != "HTML" {
		t.Errorf("parse_mode = %q, want HTML", call.form["parse_mode"])
	}
	if call.form["text"] != " <b>Twitter/X</b>" {
		t.Errorf("text = %q", call.form["text"])
	}
	if call.form["disable_web_page_preview"] == "true" {
		t.Error("link preview should stay enabled")
	}

	var markup tgbotapi.InlineKeyboardMarkup
	if err := json.Unmarshal([]byte(call.form["reply_markup"]), &markup); err != nil {
		t.Fatalf("reply_markup: %v", err)
	}
	btn := markup.InlineKeyboard[0][0]
	if btn.Text != "Открыть твит" || btn.URL == nil || *btn.URL != "https://x.com/a/status/1" {
		t.Errorf("button = %+v", btn)
	}
}

func TestSendMessage_Error(t *testing.T) {
	tg, api := newTestTelegram(t)
	api.fail["sendMessage"] = true

	_, err := tg.SendMessage(5, "hi")
	if err == nil {
		t.Fatal("SendMessage() expected error")
	}
	if apperrors.Kind(err) != apperrors.CodeSend {
		t.Errorf("Kind = %q, want %q", apperrors.Kind(err), apperrors.CodeSend)
	}
}

func TestSendPhoto_Upload(t *testing.T) {
	tg, api := newTestTelegram(t)

	err := tg.SendPhoto(5, telegram.Media{
		Name:    "1_00001.jpg",
		Reader:  strings.NewReader("jpeg bytes"),
		Caption: "<b>cap</b>",
	}, &telegram.Button{Text: "Открыть твит", URL: "https://x.com/a/status/1"})
	if err != nil {
		t.Fatalf("SendPhoto() error = %v", err)
	}

	call := api.lastCall(t)
	if call.method != "sendPhoto" {
		t.Fatalf("method = %q, want sendPhoto", call.method)
	}
	if call.form["caption"] != "<b>cap</b>" || call.form["parse_mode"] != "HTML" {
		t.Errorf("caption/parse_mode = %q/%q", call.form["caption"], call.form["parse_mode"])
	}
	if len(call.files) != 1 || call.files[0] != "photo" {
		t.Errorf("files = %v, want [photo]", call.files)
	}
	if !strings.Contains(call.form["reply_markup"], "https://x.com/a/status/1") {
		t.Errorf("reply_markup = %q", call.form["reply_markup"])
	}
}

func TestSendMediaGroup_CaptionOnFirst(t *testing.T) {
	tg, api := newTestTelegram(t)

	err := tg.SendMediaGroup(5, []telegram.Media{
		{Name: "1.mp4", Reader: strings.NewReader("v"), IsVideo: true, Caption: "cap"},
		{Name: "2.jpg", Reader: strings.NewReader("p")},
	})
	if err != nil {
		t.Fatalf("SendMediaGroup() error = %v", err)
	}

	call := api.lastCall(t)
	if call.method != "sendMediaGroup" {
		t.Fatalf("method = %q, want sendMediaGroup", call.method)
	}

	var media []map[string]any
	if err := json.Unmarshal([]byte(call.form["media"]), &media); err != nil {
		t.Fatalf("media: %v", err)
	}
	if len(media) != 2 {
		t.Fatalf("len(media) = %d, want 2", len(media))
	}
	if media[0]["type"] != "video" || media[0]["caption"] != "cap" || media[0]["parse_mode"] != "HTML" {
		t.Errorf("media[0] = %v", media[0])
	}
	if media[1]["type"] != "photo" {
		t.Errorf("media[1] type = %v, want photo", media[1]["type"])
	}
	if _, ok := media[1]["caption"]; ok {
		t.Errorf("media[1] should have no caption: %v", media[1])
	}
	if len(call.files) != 2 {
		t.Errorf("uploaded files = %v, want 2", call.files)
	}
}

func TestIsAuthError(t *testing.T) {
	if !isAuthError(&tgbotapi.Error{Code: 401, Message: "Unauthorized"}) {
		t.Error("401 should be an auth error")
	}
	if !isAuthError(&tgbotapi.Error{Code: 404, Message: "Not Found"}) {
		t.Error("404 should be an auth error")
	}
	if isAuthError(&tgbotapi.Error{Code: 502}) {
		t.Error("502 should not be an auth error")
	}
	if isAuthError(errors.New("dial tcp: timeout")) {
		t.Error("network error should not be an auth error")
	}
}

// recordingLogger keeps every record so tests can inspect what would be shipped.
type recordingLogger struct {
	mu      *sync.Mutex
	records *[]string
}

func newRecordingLogger() recordingLogger {
	return recordingLogger{mu: &sync.Mutex{}, records: &[]string{}}
}

func (l recordingLogger) add(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.records = append(*l.records, msg+" "+fmt.Sprint(args...))
}

func (l recordingLogger) Debug(msg string, args ...any)      { l.add(msg, args...) }
func (l recordingLogger) Info(msg string, args ...any)       { l.add(msg, args...) }
func (l recordingLogger) Warn(msg string, args ...any)       { l.add(msg, args...) }
func (l recordingLogger) Error(msg string, args ...any)      { l.add(msg, args...) }
func (l recordingLogger) WithComponent(string) logger.Logger { return l }
func (l recordingLogger) Printf(format string, args ...any)  { l.add(fmt.Sprintf(format, args...)) }

func TestSend_ConnectionResetHidesToken(t *testing.T) {
	tests := []struct {
		name   string
		method string
		send   func(tg *TelegramImpl) error
	}{
		{"media group", "sendMediaGroup", func(tg *TelegramImpl) error {
			return tg.SendMediaGroup(5, []telegram.Media{
				{Name: "1.jpg", Reader: strings.NewReader("a")},
				{Name: "2.jpg", Reader: strings.NewReader("b")},
			})
		}},
		{"video", "sendVideo", func(tg *TelegramImpl) error {
			return tg.SendVideo(5, telegram.Media{Name: "1.mp4", Reader: strings.NewReader("v"), IsVideo: true}, nil)
		}},
		{"message", "sendMessage", func(tg *TelegramImpl) error {
			_, err := tg.SendMessage(5, "hi")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg, api := newTestTelegram(t)
			log := newRecordingLogger()
			tg.Logger = log
			api.reset[tt.method] = true

			err := tt.send(tg)
			if err == nil {
				t.Fatal("expected error on reset connection")
			}
			if strings.Contains(err.Error(), testToken) {
				t.Errorf("error leaks the bot token: %v", err)
			}
			if !strings.Contains(err.Error(), redactedToken) {
				t.Errorf("error should keep the redacted request URL: %v", err)
			}
			if apperrors.Kind(err) != apperrors.CodeSend {
				t.Errorf("Kind = %q, want %q", apperrors.Kind(err), apperrors.CodeSend)
			}
			for _, rec := range *log.records {
				if strings.Contains(rec, testToken) {
					t.Errorf("log record leaks the bot token: %s", rec)
				}
			}
		})
	}
}

func TestRedactToken(t *testing.T) {
	if redactToken(nil, testToken) != nil {
		t.Error("nil error should stay nil")
	}

	plain := errors.New("Bad Request: chat not found")
	if got := redactToken(plain, testToken); got != plain {
		t.Errorf("unrelated error was replaced: %v", got)
	}

	urlErr := &url.Error{
		Op:  "Post",
		URL: "https://api.telegram.org/bot" + testToken + "/sendPhoto",
		Err: errors.New("EOF"),
	}
	got := redactToken(urlErr, testToken)
	want := `Post "https://api.telegram.org/bot<redacted>/sendPhoto": EOF`
	if got.Error() != want {
		t.Errorf("redactToken() = %q, want %q", got.Error(), want)
	}
	var asURL *url.Error
	if !errors.As(got, &asURL) {
		t.Error("redacted transport error should stay a *url.Error")
	}

	wrapped := fmt.Errorf("upload: %w", urlErr)
	if got := redactToken(wrapped, testToken).Error(); strings.Contains(got, testToken) {
		t.Errorf("wrapped error leaks the token: %s", got)
	}
}

package bot

import (
	"context"
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ppiankov/grammatika/internal/engine"
	"github.com/ppiankov/grammatika/internal/llm"
	"github.com/ppiankov/grammatika/internal/model"
	"github.com/ppiankov/grammatika/internal/render"
	"github.com/ppiankov/grammatika/internal/stats"
	"github.com/ppiankov/grammatika/internal/worker"
)

// sender abstracts the outbound half of the Telegram API so handlers
// can be tested without the network.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot is the Telegram message-delivery surface around the grammar
// engine. The engine stays a pure function; everything stateful
// (polling, throttling, counters) lives here.
type Bot struct {
	api      *tgbotapi.BotAPI
	sender   sender
	checker  *engine.Checker
	renderer *render.Renderer
	tracker  *stats.Tracker
	limiter  *worker.Limiter
	tipper   *llm.Tipper // nil when tips are disabled

	pollTimeout int
	verbose     bool
}

// New creates the bot surface. The Telegram token comes from
// TELEGRAM_BOT_TOKEN or the config file; a missing token is a startup
// error.
func New(cfg *model.Config, checker *engine.Checker, tracker *stats.Tracker, tipper *llm.Tipper) (*Bot, error) {
	token := cfg.Telegram.Token
	if token == "" {
		token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN not set (or telegram.token in config)")
	}

	client, err := NewHTTPClient(cfg.Telegram)
	if err != nil {
		return nil, fmt.Errorf("build HTTP client: %w", err)
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("connect to Telegram: %w", err)
	}
	api.Debug = cfg.Telegram.Debug

	return &Bot{
		api:         api,
		sender:      api,
		checker:     checker,
		renderer:    render.NewRenderer(cfg.Output.IncludeFooter),
		tracker:     tracker,
		limiter:     worker.NewLimiter(cfg.RateLimit.MessagesPerSecond, cfg.RateLimit.BurstSize),
		tipper:      tipper,
		pollTimeout: cfg.Telegram.PollTimeout,
		verbose:     cfg.Output.Verbose,
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "Authorized as @%s\n", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches one update. A panicking handler produces a
// generic apology instead of taking the poll loop down.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "grammatika: handler panic: %v\n", r)
			b.reply(msg.Chat.ID, "❌ Sorry, I encountered an error. Please try again!")
		}
	}()

	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}
	b.handleText(ctx, msg)
}

// reply sends a Markdown message to a chat; send failures are logged,
// not propagated.
func (b *Bot) reply(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.sender.Send(m); err != nil {
		fmt.Fprintf(os.Stderr, "grammatika: send failed: %v\n", err)
	}
}

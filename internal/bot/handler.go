package bot

import (
	"context"
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ppiankov/grammatika/internal/model"
)

// Reply keyboard button labels, dispatched like commands.
const (
	buttonCheck = "Check Grammar"
	buttonRules = "View Rules"
	buttonHelp  = "Help"
	buttonAbout = "About"
)

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendWelcome(msg.Chat.ID)
	case "help":
		b.reply(msg.Chat.ID, b.renderer.Help())
	case "rules":
		b.reply(msg.Chat.ID, b.renderer.RulesListing(b.checker.Rules()))
	case "stats":
		b.reply(msg.Chat.ID, b.renderer.StatsText(b.tracker.Snapshot()))
	default:
		b.reply(msg.Chat.ID, "🤔 Unknown command. Try /help!")
	}
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Text {
	case buttonCheck:
		b.reply(chatID, "📝 Send me a sentence to check!")
		return
	case buttonRules:
		b.reply(chatID, b.renderer.RulesListing(b.checker.Rules()))
		return
	case buttonHelp:
		b.reply(chatID, b.renderer.Help())
		return
	case buttonAbout:
		b.reply(chatID, b.renderer.About())
		return
	}

	if b.limiter != nil && !b.limiter.Allow(chatID) {
		b.reply(chatID, "🐢 Slow down a little! Try again in a moment.")
		return
	}

	if !containsEnglishLetter(msg.Text) {
		b.reply(chatID, "🌍 Please send text in English for grammar checking!")
		return
	}

	result := b.checker.Check(msg.Text)
	if b.tracker != nil {
		b.tracker.RecordCheck(correctionCategories(result))
	}

	if b.tipper != nil && result.Changed() {
		tip, err := b.tipper.Generate(ctx, result)
		if err != nil {
			// Tips are presentation only; the analysis still goes out.
			fmt.Fprintf(os.Stderr, "grammatika: tip generation failed: %v\n", err)
		} else {
			result.Tip = tip
		}
	}

	b.reply(chatID, b.renderer.Reply(result))
}

func (b *Bot) sendWelcome(chatID int64) {
	m := tgbotapi.NewMessage(chatID, b.renderer.Welcome())
	m.ParseMode = tgbotapi.ModeMarkdown
	m.ReplyMarkup = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonCheck),
			tgbotapi.NewKeyboardButton(buttonRules),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonHelp),
			tgbotapi.NewKeyboardButton(buttonAbout),
		),
	)
	if _, err := b.sender.Send(m); err != nil {
		fmt.Fprintf(os.Stderr, "grammatika: send failed: %v\n", err)
	}
}

// containsEnglishLetter reports whether the text has at least one ASCII
// letter. The engine itself makes no charset assumptions; this gate
// just avoids replying with a pointless "perfect grammar" to text the
// rule table can never match.
func containsEnglishLetter(text string) bool {
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func correctionCategories(result model.CheckResult) []string {
	categories := make([]string, 0, len(result.Corrections))
	for _, corr := range result.Corrections {
		categories = append(categories, corr.Category)
	}
	return categories
}

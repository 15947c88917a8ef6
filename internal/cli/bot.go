package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ppiankov/grammatika/internal/bot"
	"github.com/ppiankov/grammatika/internal/model"
	"github.com/ppiankov/grammatika/internal/stats"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	botToken   string
	socks5Addr string
)

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	Long: `Run the Telegram message surface over the grammar engine using
long polling.

The bot answers /start, /help, /rules and /stats, offers a reply
keyboard, and checks every plain-text message it receives. Corrections
come with explanations and example sentences.

The token is read from TELEGRAM_BOT_TOKEN (or telegram.token in the
config file).

Example:
  TELEGRAM_BOT_TOKEN=... grammatika bot
  grammatika bot --socks5 127.0.0.1:1080 --llm --llm-provider openai`,
	RunE: runBot,
}

func init() {
	rootCmd.AddCommand(botCmd)

	botCmd.Flags().StringVar(&botToken, "token", "", "Telegram bot token (prefer TELEGRAM_BOT_TOKEN)")
	botCmd.Flags().StringVar(&socks5Addr, "socks5", "", "SOCKS5 proxy address (host:port)")
	botCmd.Flags().StringVar(&rulesFile, "rules", "", "extra rules YAML file (appended after builtins)")
	botCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer on analysis replies")

	botCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable tutor tip generation")
	botCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	botCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Telegram.Token = botToken
	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = viper.GetString("telegram.token")
	}
	cfg.Telegram.SOCKS5Proxy = socks5Addr
	if cfg.Telegram.SOCKS5Proxy == "" {
		cfg.Telegram.SOCKS5Proxy = viper.GetString("telegram.socks5_proxy")
	}
	if rulesFile != "" {
		cfg.Rules.File = rulesFile
	} else {
		cfg.Rules.File = viper.GetString("rules.file")
	}

	checker, err := buildChecker(cfg)
	if err != nil {
		return err
	}

	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}
	tipper, err := newTipper(cfg)
	if err != nil {
		return fmt.Errorf("initialize LLM provider: %w", err)
	}

	b, err := bot.New(cfg, checker, stats.NewTracker(), tipper)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "🎓 Grammatika bot starting (%d rules loaded)\n", len(checker.Rules()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("bot stopped: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Bot stopped.")
	return nil
}

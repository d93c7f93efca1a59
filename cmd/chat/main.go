package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"grocery-assistant/config"
	"grocery-assistant/internal/action"
	"grocery-assistant/internal/conversation"
	"grocery-assistant/internal/intent"
	"grocery-assistant/internal/model"
	"grocery-assistant/internal/reply"
	"grocery-assistant/internal/textgen"
	"grocery-assistant/pkg/llmprovider"
	"grocery-assistant/pkg/log"
)

const (
	cmdClear = ":clear"
	cmdQuit  = ":quit"
	prompt   = "you> "
)

func main() {
	offline := flag.Bool("offline", false, "skip LLM providers and use canned replies only")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:    *level,
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := newEngine(ctx, cfg, logger, *offline)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := repl(ctx, engine, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEngine(ctx context.Context, cfg *config.Config, logger log.Logger, offline bool) (*conversation.Engine, error) {
	var generator textgen.Generator
	if !offline && cfg.LLM.HasProviders() {
		providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
		if err == nil {
			manager, mErr := llmprovider.NewManagerFromConfig(providers, &cfg.LLM, logger)
			if mErr != nil {
				return nil, fmt.Errorf("llm manager: %w", mErr)
			}
			generator = textgen.New(manager, textgen.Config{
				CacheSize:       cfg.Enrichment.CacheSize,
				CacheTTL:        cfg.Enrichment.CacheTTL,
				RateLimitPerMin: cfg.Enrichment.RateLimitPerMin,
				Temperature:     cfg.Enrichment.Temperature,
				MaxTokens:       cfg.Enrichment.MaxTokens,
			}, logger)
		} else {
			logger.Warnf(ctx, "LLM providers unavailable: %v", err)
		}
	}

	var lexicon *intent.Lexicon
	if cfg.Assistant.LexiconPath != "" {
		lx, err := intent.LoadLexicon(cfg.Assistant.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("lexicon: %w", err)
		}
		lexicon = lx
	}

	synth, err := reply.New(generator, action.New(), reply.Config{
		EnrichmentTimeout: cfg.Assistant.EnrichmentTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("synthesizer: %w", err)
	}

	return conversation.New(intent.New(lexicon), synth, logger), nil
}

// repl reads lines from in until EOF, :quit or ctx is done.
func repl(ctx context.Context, engine *conversation.Engine, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Grocery assistant. Type %s to reset, %s to exit.\n", cmdClear, cmdQuit)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case cmdQuit:
			return nil
		case cmdClear:
			engine.ClearMessages()
			fmt.Fprintln(out, "(conversation cleared)")
			continue
		}

		msg, ok := engine.SendMessage(ctx, line)
		if !ok {
			continue
		}
		printReply(out, msg)
	}
}

func printReply(out io.Writer, msg model.ChatMessage) {
	fmt.Fprintf(out, "bot> %s\n", msg.Content)
	for i, b := range msg.ActionButtons {
		fmt.Fprintf(out, "     [%d] %s (%s)\n", i+1, b.Title, b.Action)
	}
}

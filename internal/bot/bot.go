package bot

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Bot is a main implementation of bot
type Bot struct {
	Configuration

	stop     chan struct{}
	stopOnce sync.Once
}

// Serve connects the gateway and blocks until a termination signal or Stop,
// then releases modules and the session
func (bot *Bot) Serve() error {
	err := bot.Discord.Open()
	if err != nil {
		return err
	}

	bot.Log.Info("Running")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case <-sc:
	case <-bot.stop:
	}

	return bot.Close()
}

// Stop makes Serve return; safe to call more than once
func (bot *Bot) Stop() {
	bot.stopOnce.Do(func() {
		close(bot.stop)
	})
}

// Close shuts down every module and closes the gateway session
func (bot *Bot) Close() error {
	for _, m := range bot.Modules {
		m.Shutdown(&bot.Configuration)
	}

	return bot.Discord.Close()
}

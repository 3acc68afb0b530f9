package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/CalistaIo/ip/internal/bot"
	"github.com/CalistaIo/ip/internal/service"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Serve the task list over Telegram",
	Long: `Serve the task list over Telegram.

Requires TELEGRAM_TOKEN. Set TELEGRAM_CHAT_ID to serve a single chat.`,
	RunE: runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, tasks, closeStore, err := loadTasks(ctx)
	if err != nil {
		return err
	}
	defer closeStore()
	if err := cfg.ValidateBot(); err != nil {
		return err
	}

	reminders := service.NewReminderService(tasks)
	telegramBot, err := bot.New(cfg, tasks, reminders)
	if err != nil {
		return err
	}

	scheduler := service.NewSchedulerService(time.Local)
	n, err := scheduler.Schedule(cfg.ReminderInterval, cfg.ReminderTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := telegramBot.SendReminder(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("reminder: %v", err)
		}
	})
	if err != nil {
		return err
	}
	if n > 0 {
		scheduler.Start()
		defer scheduler.Stop()
	}

	log.Println("[info] task tracker bot started")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Println("[info] shutdown complete")
	return nil
}

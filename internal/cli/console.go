package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/CalistaIo/ip/internal/console"
	"github.com/CalistaIo/ip/internal/service"
)

func runConsole(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, tasks, closeStore, err := loadTasks(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	reminders := service.NewReminderService(tasks)
	scheduler := service.NewSchedulerService(time.Local)
	n, err := scheduler.Schedule(cfg.ReminderInterval, cfg.ReminderTime, func() {
		log.Printf("[info] %s", reminders.Summary())
	})
	if err != nil {
		return err
	}
	if n > 0 {
		scheduler.Start()
		defer scheduler.Stop()
	}

	return console.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), tasks)
}

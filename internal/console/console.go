// Package console runs the interactive stdin/stdout session.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/CalistaIo/ip/internal/service"
	"github.com/CalistaIo/ip/internal/ui"
)

const exitCommand = "bye"

// Run greets the user and executes lines from in until "bye" or EOF.
// Every reply and every error is framed between separator rules.
func Run(ctx context.Context, in io.Reader, out io.Writer, tasks *service.TaskService) error {
	fmt.Fprintln(out, ui.Logo())
	fmt.Fprintln(out, ui.Frame(ui.Welcome()))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if line == exitCommand {
			break
		}
		fmt.Fprintln(out, ui.Frame(tasks.Respond(ctx, line)))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Fprintln(out, ui.Frame(ui.Farewell()))
	return nil
}

// Package ui renders engine outcomes and errors as user-facing text.
package ui

import (
	"fmt"
	"strings"

	"github.com/CalistaIo/ip/internal/model"
	"github.com/CalistaIo/ip/internal/tasklist"
)

const (
	// Rule separates replies on the console.
	Rule = "-------------------------------------------------------------------------------------"

	indent = "    "
)

const logo = " ____        _        \n" +
	"|  _ \\ _   _| | _____ \n" +
	"| | | | | | | |/ / _ \\\n" +
	"| |_| | |_| |   <  __/\n" +
	"|____/ \\__,_|_|\\_\\___|\n"

// Logo is printed once before the greeting on the console.
func Logo() string {
	return "Hello from\n" + logo
}

func Welcome() string {
	return "Hello! I'm Duke\nWhat can I do for you?"
}

func Farewell() string {
	return "Bye. Hope to see you again soon!"
}

// Frame wraps text between separator rules.
func Frame(text string) string {
	return Rule + "\n" + text + "\n" + Rule
}

// Error renders err as the single message shown to the user.
func Error(err error) string {
	return err.Error()
}

// Render turns an outcome into the reply text.
func Render(out tasklist.Outcome) string {
	var b strings.Builder
	switch out.Action {
	case tasklist.ActionShow:
		b.WriteString("Here are the tasks in your list: ")
		writeNumbered(&b, out.Lines)
	case tasklist.ActionDone:
		b.WriteString("Nice! I've marked this task as done: ")
		writeTasks(&b, out.Tasks)
	case tasklist.ActionAdd:
		b.WriteString("Got it. I've added this task:")
		writeTasks(&b, out.Tasks)
		b.WriteString("\n" + countLine(out.Count))
	case tasklist.ActionDelete:
		if len(out.Tasks) == 1 {
			b.WriteString("Noted. I've removed this task:")
		} else {
			b.WriteString("Noted. I've removed these tasks:")
		}
		writeTasks(&b, out.Tasks)
		b.WriteString("\n" + countLine(out.Count))
	case tasklist.ActionFind:
		if len(out.Lines) == 0 {
			b.WriteString("There are no matching tasks in your list.")
		} else {
			b.WriteString("Here are the matching tasks in your list:")
			writeNumbered(&b, out.Lines)
		}
	}
	return b.String()
}

// Reminder renders the pending dated tasks with their list positions.
func Reminder(positions []int, tasks []model.Task) string {
	if len(tasks) == 0 {
		return "Nothing pending with a date. Enjoy!"
	}
	var b strings.Builder
	b.WriteString("Reminder! These tasks are still pending:")
	for i, task := range tasks {
		fmt.Fprintf(&b, "\n%d.%s", positions[i]+1, task)
	}
	return b.String()
}

func writeNumbered(b *strings.Builder, lines []string) {
	for i, line := range lines {
		fmt.Fprintf(b, "\n%d.%s", i+1, line)
	}
}

func writeTasks(b *strings.Builder, tasks []model.Task) {
	for _, task := range tasks {
		b.WriteString("\n" + indent + task.String())
	}
}

func countLine(n int) string {
	if n == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", n)
}

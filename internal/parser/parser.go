// Package parser turns raw input lines into validated commands.
package parser

import (
	"strconv"
	"strings"

	"github.com/CalistaIo/ip/internal/model"
)

const (
	deadlineSep = " /by "
	eventSep    = " /at "
)

// Parse interprets line against a list currently holding size tasks.
// The returned error is always an *Error.
func Parse(line string, size int) (Command, error) {
	if line == "list" {
		return Show{}, nil
	}
	if body, ok := keyword(line, "done"); ok {
		return parseDone(body, size)
	}
	if body, ok := keyword(line, "todo"); ok {
		if body == "" {
			return nil, ErrToDoEmpty
		}
		if !model.FitsRecord(body) {
			return nil, ErrTaskSeparator
		}
		return AddToDo{Description: body}, nil
	}
	if body, ok := keyword(line, "deadline"); ok {
		desc, when, err := splitDated(body, deadlineSep, ErrDeadlineIncomplete)
		if err != nil {
			return nil, err
		}
		return AddDeadline{Description: desc, When: when}, nil
	}
	if body, ok := keyword(line, "event"); ok {
		desc, when, err := splitDated(body, eventSep, ErrEventIncomplete)
		if err != nil {
			return nil, err
		}
		return AddEvent{Description: desc, When: when}, nil
	}
	if body, ok := keyword(line, "delete"); ok {
		return parseDelete(body, size)
	}
	if _, ok := keyword(line, "find"); ok {
		// Only the token right after "find" is the keyword; the rest is ignored.
		tokens := strings.Split(line, " ")
		if len(tokens) < 2 || tokens[1] == "" {
			return nil, ErrFindNotSpecified
		}
		return Find{Keyword: tokens[1]}, nil
	}
	return nil, ErrUnknownCommand
}

// keyword matches "kw" or "kw <body>" and returns the body.
func keyword(line, kw string) (string, bool) {
	if line == kw {
		return "", true
	}
	if strings.HasPrefix(line, kw+" ") {
		return line[len(kw)+1:], true
	}
	return "", false
}

func parseDone(body string, size int) (Command, error) {
	if body == "" {
		return nil, ErrDoneNotSpecified
	}
	n, err := strconv.Atoi(body)
	if err != nil {
		return nil, ErrDoneNotNumber
	}
	index := n - 1
	if index < 0 || index >= size {
		return nil, ErrDoneOutOfRange
	}
	return MarkDone{Index: index}, nil
}

func splitDated(body, sep string, incomplete *Error) (string, string, error) {
	if body == "" {
		return "", "", incomplete
	}
	parts := strings.Split(body, sep)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", incomplete
	}
	if !model.FitsRecord(parts[0]) {
		return "", "", ErrTaskSeparator
	}
	when, err := NormalizeDate(parts[1])
	if err != nil {
		return "", "", err
	}
	return parts[0], when, nil
}

func parseDelete(body string, size int) (Command, error) {
	if body == "" {
		return nil, ErrDeleteNotSpecified
	}
	if body == "all" {
		return DeleteAll{}, nil
	}

	// Trailing empty tokens are dropped, so "delete 1 " is "delete 1".
	tokens := strings.Split(body, " ")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return nil, ErrDeleteNotSpecified
	}
	indices := make([]int, 0, len(tokens))
	for _, token := range tokens {
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, ErrDeleteNotNumber
		}
		index := n - 1
		if index < 0 || index >= size {
			return nil, ErrDeleteOutOfRange
		}
		indices = append(indices, index)
	}
	return newDeleteSome(indices), nil
}

package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/remindd/internal/model"
	"github.com/sandeepkv93/remindd/internal/settings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeSearch Type = "search"
	TypeFilter Type = "filter"
	TypeSort   Type = "sort"
	TypeBackup Type = "backup"
	TypeTheme  Type = "theme"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

type SearchArgs struct {
	Query string
}

type FilterArgs struct {
	Status model.FilterStatus
}

type SortArgs struct {
	By model.SortBy
}

type ThemeArgs struct {
	Theme settings.Theme
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Search *SearchArgs
	Filter *FilterArgs
	Sort   *SortArgs
	Theme  *ThemeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSearch:
		return parseSearch(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeSort:
		return parseSort(input, args)
	case TypeBackup:
		return Command{Type: TypeBackup, Raw: input}, nil
	case TypeTheme:
		return parseTheme(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseSearch(raw string, args []string) (Command, error) {
	// "search" alone clears the active query.
	query := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypeSearch, Raw: raw, Search: &SearchArgs{Query: query}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires a status (all, active, paused)"}
	}
	status := model.FilterStatus(strings.ToLower(args[0]))
	if !status.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter status: %s", args[0])}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Status: status}}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires an order (date-asc, date-desc, priority, created-desc)"}
	}
	by := model.SortBy(strings.ToLower(args[0]))
	if !by.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown sort order: %s", args[0])}
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &SortArgs{By: by}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires a value (light, dark, system)"}
	}
	theme := settings.Theme(strings.ToLower(args[0]))
	if !theme.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme: %s", args[0])}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Theme: theme}}, nil
}

package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Search func(SearchArgs) (Result, error)
	Filter func(FilterArgs) (Result, error)
	Sort   func(SortArgs) (Result, error)
	Backup func() (Result, error)
	Theme  func(ThemeArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeSearch:
		if handlers.Search == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "search handler not configured"}
		}
		return handlers.Search(*cmd.Search)
	case TypeFilter:
		if handlers.Filter == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "filter handler not configured"}
		}
		return handlers.Filter(*cmd.Filter)
	case TypeSort:
		if handlers.Sort == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sort handler not configured"}
		}
		return handlers.Sort(*cmd.Sort)
	case TypeBackup:
		if handlers.Backup == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "backup handler not configured"}
		}
		return handlers.Backup()
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "theme handler not configured"}
		}
		return handlers.Theme(*cmd.Theme)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

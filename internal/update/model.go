package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/remindd/internal/model"
	"github.com/sandeepkv93/remindd/internal/scheduler"
	"github.com/sandeepkv93/remindd/internal/settings"
	"github.com/sandeepkv93/remindd/internal/store"
	"github.com/sandeepkv93/remindd/internal/views"
)

type Screen string

const (
	ScreenHome     Screen = "home"
	ScreenForm     Screen = "form"
	ScreenSettings Screen = "settings"
	ScreenHelp     Screen = "help"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// Store is the slice of the reminder store the UI drives.
type Store interface {
	Reminders() []model.Reminder
	Add(ctx context.Context, r model.Reminder) error
	Update(ctx context.Context, id string, fields store.UpdateFields) error
	Delete(ctx context.Context, id string) error
	TogglePause(ctx context.Context, id string) error
}

// SettingsService is the slice of the settings layer the UI drives.
type SettingsService interface {
	SetTheme(ctx context.Context, theme settings.Theme) error
	SetBackupURL(ctx context.Context, url string) error
	SetLastBackup(ctx context.Context, ts time.Time) error
}

// Backupper pushes the reminder collection to the configured endpoint.
type Backupper interface {
	Send(ctx context.Context, endpoint, secret string, reminders []model.Reminder) (string, error)
}

type GlobalKeyMap struct {
	New      string
	Edit     string
	Delete   string
	Pause    string
	Settings string
	Help     string
	Quit     string
}

type Model struct {
	Screen   Screen
	Status   StatusBar
	Keys     GlobalKeyMap
	Quitting bool

	store    Store
	fires    <-chan scheduler.FireEvent
	settings SettingsService
	backup   Backupper

	theme          settings.Theme
	styles         views.Styles
	desktopEnabled bool

	filters model.Filters
	query   string
	sortBy  model.SortBy
	cursor  int

	palette      bool
	commandInput textinput.Model

	form formState

	backupURL     string
	secretKey     string
	lastBackup    time.Time
	editingURL    bool
	urlInput      textinput.Model
	backupRunning bool
	backupSpinner spinner.Model

	lastFire *scheduler.FireEvent

	now func() time.Time
}

// Deps carries everything the UI needs; ambient settings are loaded by the
// caller before the program starts so the model never blocks on IO in New.
type Deps struct {
	Store          Store
	Fires          <-chan scheduler.FireEvent
	Settings       SettingsService
	Backup         Backupper
	Theme          settings.Theme
	BackupURL      string
	SecretKey      string
	LastBackup     time.Time
	DesktopEnabled bool
}

func New(deps Deps) Model {
	commandInput := textinput.New()
	commandInput.Prompt = "/"
	commandInput.CharLimit = 120

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = 300

	theme := deps.Theme
	if !theme.IsValid() {
		theme = settings.ThemeSystem
	}

	return Model{
		Screen: ScreenHome,
		Keys: GlobalKeyMap{
			New:      "n",
			Edit:     "e",
			Delete:   "d",
			Pause:    "p",
			Settings: "s",
			Help:     "?",
			Quit:     "q",
		},
		store:          deps.Store,
		fires:          deps.Fires,
		settings:       deps.Settings,
		backup:         deps.Backup,
		theme:          theme,
		styles:         views.NewStyles(string(theme)),
		desktopEnabled: deps.DesktopEnabled,
		filters:        model.Filters{Status: model.FilterAll},
		sortBy:         model.SortDateAsc,
		commandInput:   commandInput,
		form:           newFormState(),
		backupURL:      deps.BackupURL,
		secretKey:      deps.SecretKey,
		lastBackup:     deps.LastBackup,
		urlInput:       urlInput,
		backupSpinner:  spinner.New(),
		now:            time.Now,
	}
}

type FireMsg struct {
	Event scheduler.FireEvent
}

type BackupDoneMsg struct {
	Message string
	At      time.Time
	Err     error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func waitForFireCmd(ch <-chan scheduler.FireEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return FireMsg{Event: event}
	}
}

package notify

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"strings"
)

type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionDefault Permission = "default"
)

// Notifier is the delivery capability the scheduler depends on. Tag carries
// the reminder's notification id so host environments that support it can
// deduplicate or group deliveries.
type Notifier interface {
	RequestPermission() Permission
	Deliver(title, body, tag string) error
}

// DesktopNotifier delivers through the host desktop notification command.
// Permission maps to whether a usable command exists for the current OS; the
// tag is accepted but ignored since neither notify-send nor osascript expose
// grouping.
type DesktopNotifier struct{}

func (DesktopNotifier) RequestPermission() Permission {
	switch runtime.GOOS {
	case "linux":
		if _, err := exec.LookPath("notify-send"); err != nil {
			return PermissionDenied
		}
		return PermissionGranted
	case "darwin":
		if _, err := exec.LookPath("osascript"); err != nil {
			return PermissionDenied
		}
		return PermissionGranted
	default:
		return PermissionDefault
	}
}

func (DesktopNotifier) Deliver(title, body, tag string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return fmt.Errorf("notify: no desktop delivery on %s", runtime.GOOS)
	}
}

// LogNotifier writes deliveries to the process log. Used when desktop
// notifications are disabled so scheduling still works end to end.
type LogNotifier struct{}

func (LogNotifier) RequestPermission() Permission { return PermissionGranted }

func (LogNotifier) Deliver(title, body, tag string) error {
	log.Printf("[notify] %s: %s (tag=%s)", title, body, tag)
	return nil
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

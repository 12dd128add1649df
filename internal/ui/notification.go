package ui

import (
	"os"
	"os/exec"
)

// For a list of possible icons, see: https://specifications.freedesktop.org/icon-naming-spec/icon-naming-spec-latest.html
const (
	IconDialogError = "dialog-error"

	UrgencyCritical = "critical"
)

func NotifyError(title, text string) {
	NotifySend(UrgencyCritical, title, text, IconDialogError)
}

// NotifySend shows a desktop notification for the user running coolant2go.
// Failures are logged, never returned.
func NotifySend(urgency, title, text, icon string) {
	_, hasX := os.LookupEnv("DISPLAY")
	_, hasWayland := os.LookupEnv("WAYLAND_DISPLAY")
	if !hasX && !hasWayland {
		Warning("Cannot send notification, no display session found")
		return
	}

	notifySend, err := exec.LookPath("notify-send")
	if err != nil {
		Warning("Cannot send notification, notify-send is not installed: %v", err)
		return
	}

	cmd := exec.Command(notifySend,
		"-a", "coolant2go",
		"-u", urgency,
		"-i", icon,
		title, text,
	)
	err = cmd.Run()
	if err != nil {
		Error("Error sending notification: %v", err)
	}
}

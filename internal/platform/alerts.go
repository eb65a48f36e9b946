package platform

import (
	"log"

	"pompano/internal/core/model"
)

// AlertConfig selects which completion alerts are active.
type AlertConfig struct {
	Sound         bool
	DesktopNotify bool
}

// Player plays a completion chime.
type Player interface {
	Play(finished model.SessionType) error
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(summary, body string) error
}

// Alerts announces finished sessions through sound and notifications.
// Failures are logged and never reach the clock.
type Alerts struct {
	config   AlertConfig
	player   Player
	notifier Notifier
	async    func(func())
}

// NewAlerts creates alerts backed by the given player and notifier.
// Either may be nil.
func NewAlerts(config AlertConfig, player Player, notifier Notifier) *Alerts {
	return &Alerts{
		config:   config,
		player:   player,
		notifier: notifier,
		async:    func(run func()) { go run() },
	}
}

// SetConfig replaces the active alert selection.
func (alerts *Alerts) SetConfig(config AlertConfig) {
	alerts.config = config
}

// SessionCompleted fires the configured alerts for a finished session.
func (alerts *Alerts) SessionCompleted(finished model.SessionType) {
	config := alerts.config
	if config.Sound && alerts.player != nil {
		if err := alerts.player.Play(finished); err != nil {
			log.Printf("alarm: %v", err)
		}
	}
	if config.DesktopNotify && alerts.notifier != nil {
		summary, body := CompletionMessage(finished)
		notifier := alerts.notifier
		alerts.async(func() {
			if err := notifier.Notify(summary, body); err != nil {
				log.Printf("desktop notification: %v", err)
			}
		})
	}
}

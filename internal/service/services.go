package service

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/xolan/pausa/internal/config"
	"github.com/xolan/pausa/internal/logging"
	"github.com/xolan/pausa/internal/notify"
	"github.com/xolan/pausa/internal/osutil"
)

// Services holds all service instances used by the application
type Services struct {
	Timer  *TimerService
	Config *ConfigService
}

// NewServices creates a Services instance with the default config path
// and the notifiers the configuration asks for.
func NewServices(log zerolog.Logger) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithConfig(configPath, cfg, BuildNotifier(cfg, log), log)
}

// NewServicesWithConfig creates a Services instance from an explicit
// path, configuration, and notifier (useful for testing and for flag
// overrides applied by the CLI).
func NewServicesWithConfig(configPath string, cfg config.Config, notifier notify.Notifier, log zerolog.Logger) (*Services, error) {
	opts, err := cfg.TimerOptions()
	if err != nil {
		return nil, err
	}

	return &Services{
		Timer:  NewTimerService(opts, notifier, logging.Component(log, "timer")),
		Config: NewConfigService(configPath, cfg),
	}, nil
}

// BuildNotifier assembles the notifier stack the configuration asks
// for: terminal bell, desktop helper, both, or none.
func BuildNotifier(cfg config.Config, log zerolog.Logger) notify.Notifier {
	var notifiers notify.Multi

	if cfg.Bell {
		notifiers = append(notifiers, notify.Bell{W: os.Stdout})
	}

	if cfg.DesktopNotifications {
		desktop, ok := notify.NewDesktop(osutil.DefaultCommandRunner{})
		if ok {
			notifiers = append(notifiers, desktop)
			log.Debug().Str("program", desktop.Program()).Msg("desktop notifier enabled")
		} else {
			log.Debug().Msg("no desktop notifier found, desktop notifications disabled")
		}
	}

	return notifiers
}

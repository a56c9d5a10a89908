// Package settings defines application-level configuration data.
package settings

import "time"

// DefaultFeedURL is the published festival sheet, exported as CSV.
const DefaultFeedURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vT7DKkAN495Ts2mtAgCIVzNLrBky9qRSYnMNwNLgHitgYAWXBlMhihTQ1LcPseEVoO6Wy5LbWSV0gxa/pub?output=csv"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up      string `yaml:"up" kong:"help='Up key',default='up,k'"`
	Down    string `yaml:"down" kong:"help='Down key',default='down,j'"`
	Top     string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom  string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Search  string `yaml:"search" kong:"help='Focus search key',default='/'"`
	ShowAll string `yaml:"show_all" kong:"help='Show all key',default='a'"`
	Share   string `yaml:"share" kong:"help='Share key',default='s'"`
	Quit    string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted  string `yaml:"muted" kong:"help='Muted text color',default='244'"`
}

// ShareConfig defines how festivals are shared.
type ShareConfig struct {
	Command string `yaml:"command" kong:"help='Native share command, invoked as: command TITLE TEXT URL'"`
	URL     string `yaml:"url" kong:"help='URL appended to shared text (defaults to the feed URL)'"`
}

// LogConfig defines file logging.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path'"`
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// Settings represents the application configuration.
type Settings struct {
	FeedURL        string       `yaml:"feed_url" kong:"help='Festival CSV feed URL',default='${default_feed_url}'"`
	TimeoutSeconds int          `yaml:"timeout_seconds" kong:"help='Feed fetch timeout in seconds',default='10'"`
	DateLayout     string       `yaml:"date_layout" kong:"help='Go time layout for displayed dates',default='Jan 2, 2006'"`
	KeyMap         KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme          ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Share          ShareConfig  `yaml:"share" kong:"embed,prefix='share.'"`
	Log            LogConfig    `yaml:"log" kong:"embed,prefix='log.'"`
}

// Timeout returns the fetch timeout. Non-positive values disable it.
func (s Settings) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ShareURL returns the URL attached to shared text.
func (s Settings) ShareURL() string {
	if s.Share.URL != "" {
		return s.Share.URL
	}
	return s.FeedURL
}

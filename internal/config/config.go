package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vango-dev/jsxdom/internal/errors"
)

const (
	// FileName is the configuration file looked up in the working directory.
	FileName = "jsxdom.yaml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "JSXDOM"

	DefaultHost     = "localhost"
	DefaultPort     = 3000
	DefaultMarkup   = "pages"
	DefaultDebounce = 100 * time.Millisecond
)

// Config is the complete jsxdom configuration.
type Config struct {
	Markup  MarkupConfig  `mapstructure:"markup"`
	Render  RenderConfig  `mapstructure:"render"`
	Dev     DevConfig     `mapstructure:"dev"`
	Log     LogConfig     `mapstructure:"log"`
	Publish PublishConfig `mapstructure:"publish"`

	path string
}

// MarkupConfig locates markup documents.
type MarkupConfig struct {
	// Dir holds the *.yaml / *.json pages served and watched.
	Dir string `mapstructure:"dir"`
}

// RenderConfig controls HTML serialization.
type RenderConfig struct {
	Pretty       bool   `mapstructure:"pretty"`
	Indent       string `mapstructure:"indent"`
	EventMarkers bool   `mapstructure:"eventMarkers"`
}

// DevConfig configures the preview server.
type DevConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Reload   bool          `mapstructure:"reload"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PublishConfig configures the S3 uploader.
type PublishConfig struct {
	Bucket       string `mapstructure:"bucket"`
	Prefix       string `mapstructure:"prefix"`
	Region       string `mapstructure:"region"`
	Endpoint     string `mapstructure:"endpoint"`
	PathStyle    bool   `mapstructure:"pathStyle"`
	CacheControl string `mapstructure:"cacheControl"`
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	file     string
	dir      string
	flags    *pflag.FlagSet
	bindings map[string]string
	env      func(string) (string, bool)
}

// WithFile loads an explicit configuration file. A missing explicit file
// is an error; a missing default file is not.
func WithFile(path string) Option {
	return func(l *loader) { l.file = path }
}

// WithDir looks for jsxdom.yaml in dir instead of the working directory.
func WithDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// WithFlag binds a command line flag to a configuration key. The flag
// only overrides the key when it was set explicitly.
func WithFlag(key, flag string, fs *pflag.FlagSet) Option {
	return func(l *loader) {
		l.flags = fs
		l.bindings[key] = flag
	}
}

// WithEnv replaces the environment lookup, for tests.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(l *loader) { l.env = lookup }
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Markup: MarkupConfig{Dir: DefaultMarkup},
		Render: RenderConfig{Indent: "  "},
		Dev: DevConfig{
			Host:     DefaultHost,
			Port:     DefaultPort,
			Reload:   true,
			Debounce: DefaultDebounce,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

func setDefaults(v *viper.Viper) {
	d := New()
	v.SetDefault("markup.dir", d.Markup.Dir)
	v.SetDefault("render.pretty", d.Render.Pretty)
	v.SetDefault("render.indent", d.Render.Indent)
	v.SetDefault("render.eventMarkers", d.Render.EventMarkers)
	v.SetDefault("dev.host", d.Dev.Host)
	v.SetDefault("dev.port", d.Dev.Port)
	v.SetDefault("dev.reload", d.Dev.Reload)
	v.SetDefault("dev.debounce", d.Dev.Debounce)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("publish.bucket", "")
	v.SetDefault("publish.prefix", "")
	v.SetDefault("publish.region", "")
	v.SetDefault("publish.endpoint", "")
	v.SetDefault("publish.pathStyle", false)
	v.SetDefault("publish.cacheControl", "")
}

// Load reads the configuration.
func Load(opts ...Option) (*Config, error) {
	l := &loader{bindings: make(map[string]string)}
	for _, opt := range opts {
		opt(l)
	}

	v := viper.New()
	setDefaults(v)

	path := l.file
	if path == "" {
		path = filepath.Join(l.dir, FileName)
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case l.file == "" && (stderrors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist)):
			path = ""
		default:
			return nil, errors.New("C001").Wrap(err).WithDetail("reading %s", path)
		}
	}

	for _, key := range v.AllKeys() {
		name := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if l.env != nil {
			if val, ok := l.env(name); ok {
				v.Set(key, val)
			}
			continue
		}
		if err := v.BindEnv(key, name); err != nil {
			return nil, errors.New("C002").Wrap(err)
		}
	}

	if l.flags != nil {
		for key, name := range l.bindings {
			f := l.flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			v.Set(key, f.Value.String())
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("C002").Wrap(err)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("C002").WithDetail("dev.port must be between 0 and 65535, got %d", c.Dev.Port)
	}
	if c.Dev.Debounce < 0 {
		return errors.New("C002").WithDetail("dev.debounce must not be negative")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return errors.New("C002").Wrap(err).WithDetail("log.level must be debug, info, warn or error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("C002").WithDetail("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Path returns the file the configuration was read from, or "" when
// only defaults and overrides were used.
func (c *Config) Path() string { return c.path }

// Addr returns the preview server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Dev.Host, c.Dev.Port)
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(l.Level))
	return level, err
}

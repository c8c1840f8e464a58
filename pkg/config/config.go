package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LECTURES_STORAGE_DRIVER.
const EnvPrefix = "LECTURES"

const (
	DriverDuckDB = "duckdb"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	Catalog struct {
		Dir   string `mapstructure:"dir" yaml:"dir"`
		URL   string `mapstructure:"url" yaml:"url" validate:"omitempty,url"`
		Watch bool   `mapstructure:"watch" yaml:"watch"`
	} `mapstructure:"catalog" yaml:"catalog"`
	Storage struct {
		Driver string `mapstructure:"driver" yaml:"driver" validate:"oneof=duckdb redis memory"`
		Path   string `mapstructure:"path" yaml:"path"`
		Redis  struct {
			Addr     string `mapstructure:"addr" yaml:"addr"`
			Password string `mapstructure:"password" yaml:"password"`
			DB       int    `mapstructure:"db" yaml:"db" validate:"min=0"`
		} `mapstructure:"redis" yaml:"redis"`
	} `mapstructure:"storage" yaml:"storage"`
	Proxy struct {
		BaseURL string `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
	} `mapstructure:"proxy" yaml:"proxy"`
	UI struct {
		Lang         string        `mapstructure:"lang" yaml:"lang" validate:"oneof=ar en"`
		Transition   time.Duration `mapstructure:"transition" yaml:"transition" validate:"min=0"`
		Notification time.Duration `mapstructure:"notification" yaml:"notification" validate:"gt=0"`
	} `mapstructure:"ui" yaml:"ui"`
	Download struct {
		Dir string `mapstructure:"dir" yaml:"dir" validate:"required"`
	} `mapstructure:"download" yaml:"download"`
	Logging struct {
		Level    string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
		FilePath string `mapstructure:"file_path" yaml:"file_path"`
	} `mapstructure:"logging" yaml:"logging"`
}

// HomeDir is where the default database, logs and config file live.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".lectures")
}

func downloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(HomeDir(), "downloads")
	}
	return filepath.Join(home, "Downloads", "lectures")
}

// RegisterFlags adds every setting to fs with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	base := HomeDir()

	fs.String("config", "", "config file (default "+filepath.Join(base, "config.yaml")+")")

	fs.String("catalog.dir", "", "catalog directory containing catalog.yaml (embedded sample when empty)")
	fs.String("catalog.url", "", "base URL serving catalog.yaml and its datasets")
	fs.Bool("catalog.watch", true, "reload the catalog directory when its files change")

	fs.String("storage.driver", DriverDuckDB, "progress storage: duckdb, redis or memory (nothing persisted)")
	fs.String("storage.path", filepath.Join(base, "lectures.db"), "DuckDB database file")
	fs.String("storage.redis.addr", "", "redis address, eg. 127.0.0.1:6379")
	fs.String("storage.redis.password", "", "redis password")
	fs.Int("storage.redis.db", 0, "redis database")

	fs.String("proxy.base_url", "https://videoiq.duckdns.org", "video proxy base URL")

	fs.String("ui.lang", "ar", "interface language: ar or en")
	fs.Duration("ui.transition", 500*time.Millisecond, "minimum loading indicator time on navigation")
	fs.Duration("ui.notification", 3*time.Second, "how long notifications stay on screen")

	fs.String("download.dir", downloadDir(), "where materials, exams and syllabus exports are saved")

	fs.String("logging.level", "info", "logging level")
	fs.String("logging.file_path", filepath.Join(base, "logs", "lectures.log"), "log file")
}

// Load resolves flags, LECTURES_* environment variables and the optional
// config file, in that order of precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.AddConfigPath(HomeDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(cfg *Config) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("mapstructure")
		if name == "-" {
			return ""
		}
		return name
	})

	var msg []string
	switch cfg.Storage.Driver {
	case DriverDuckDB:
		if cfg.Storage.Path == "" {
			msg = append(msg, "storage.path is required")
		}
	case DriverRedis:
		if cfg.Storage.Redis.Addr == "" {
			msg = append(msg, "storage.redis.addr is required")
		}
	}

	err := validate.Struct(cfg)
	var verrs validator.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		return err
	}
	for _, field := range verrs {
		namespace := field.Namespace()
		fieldName := namespace[strings.IndexByte(namespace, '.')+1:]
		switch field.Tag() {
		case "required":
			msg = append(msg, fmt.Sprintf("%s is required", fieldName))
		case "oneof":
			msg = append(msg, fmt.Sprintf("%s must be one of (%s)", fieldName, field.Param()))
		case "url":
			msg = append(msg, fmt.Sprintf("%s must be a URL", fieldName))
		default:
			msg = append(msg, fmt.Sprintf("%s failed %s", fieldName, field.Tag()))
		}
	}
	if len(msg) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config:\n%s", strings.Join(msg, "\n"))
}

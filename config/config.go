package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultEnvFile            = ".env"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSQLitePath          = "vendas.db"
	defaultDocstoreURL         = "mem://{collection}/_id"
	defaultDocstoreCollection  = "dashboard"
	defaultDocstoreProbeTimout = 2 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Database selects the relational driver
	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Docstore configuration for the dashboard document store
	Docstore *DocstoreConfig `json:"docstore" yaml:"docstore"`

	// Report configuration for rendered dashboard reports
	Report *ReportConfig `json:"report" yaml:"report"`

	// Scheduler configuration for periodic jobs
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines which relational store backs the service
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	SQLite struct {
		Path string `json:"path" yaml:"path"`
	} `json:"sqlite" yaml:"sqlite"`
}

// DocstoreConfig defines the document store holding the dashboard
type DocstoreConfig struct {
	// URL is a gocloud.dev/docstore URL template. "{collection}" is replaced by the collection name.
	// Examples: "mem://{collection}/_id", "mongo://vendas/{collection}?id_field=_id"
	URL string `json:"url" yaml:"url"`

	// Collection holding the dashboard and the client counter documents
	Collection string `json:"collection" yaml:"collection"`

	// ProbeTimeout bounds the startup availability check
	ProbeTimeout time.Duration `json:"probeTimeout" yaml:"probeTimeout"`
}

// ReportConfig defines rendering options for reports
type ReportConfig struct {
	// Compress enables PDF stream compression
	Compress bool `json:"compress" yaml:"compress"`
}

// SchedulerConfig defines cron specs for background jobs. An empty spec disables the job.
type SchedulerConfig struct {
	ClientCounterSpec string `json:"clientCounterSpec" yaml:"clientCounterSpec"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: DOCSTORE_PROBETIMEOUT -> docstore.probeTimeout
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	if err := loadEnvFile(defaultEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Database.Driver == DriverPostgres {
		if cfg.Postgres == nil {
			return nil, errors.New("postgres section is required when database.driver is postgres")
		}
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// loadEnvFile populates the process environment from a dotenv file when it exists.
// Variables already set in the environment win.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "stat %s", path)
	}

	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverSQLite
	}
	if cfg.Database.Driver == DriverSQLite && cfg.Database.SQLite.Path == "" {
		cfg.Database.SQLite.Path = defaultSQLitePath
	}

	if cfg.Docstore == nil {
		cfg.Docstore = &DocstoreConfig{}
	}
	if cfg.Docstore.URL == "" {
		cfg.Docstore.URL = defaultDocstoreURL
	}
	if cfg.Docstore.Collection == "" {
		cfg.Docstore.Collection = defaultDocstoreCollection
	}
	if cfg.Docstore.ProbeTimeout <= 0 {
		cfg.Docstore.ProbeTimeout = defaultDocstoreProbeTimout
	}

	if cfg.Report == nil {
		cfg.Report = &ReportConfig{Compress: true}
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

// Package config loads the application configuration from yaml files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
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

	defaultBcryptCost = 10

	defaultOpenDataBaseURL   = "https://public.opendatasoft.com/api/explore/v2.1/catalog/datasets/osm-france-food-service/records"
	defaultOpenDataExportURL = "https://public.opendatasoft.com/api/explore/v2.1/catalog/datasets/osm-france-food-service/exports/json"
	defaultPageSize          = 100
	defaultBatchSize         = 100
	defaultOffsetCeiling     = 10000
	defaultPageDelay         = time.Second
	defaultPageTimeout       = 30 * time.Second
	defaultExportTimeout     = 5 * time.Minute
	defaultMaxExportBytes    = 500 << 20
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// OpenData configures the OSM France food-service source and the sync runs.
	OpenData *OpenDataConfig `json:"opendata" yaml:"opendata"`
}

// Log defines logger output settings.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines authentication-related configuration.
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// OpenDataConfig defines the upstream dataset endpoints and the pacing of
// sync runs against them.
type OpenDataConfig struct {
	// BaseURL is the offset-paginated records endpoint.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// ExportURL is the complete JSON export endpoint.
	ExportURL string `json:"exportUrl" yaml:"exportUrl"`

	// PageSize is the number of records requested per page.
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// BatchSize bounds the bulk-import processing batches. Batching only
	// affects memory use and log granularity; records are upserted one by one.
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// OffsetCeiling is the hard pagination limit of the upstream API.
	// The source refuses offsets at or beyond 10000; runs stop there.
	OffsetCeiling int `json:"offsetCeiling" yaml:"offsetCeiling"`

	// PageDelay is the mandatory pause between page fetches, respecting the
	// upstream rate limit.
	PageDelay time.Duration `json:"pageDelay" yaml:"pageDelay"`

	// PageTimeout bounds a single page fetch so one stalled page does not
	// stall the whole run.
	PageTimeout time.Duration `json:"pageTimeout" yaml:"pageTimeout"`

	// ExportTimeout bounds the bulk export download. The export is large;
	// allow several minutes.
	ExportTimeout time.Duration `json:"exportTimeout" yaml:"exportTimeout"`

	// MaxExportBytes caps the accepted export size.
	MaxExportBytes int64 `json:"maxExportBytes" yaml:"maxExportBytes"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost <= 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}

	cfg.OpenData = cfg.OpenData.withDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// withDefaults fills unset OpenData fields. The ceiling and page delay have
// fixed documented values; everything else is tunable.
func (c *OpenDataConfig) withDefaults() *OpenDataConfig {
	out := &OpenDataConfig{}
	if c != nil {
		*out = *c
	}

	if out.BaseURL == "" {
		out.BaseURL = defaultOpenDataBaseURL
	}
	if out.ExportURL == "" {
		out.ExportURL = defaultOpenDataExportURL
	}
	if out.PageSize <= 0 {
		out.PageSize = defaultPageSize
	}
	if out.BatchSize <= 0 {
		out.BatchSize = defaultBatchSize
	}
	if out.OffsetCeiling <= 0 {
		out.OffsetCeiling = defaultOffsetCeiling
	}
	if out.PageDelay <= 0 {
		out.PageDelay = defaultPageDelay
	}
	if out.PageTimeout <= 0 {
		out.PageTimeout = defaultPageTimeout
	}
	if out.ExportTimeout <= 0 {
		out.ExportTimeout = defaultExportTimeout
	}
	if out.MaxExportBytes <= 0 {
		out.MaxExportBytes = defaultMaxExportBytes
	}

	return out
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
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

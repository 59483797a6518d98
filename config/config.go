package config

import (
	"fmt"
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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	// DriverPostgres selects the gorm/PostgreSQL persistence backend.
	DriverPostgres = "postgres"
	// DriverMemory selects the in-process persistence backend.
	DriverMemory = "memory"
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

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`
}

// DatabaseConfig holds connection and transaction settings for the persistence layer.
type DatabaseConfig struct {
	// Driver is either "postgres" or "memory".
	Driver   string `json:"driver" yaml:"driver"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`
	TimeZone string `json:"timeZone" yaml:"timeZone"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`

	// SlowQueryThreshold is the statement duration above which GORM logs a warning. Zero disables it.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// IsolationLevel is the default level for units of work: readCommitted, repeatableRead or serializable.
	IsolationLevel string `json:"isolationLevel" yaml:"isolationLevel"`

	// AutoMigrate applies the embedded goose migrations on startup.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	Replicas []ConnectionConfig `json:"replicas" yaml:"replicas"`
}

// ConnectionConfig overrides the primary connection for a read replica.
type ConnectionConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
}

// DSN returns the primary connection string in libpq key/value form.
func (c DatabaseConfig) DSN() string {
	return c.dsn(c.Host, c.Port, c.User, c.Password)
}

// ReplicaDSN returns the connection string of a replica, inheriting unset fields from the primary.
func (c DatabaseConfig) ReplicaDSN(replica ConnectionConfig) string {
	user := replica.UserName
	if user == "" {
		user = c.User
	}
	password := replica.Password
	if password == "" {
		password = c.Password
	}
	port := replica.Port
	if port == 0 {
		port = c.Port
	}

	return c.dsn(replica.Host, port, user, password)
}

func (c DatabaseConfig) dsn(host string, port int, user, password string) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		host, port, user, password, c.Name, c.SSLMode, c.TimeZone,
	)
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	// IssueTokens enables access tokens on login and token checks on account routes.
	IssueTokens bool `json:"issueTokens" yaml:"issueTokens"`
}

// PasswordStrengthConfig defines optional signup input requirements
type PasswordStrengthConfig struct {
	MinLength          int  `json:"minLength" yaml:"minLength"`
	MaxLength          int  `json:"maxLength" yaml:"maxLength"`
	RequireUppercase   bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase   bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers     bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial     bool `json:"requireSpecial" yaml:"requireSpecial"`
	RequireEmailFormat bool `json:"requireEmailFormat" yaml:"requireEmailFormat"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Default returns the configuration used when neither the YAML file nor the environment set a value.
func Default() *Config {
	cfg := &Config{}
	cfg.Env.Env = "local"
	cfg.Env.ServiceName = "major-explorer"
	cfg.Env.Log.Level = "info"

	cfg.HTTP.Port = 5000
	cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 60 * time.Second

	cfg.Database = DatabaseConfig{
		Driver:             DriverPostgres,
		Host:               "localhost",
		Port:               5432,
		User:               "postgres",
		Name:               "college_major_db",
		SSLMode:            "disable",
		TimeZone:           "UTC",
		MaxOpenConns:       20,
		MaxIdleConns:       5,
		ConnMaxLifetime:    30 * time.Minute,
		SlowQueryThreshold: 200 * time.Millisecond,
		IsolationLevel:     "readCommitted",
	}

	cfg.Auth = AuthConfig{
		BcryptCost:     10,
		AccessTokenTTL: 15 * time.Minute,
		IssueTokens:    true,
	}

	return cfg
}

// LoadWithEnv layers an optional <name>.yaml file and environment variables over base through koanf.
func LoadWithEnv[T any](base *T, name string, configPath ...string) (*T, error) {
	cfg := base
	if cfg == nil {
		cfg = new(T)
	}
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile != "" {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", name)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DATABASE_SSLMODE -> database.sslMode when the YAML tree knows the key.
			return canonicalizeEnvKey(k, existingConfigMap), v
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
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

// New loads .env, config/config.yaml and the environment on top of Default.
func New() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv(Default(), "config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := applyLegacyDatabaseEnv(&cfg.Database); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	replicas, err := buildReplicasFromEnv()
	if err != nil {
		return nil, err
	}
	if len(replicas) > 0 {
		cfg.Database.Replicas = replicas
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return errors.Errorf("unknown database driver: %q", c.Database.Driver)
	}

	if c.Auth.IssueTokens && c.SecretKey.Access == "" {
		return errors.New("secretKey.access is required when auth.issueTokens is enabled")
	}

	return nil
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

// applyLegacyDatabaseEnv honours the DB_USER, DB_PASSWORD, DB_HOST, DB_NAME and DB_PORT variables.
func applyLegacyDatabaseEnv(db *DatabaseConfig) error {
	if v := os.Getenv("DB_HOST"); v != "" {
		db.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		db.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		db.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		db.Name = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid DB_PORT %q", v)
		}
		db.Port = port
	}

	return nil
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: DATABASE_REPLICAS_{index}_{field}
// Example: DATABASE_REPLICAS_0_HOST, DATABASE_REPLICAS_0_PORT, DATABASE_REPLICAS_0_USERNAME, DATABASE_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() ([]ConnectionConfig, error) {
	var replicas []ConnectionConfig

	for i := 0; ; i++ {
		prefix := "DATABASE_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %sPORT %q", prefix, port)
		}

		replicas = append(replicas, ConnectionConfig{
			Host:     host,
			Port:     portNum,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Gemini       Gemini       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Storage      Storage      `mapstructure:",squash"`
	Sync         Sync         `mapstructure:",squash"`
	DueItemsSync DueItemsSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	MigrateOnStart bool   `mapstructure:"database_migrate_on_start"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

// Gemini agrupa a configuração do gateway de IA.
// LightModel atende extração e chat; HeavyModel atende a redação de relatórios.
type Gemini struct {
	APIKey         string        `mapstructure:"gemini_api_key"`
	LightModel     string        `mapstructure:"gemini_light_model"`
	HeavyModel     string        `mapstructure:"gemini_heavy_model"`
	ThinkingBudget int           `mapstructure:"gemini_thinking_budget"`
	RequestTimeout time.Duration `mapstructure:"gemini_request_timeout"`
}

type App struct {
	LogLevel       string `mapstructure:"log_level"`
	InstanceID     string `mapstructure:"instance_id"`
	BootstrapAdmin string `mapstructure:"bootstrap_admin"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	AccessKeyHash string        `mapstructure:"auth_access_key_hash"`
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
}

// Storage define as chaves usadas no armazenamento chave-valor.
type Storage struct {
	SnapshotKey string `mapstructure:"storage_snapshot_key"`
	BrandingKey string `mapstructure:"storage_branding_key"`
	LanguageKey string `mapstructure:"storage_language_key"`
	ViewKey     string `mapstructure:"storage_view_key"`
	IdentityKey string `mapstructure:"storage_identity_key"`
}

type Sync struct {
	Channel              string        `mapstructure:"sync_channel"`
	Enabled              bool          `mapstructure:"sync_enabled"`
	MinReconnectInterval time.Duration `mapstructure:"sync_min_reconnect_interval"`
	MaxReconnectInterval time.Duration `mapstructure:"sync_max_reconnect_interval"`
}

type DueItemsSync struct {
	CronSchedule string `mapstructure:"due_items_sync_cron"`
	Enabled      bool   `mapstructure:"due_items_sync_enabled"`
}

// DefaultSecretKey é o segredo de fábrica, conhecido por qualquer um.
const DefaultSecretKey = "your_secret_key"

var ErrInsecureAuth = errors.New("SECRET_KEY padrão sem AUTH_ACCESS_KEY_HASH: qualquer um pode emitir tokens")

// Validate recusa a combinação de segredo padrão com troca de identidade
// simulada. Em desenvolvimento apenas avisa.
func (c *Config) Validate(development bool) error {
	if c.Auth.Secret != DefaultSecretKey || c.Auth.AccessKeyHash != "" {
		return nil
	}
	if development {
		logrus.Warn(ErrInsecureAuth.Error())
		return nil
	}
	return ErrInsecureAuth
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/maestria?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE_ON_START", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_LIGHT_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_HEAVY_MODEL", "gemini-2.5-pro")
	viper.SetDefault("GEMINI_THINKING_BUDGET", 2048)
	viper.SetDefault("GEMINI_REQUEST_TIMEOUT", "60s")

	viper.SetDefault("SECRET_KEY", DefaultSecretKey)
	viper.SetDefault("AUTH_ACCESS_KEY_HASH", "") // vazio: troca de identidade simulada
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("STORAGE_SNAPSHOT_KEY", "maestria_data")
	viper.SetDefault("STORAGE_BRANDING_KEY", "maestria_branding")
	viper.SetDefault("STORAGE_LANGUAGE_KEY", "maestria_lang")
	viper.SetDefault("STORAGE_VIEW_KEY", "maestria_view")
	viper.SetDefault("STORAGE_IDENTITY_KEY", "maestria_auth")

	viper.SetDefault("SYNC_CHANNEL", "maestria_storage")
	viper.SetDefault("SYNC_ENABLED", true)
	viper.SetDefault("SYNC_MIN_RECONNECT_INTERVAL", "10s")
	viper.SetDefault("SYNC_MAX_RECONNECT_INTERVAL", "1m")

	viper.SetDefault("DUE_ITEMS_SYNC_CRON", "5 0 * * *") // Todos os dias às 00:05
	viper.SetDefault("DUE_ITEMS_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("INSTANCE_ID", "")
	viper.SetDefault("BOOTSTRAP_ADMIN", "Administrador") // usado só com DATABASE_DRIVER=memory
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Auth.Secret == "" {
		config.Auth.Secret = config.SecretKey
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Report       Report       `mapstructure:",squash"`
	ReportDigest ReportDigest `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret  string `mapstructure:"auth_secret"`
	Enabled bool   `mapstructure:"auth_enabled"`
}

// Report agrupa os parâmetros de geração do relatório
type Report struct {
	Currency          string  `mapstructure:"report_currency"`
	LookbackDays      int     `mapstructure:"report_lookback_days"`
	FatigueRecentDays int     `mapstructure:"report_fatigue_recent_days"`
	TargetCPA         float64 `mapstructure:"report_target_cpa"`
}

// ReportDigest configura o envio agendado do relatório para o log
type ReportDigest struct {
	CronSchedule      string   `mapstructure:"report_digest_cron"`
	Enabled           bool     `mapstructure:"report_digest_enabled"`
	AccountIDs        []string `mapstructure:"report_digest_account_ids"`
	MaxConcurrentJobs int      `mapstructure:"report_digest_max_concurrent"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/traffic")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ENABLED", true)

	// Defaults do relatório
	viper.SetDefault("REPORT_CURRENCY", "$")
	viper.SetDefault("REPORT_LOOKBACK_DAYS", 28)      // 4 semanas de histórico
	viper.SetDefault("REPORT_FATIGUE_RECENT_DAYS", 3) // janela recente da tabela de fadiga
	viper.SetDefault("REPORT_TARGET_CPA", 0)          // 0 = usa o CPA do próprio período

	viper.SetDefault("REPORT_DIGEST_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("REPORT_DIGEST_ENABLED", false)
	viper.SetDefault("REPORT_DIGEST_ACCOUNT_IDS", "") // vazio = todas as contas com dados
	viper.SetDefault("REPORT_DIGEST_MAX_CONCURRENT", 4)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MinLookbackDays cobre a semana atual e as duas semanas de comparação
const MinLookbackDays = 21

// Validate corrige valores fora do intervalo aceito e rejeita combinações inválidas
func (c *Config) Validate() error {
	if c.Report.LookbackDays < MinLookbackDays {
		logrus.Warnf("REPORT_LOOKBACK_DAYS=%d não cobre a semana atual e as duas anteriores, usando %d",
			c.Report.LookbackDays, MinLookbackDays)
		c.Report.LookbackDays = MinLookbackDays
	}

	if c.Report.FatigueRecentDays <= 0 {
		c.Report.FatigueRecentDays = 3
	}

	if c.Report.Currency == "" {
		c.Report.Currency = "$"
	}

	if c.Report.TargetCPA < 0 {
		return fmt.Errorf("config: REPORT_TARGET_CPA não pode ser negativo: %v", c.Report.TargetCPA)
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("config: AUTH_SECRET é obrigatório quando AUTH_ENABLED=true")
	}

	c.ReportDigest.AccountIDs = nonEmpty(c.ReportDigest.AccountIDs)
	c.Server.CorsOrigins = nonEmpty(c.Server.CorsOrigins)

	return nil
}

// nonEmpty remove itens vazios; StringToSliceHookFunc transforma "" em [""]
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

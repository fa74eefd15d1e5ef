package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/retail-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/retail-insights-api/internal/usecases/metrics"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Analytics       Analytics       `mapstructure:",squash"`
	Forecast        Forecast        `mapstructure:",squash"`
	StrategicDigest StrategicDigest `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"server_read_timeout"`
	WriteTimeout time.Duration `mapstructure:"server_write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"server_idle_timeout"`

	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

// Analytics agrupa os limites de classificação de filiais e regiões
type Analytics struct {
	EfficiencyDanger       float64 `mapstructure:"analytics_efficiency_danger"`
	EfficiencyWarning      float64 `mapstructure:"analytics_efficiency_warning"`
	EfficiencyStar         float64 `mapstructure:"analytics_efficiency_star"`
	PenetrationOpportunity float64 `mapstructure:"analytics_penetration_opportunity"`
	PenetrationSaturated   float64 `mapstructure:"analytics_penetration_saturated"`
	PenetrationGrowth      float64 `mapstructure:"analytics_penetration_growth"`
	OpportunityPopulation  int64   `mapstructure:"analytics_opportunity_population"`
}

// Forecast agrupa os parâmetros do modelo de previsão
type Forecast struct {
	MinHistoryMonths int     `mapstructure:"forecast_min_history_months"`
	HorizonMonths    int     `mapstructure:"forecast_horizon_months"`
	FallbackGrowth   float64 `mapstructure:"forecast_fallback_growth"`
	HighGrowth       float64 `mapstructure:"forecast_high_growth"`
	LowGrowth        float64 `mapstructure:"forecast_low_growth"`
}

type StrategicDigest struct {
	CronSchedule string `mapstructure:"strategic_digest_cron"`
	Enabled      bool   `mapstructure:"strategic_digest_enabled"`
}

// Thresholds converte a configuração nos limites usados pelos cálculos
func (a Analytics) Thresholds() metrics.Thresholds {
	return metrics.Thresholds{
		EfficiencyDanger:       decimal.NewFromFloat(a.EfficiencyDanger),
		EfficiencyWarning:      decimal.NewFromFloat(a.EfficiencyWarning),
		EfficiencyStar:         decimal.NewFromFloat(a.EfficiencyStar),
		PenetrationOpportunity: decimal.NewFromFloat(a.PenetrationOpportunity),
		PenetrationSaturated:   decimal.NewFromFloat(a.PenetrationSaturated),
		PenetrationGrowth:      decimal.NewFromFloat(a.PenetrationGrowth),
		OpportunityPopulation:  a.OpportunityPopulation,
	}
}

// EngineConfig converte a configuração nos parâmetros do motor de previsão
func (f Forecast) EngineConfig() forecasting.Config {
	return forecasting.Config{
		MinHistoryMonths: f.MinHistoryMonths,
		HorizonMonths:    f.HorizonMonths,
		FallbackGrowth:   decimal.NewFromFloat(f.FallbackGrowth),
		HighGrowth:       decimal.NewFromFloat(f.HighGrowth),
		LowGrowth:        decimal.NewFromFloat(f.LowGrowth),
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	viper.SetDefault("SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	// Limites de eficiência das filiais (score relativo à média da cidade)
	viper.SetDefault("ANALYTICS_EFFICIENCY_DANGER", 70)
	viper.SetDefault("ANALYTICS_EFFICIENCY_WARNING", 90)
	viper.SetDefault("ANALYTICS_EFFICIENCY_STAR", 130)

	// Limites do índice de penetração das regiões
	viper.SetDefault("ANALYTICS_PENETRATION_OPPORTUNITY", 60)
	viper.SetDefault("ANALYTICS_PENETRATION_SATURATED", 150)
	viper.SetDefault("ANALYTICS_PENETRATION_GROWTH", 80)
	viper.SetDefault("ANALYTICS_OPPORTUNITY_POPULATION", 250000)

	viper.SetDefault("FORECAST_MIN_HISTORY_MONTHS", 12)
	viper.SetDefault("FORECAST_HORIZON_MONTHS", 6)
	viper.SetDefault("FORECAST_FALLBACK_GROWTH", 0.05) // Taxa assumida sem 12 meses anteriores
	viper.SetDefault("FORECAST_HIGH_GROWTH", 0.20)
	viper.SetDefault("FORECAST_LOW_GROWTH", 0)

	viper.SetDefault("STRATEGIC_DIGEST_CRON", "0 7 * * 1") // Toda segunda-feira às 7h da manhã
	viper.SetDefault("STRATEGIC_DIGEST_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
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

	if err := config.Validate(); err != nil {
		return nil, err
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

// Validate verifica os parâmetros que invalidariam os cálculos
func (c *Config) Validate() error {
	if c.Analytics.EfficiencyDanger > c.Analytics.EfficiencyWarning {
		return fmt.Errorf("limite de perigo (%v) maior que o de atenção (%v)", c.Analytics.EfficiencyDanger, c.Analytics.EfficiencyWarning)
	}
	if c.Forecast.MinHistoryMonths <= 0 || c.Forecast.HorizonMonths <= 0 {
		return fmt.Errorf("parâmetros de previsão inválidos: histórico mínimo %d, horizonte %d", c.Forecast.MinHistoryMonths, c.Forecast.HorizonMonths)
	}
	if c.Forecast.LowGrowth > c.Forecast.HighGrowth {
		return fmt.Errorf("taxa de cautela (%v) maior que a de crescimento (%v)", c.Forecast.LowGrowth, c.Forecast.HighGrowth)
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Dataset    Dataset    `mapstructure:",squash"`
	Gemini     Gemini     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dataset struct {
	// Path é o caminho do CSV de atividade de marketing a ser analisado
	Path string `mapstructure:"dataset_path"`
}

type Gemini struct {
	// APIKey é o segredo fornecido uma vez por execução; nunca é persistido
	APIKey string `mapstructure:"gemini_api_key"`
	// ModelPriorities é a lista de identificadores em ordem de preferência,
	// do motor de raciocínio mais capaz para o legado
	ModelPriorities []string `mapstructure:"gemini_model_priorities"`
	// FamilyMarker é o marcador amplo usado como último recurso da descoberta
	FamilyMarker          string  `mapstructure:"gemini_family_marker"`
	Temperature           float32 `mapstructure:"gemini_temperature"`
	TopK                  float32 `mapstructure:"gemini_top_k"`
	GenerationTimeoutSecs int     `mapstructure:"gemini_generation_timeout_seconds"`
}

type Auth struct {
	// Secret assina os tokens da API de relatórios; vazio desabilita a autenticação
	Secret string `mapstructure:"auth_secret"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_PATH", "")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL_PRIORITIES", "models/gemini-1.5-pro,models/gemini-1.5-flash,models/gemini-pro")
	viper.SetDefault("GEMINI_FAMILY_MARKER", "gemini")
	viper.SetDefault("GEMINI_TEMPERATURE", 0.7) // Equilibra criatividade com consistência profissional
	viper.SetDefault("GEMINI_TOP_K", 40)
	viper.SetDefault("GEMINI_GENERATION_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("REPORT_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Provider names accepted by Config.EmbeddingProvider.
const (
	ProviderOpenAI = "openai"
	ProviderGoogle = "google"
	ProviderHash   = "hash"
)

// Config holds application configuration
type Config struct {
	EmbeddingProvider string `json:"embedding_provider"`
	EmbeddingModel    string `json:"embedding_model,omitempty"`
	JSearchAPIKey     string `json:"jsearch_api_key,omitempty"`
	OpenAIAPIKey      string `json:"openai_api_key,omitempty"`
	GeminiAPIKey      string `json:"gemini_api_key,omitempty"`
	Query             string `json:"query"`
	Location          string `json:"location"`
	MaxJobs           int    `json:"max_jobs"`
	TopN              int    `json:"top_n"`
	JobsFile          string `json:"jobs_file"`
	RankedFile        string `json:"ranked_file"`
	ParsedResumeFile  string `json:"parsed_resume_file"`
	ExcelReportFile   string `json:"excel_report_file,omitempty"`
}

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	return &Config{
		EmbeddingProvider: ProviderHash,
		Query:             "data scientist",
		Location:          "New York",
		MaxJobs:           50,
		TopN:              50,
		JobsFile:          "jsearch_jobs_data.csv",
		RankedFile:        "ranked_jobs.csv",
		ParsedResumeFile:  "parsed_resume.txt",
	}
}

// GetConfigPath returns the path to the configuration file
// On Windows: %APPDATA%/JobMatchAgent/config.json
// On Unix: ~/.config/JobMatchAgent/config.json
func GetConfigPath() (string, error) {
	var configDir string

	if os.Getenv("APPDATA") != "" {
		// Windows
		configDir = filepath.Join(os.Getenv("APPDATA"), "JobMatchAgent")
	} else {
		// Unix-like systems
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "JobMatchAgent")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load loads configuration from the default config path
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the default config path
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FillFromEnv fills empty API keys from the environment, so secrets can
// live in the environment (or a .env file) instead of the config file.
func (c *Config) FillFromEnv() {
	if c.JSearchAPIKey == "" {
		c.JSearchAPIKey = os.Getenv("JSEARCH_API_KEY")
	}
	if c.OpenAIAPIKey == "" {
		c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.EmbeddingProvider {
	case ProviderHash:
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("openai_api_key is required for the openai provider")
		}
	case ProviderGoogle:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("gemini_api_key is required for the google provider")
		}
	default:
		return fmt.Errorf("unknown embedding provider: %q", c.EmbeddingProvider)
	}

	if c.MaxJobs <= 0 {
		return fmt.Errorf("max_jobs must be positive")
	}

	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive")
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	League struct {
		ILCapacity        int     `yaml:"il_capacity"`
		BenchSlots        int     `yaml:"bench_slots"`
		LowRankThreshold  int     `yaml:"low_rank_threshold"`
		WaiverRankCeiling int     `yaml:"waiver_rank_ceiling"`
		WaiverMinMPG      float64 `yaml:"waiver_min_mpg"`
		WaiverMinGames    int     `yaml:"waiver_min_games"`
		FreeAgentLimit    int     `yaml:"free_agent_limit"`
	} `yaml:"league"`
	Platform struct {
		BaseURL  string `yaml:"base_url"`
		Token    string `yaml:"token"`
		LeagueID string `yaml:"league_id"`
		TeamID   string `yaml:"team_id"`
	} `yaml:"platform"`
	Rankings struct {
		BaseURL   string `yaml:"base_url"`
		APIKey    string `yaml:"api_key"`
		CacheFile string `yaml:"cache_file"`
		CacheTTL  int    `yaml:"cache_ttl_hours"`
	} `yaml:"rankings"`
	Schedule struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"schedule"`
	Cron struct {
		Daily  string `yaml:"daily"`
		Weekly string `yaml:"weekly_untouchables"`
	} `yaml:"cron"`
	Email struct {
		SMTPHost string `yaml:"smtp_host"`
		SMTPPort int    `yaml:"smtp_port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
		To       string `yaml:"to"`
	} `yaml:"email"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	UntouchablesFile string `yaml:"untouchables_file"`
	Proxy            string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PLATFORM_BASE_URL"); v != "" {
		cfg.Platform.BaseURL = v
	}
	if v := os.Getenv("PLATFORM_TOKEN"); v != "" {
		cfg.Platform.Token = v
	}
	if v := os.Getenv("LEAGUE_ID"); v != "" {
		cfg.Platform.LeagueID = v
	}
	if v := os.Getenv("TEAM_ID"); v != "" {
		cfg.Platform.TeamID = v
	}
	if v := os.Getenv("RANKINGS_API_KEY"); v != "" {
		cfg.Rankings.APIKey = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = n
		}
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		cfg.Email.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.Password = v
	}
	if v := os.Getenv("REPORT_TO"); v != "" {
		cfg.Email.To = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Cron.Daily = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.League.ILCapacity == 0 {
		cfg.League.ILCapacity = 3
	}
	if cfg.League.BenchSlots == 0 {
		cfg.League.BenchSlots = 3
	}
	if cfg.League.LowRankThreshold == 0 {
		cfg.League.LowRankThreshold = 60
	}
	if cfg.League.WaiverRankCeiling == 0 {
		cfg.League.WaiverRankCeiling = 96
	}
	if cfg.League.WaiverMinMPG == 0 {
		cfg.League.WaiverMinMPG = 28.0
	}
	if cfg.League.WaiverMinGames == 0 {
		cfg.League.WaiverMinGames = 5
	}
	if cfg.League.FreeAgentLimit == 0 {
		cfg.League.FreeAgentLimit = 150
	}
	if cfg.Schedule.BaseURL == "" {
		cfg.Schedule.BaseURL = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	}
	if cfg.Cron.Daily == "" {
		cfg.Cron.Daily = "0 0 2 * * *"
	}
	if cfg.Cron.Weekly == "" {
		// Monday morning, ahead of the daily run that publishes the list.
		cfg.Cron.Weekly = "0 0 9 * * 1"
	}
	if cfg.Rankings.CacheFile == "" {
		cfg.Rankings.CacheFile = "data/rankings_cache.json"
	}
	if cfg.Rankings.CacheTTL == 0 {
		cfg.Rankings.CacheTTL = 20
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/hoops_sentinel.db"
	}
	if cfg.UntouchablesFile == "" {
		cfg.UntouchablesFile = "data/untouchables.json"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Platform.BaseURL == "" {
		return fmt.Errorf("platform.base_url is required")
	}
	if c.Platform.LeagueID == "" {
		return fmt.Errorf("platform.league_id is required")
	}
	if c.Platform.TeamID == "" {
		return fmt.Errorf("platform.team_id is required")
	}
	if c.Email.SMTPHost == "" {
		return fmt.Errorf("email.smtp_host is required")
	}
	if c.Email.From == "" || c.Email.To == "" {
		return fmt.Errorf("email.from and email.to are required")
	}
	return nil
}

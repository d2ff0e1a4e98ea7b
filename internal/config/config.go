package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Input   InputConfig   `yaml:"input" mapstructure:"input"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Columns ColumnsConfig `yaml:"columns" mapstructure:"columns"`
	Dates   DatesConfig   `yaml:"dates" mapstructure:"dates"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// InputConfig locates the two award extracts.
type InputConfig struct {
	Phase1   string   `yaml:"phase1" mapstructure:"phase1"`
	Phase2   string   `yaml:"phase2" mapstructure:"phase2"`
	NAValues []string `yaml:"na_values" mapstructure:"na_values"`
}

// OutputConfig configures the cleaned export.
type OutputConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ColumnsConfig names the source columns the checks read.
type ColumnsConfig struct {
	Amount       string `yaml:"amount" mapstructure:"amount"`
	Department   string `yaml:"department" mapstructure:"department"`
	Organization string `yaml:"organization" mapstructure:"organization"`
	CityProvince string `yaml:"city_province" mapstructure:"city_province"`
	Province     string `yaml:"province" mapstructure:"province"`
	AwardDate    string `yaml:"award_date" mapstructure:"award_date"`
}

// Required returns the configured column names in a fixed order.
func (c ColumnsConfig) Required() []string {
	return []string{c.Amount, c.Department, c.Organization, c.CityProvince, c.Province, c.AwardDate}
}

// DatesConfig lists the layouts tried, in order, when parsing award dates.
type DatesConfig struct {
	Layouts []string `yaml:"layouts" mapstructure:"layouts"`
}

// ReportConfig configures the console quality report.
type ReportConfig struct {
	Format          string `yaml:"format" mapstructure:"format"`
	DepartmentProbe string `yaml:"department_probe" mapstructure:"department_probe"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultNAValues are the cell values read as absent. Matches the token set
// pandas treats as NA when reading CSV.
var DefaultNAValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// DefaultDateLayouts are tried in order until one parses.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02-Jan-2006",
	"2006-01",
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AWARDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("input.phase1", "Phase 1 award recipients text.csv")
	v.SetDefault("input.phase2", "Phase 2 award recipients text.csv")
	v.SetDefault("input.na_values", DefaultNAValues)
	v.SetDefault("output.path", "ised_awards_cleaned.csv")
	v.SetDefault("output.format", "")
	v.SetDefault("columns.amount", "Awarded amount (*Applicable taxes included)")
	v.SetDefault("columns.department", "Department")
	v.SetDefault("columns.organization", "Innovator")
	v.SetDefault("columns.city_province", "City, Province or Territory")
	v.SetDefault("columns.province", "Province")
	v.SetDefault("columns.award_date", "Award date")
	v.SetDefault("dates.layouts", DefaultDateLayouts)
	v.SetDefault("report.format", "text")
	v.SetDefault("report.department_probe", "national research council")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Input.Phase1 == "" || c.Input.Phase2 == "" {
		return eris.New("config: both input.phase1 and input.phase2 are required")
	}
	if c.Output.Path == "" {
		return eris.New("config: output.path is required")
	}
	for _, col := range c.Columns.Required() {
		if strings.TrimSpace(col) == "" {
			return eris.New("config: every columns.* entry must name a column")
		}
	}
	switch c.Output.Format {
	case "", "csv", "xlsx":
	default:
		return eris.Errorf("config: unsupported output.format %q", c.Output.Format)
	}
	switch c.Report.Format {
	case "text", "yaml":
	default:
		return eris.Errorf("config: unsupported report.format %q", c.Report.Format)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

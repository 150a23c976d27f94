package cmd

import (
	"log"

	"github.com/spigell/resume-ranker/internal/match"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-ranker"
)

type Config struct {
	JobDescription string               `mapstructure:"job-description"`
	ResumesDir     string               `mapstructure:"resumes-dir"`
	ExcludeFile    string               `mapstructure:"exclude-file"`
	MinimumScore   float64              `mapstructure:"minimum-score"`
	Scoring        *match.ScoringConfig `mapstructure:"scoring"`
	Taxonomy       map[string]any       `mapstructure:"taxonomy"`
	Report         *ReportConfig        `mapstructure:"report"`
}

type ReportConfig struct {
	CSVFile string `mapstructure:"csv-file"`
	Top     int    `mapstructure:"top"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-ranker is a simple cli for scoring a batch of resumes against a job description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("resumes-dir", "RESUME_RANKER_RESUMES_DIR"); err != nil {
		log.Fatalf("binding RESUME_RANKER_RESUMES_DIR environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-ranker.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/internal/iofs"
	"github.com/gnames/herbdb/internal/iologger"
	"github.com/gnames/herbdb/internal/iometrics"
	app "github.com/gnames/herbdb/pkg"
	"github.com/gnames/herbdb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	opts      []config.Option
	cfg       *config.Config
	metrics   *iometrics.Metrics
	logCloser io.Closer

	// outFormat is either "text" or "json".
	outFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "herbdb",
	Short:   "Catalog of medicinal plants and their uses",
	Long: `herbdb keeps an inventory of medicinal plants and the medicinal uses
they are known for.

Plants and uses are stored in PostgreSQL or in an embedded SQLite file.
Plants can be filtered by stock, quantity, order status and medicinal
use, searched by name, and decorated with images from Trefle.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (HERBDB_*)
  3. Config file (~/.config/herbdb/config.yaml)
  4. Built-in defaults

Examples:
  herbdb create --example
  herbdb plants list --stock in_stock --order null
  herbdb plants add --scientific "Zingiber officinale" --common Ginger \
    --stock in_stock --use-name "Nausea Relief"
  herbdb search gin`,
	PersistentPreRunE:  bootstrap,
	PersistentPostRunE: shutdown,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	if err = checkFormat(); err != nil {
		return err
	}

	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})
	if cfg.Database.Path == "" {
		cfg.Update([]config.Option{
			config.OptDatabasePath(config.SQLitePath(homeDir)),
		})
	}

	logCloser, err = iologger.Init(config.LogDir(homeDir), cfg.Log, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	metrics = iometrics.New()

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
		"command", cmd.CommandPath(),
	)

	return nil
}

func shutdown(_ *cobra.Command, _ []string) error {
	if cfg != nil && cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			gn.PrintErrorMessage(err)
		}
	}
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

func checkFormat() error {
	switch outFormat {
	case "text", "json":
		return nil
	default:
		err := fmt.Errorf("unknown output format %q", outFormat)
		gn.Warn("Output format can be <em>text</em> or <em>json</em>, got '%s'",
			outFormat)
		return err
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "herbdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for herbdb")

	rootCmd.PersistentFlags().StringVar(&outFormat, "format", "text",
		"output format: text or json")

	rootCmd.AddCommand(
		getCreateCmd(),
		getPlantsCmd(),
		getUsesCmd(),
		getSearchCmd(),
		getImagesCmd(),
		getSeedCmd(),
		getOptimizeCmd(),
	)
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("HERBDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "HERBDB_DATABASE_DRIVER")
	v.BindEnv("database.host", "HERBDB_DATABASE_HOST")
	v.BindEnv("database.port", "HERBDB_DATABASE_PORT")
	v.BindEnv("database.user", "HERBDB_DATABASE_USER")
	v.BindEnv("database.password", "HERBDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "HERBDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "HERBDB_DATABASE_SSL_MODE")
	v.BindEnv("database.path", "HERBDB_DATABASE_PATH")
	v.BindEnv("database.max_conns", "HERBDB_DATABASE_MAX_CONNS")

	// Images configuration
	v.BindEnv("images.base_url", "HERBDB_IMAGES_BASE_URL")
	v.BindEnv("images.token", "HERBDB_IMAGES_TOKEN")
	v.BindEnv("images.timeout", "HERBDB_IMAGES_TIMEOUT")

	// Log configuration
	v.BindEnv("log.level", "HERBDB_LOG_LEVEL")
	v.BindEnv("log.format", "HERBDB_LOG_FORMAT")
	v.BindEnv("log.destination", "HERBDB_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "HERBDB_JOBS_NUMBER")
	v.BindEnv("metrics_file", "HERBDB_METRICS_FILE")

	v.AutomaticEnv()
}

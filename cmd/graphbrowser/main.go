package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rmorlok/graphbrowser/internal/api_common"
	"github.com/rmorlok/graphbrowser/internal/config"
	"github.com/rmorlok/graphbrowser/internal/configschema"
	"github.com/rmorlok/graphbrowser/internal/service"
	"github.com/rmorlok/graphbrowser/internal/service/browser"
	"github.com/rmorlok/graphbrowser/internal/util"
	"github.com/spf13/cobra"
)

const ConfigEnvVar = "GRAPHBROWSER_CONFIG"

var cfgFile string
var cfg config.C

func loadConfig() error {
	if cfgFile == "" {
		cfgFile = util.GetEnvDefault(ConfigEnvVar, "")
	}

	if cfgFile == "" {
		return errors.New("no configuration file found; must be specified with --config or " + ConfigEnvVar + " environment variable")
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	return errors.Wrapf(err, "failed to load configuration from '%s'", cfgFile)
}

func banner() {
	banner := `
   ______                 __    ____
  / ____/________ _____  / /_  / __ )_________ _      __________  _____
 / / __/ ___/ __ '/ __ \/ __ \/ __  / ___/ __ \ | /| / / ___/ _ \/ ___/
/ /_/ / /  / /_/ / /_/ / / / / /_/ / /  / /_/ / |/ |/ (__  )  __/ /
\____/_/   \__,_/ .___/_/ /_/_____/_/   \____/|__/|__/____/\___/_/
               /_/
`
	color.Green(banner)
}

func cmdServe() *cobra.Command {
	var noBanner bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the browser service",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !noBanner {
				banner()
			}

			return browser.Serve(cfg)
		},
	}

	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "Don't show banner")

	return cmd
}

func cmdRoutes() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print routes exposed by app",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
		Run: func(cmd *cobra.Command, args []string) {
			dm := service.NewDependencyManager(browser.ServiceId, cfg)
			defer dm.GetRegistry().Stop()
			api_common.PrintRoutes(browser.GetGinEngine(dm))
		},
	}
}

func cmdSchema() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print a JSON Schema for the config file reflected from the config structs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath != "" {
				data, err := configschema.Generate(outPath)
				if err != nil {
					return err
				}

				color.Cyan("wrote %s (size=%d bytes)", outPath, len(data))
				return nil
			}

			data, err := configschema.Reflect()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the schema to a file instead of stdout")

	return cmd
}

func main() {
	// Optionally load environment variables from a .env file.
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:          "graphbrowser",
		Short:        "Browse Microsoft Graph sites, drives, containers and users",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file; may also be specified in "+ConfigEnvVar)

	rootCmd.AddCommand(cmdServe())
	rootCmd.AddCommand(cmdRoutes())
	rootCmd.AddCommand(cmdSchema())
	rootCmd.AddCommand(cmdList())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

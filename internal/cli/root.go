// Package cli implements assistantctl, a small command line client of the
// Assistant v1 and v2 APIs.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/watson-developer-cloud/assistant-go-sdk/assistantv1"
	"github.com/watson-developer-cloud/assistant-go-sdk/assistantv2"
	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

const (
	envPrefix          = "ASSISTANT"
	defaultVersionDate = "2018-09-20"
)

var globalFlags = []string{"url", "apikey", "username", "password", "version-date", "json"}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the assistantctl command tree. Every call gets its own
// configuration, so commands can be run side by side in tests.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "assistantctl",
		Short:         "Command line client for Watson Assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       core.ClientVersion(),
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/assistantctl/config.yaml or ~/.config/assistantctl/config.yaml)")
	flags.String("url", "", "service URL (default "+assistantv1.DefaultServiceURL+")")
	flags.String("apikey", "", "IAM API key")
	flags.String("username", "", "service username")
	flags.String("password", "", "service password")
	flags.String("version-date", defaultVersionDate, "API version date, YYYY-MM-DD")
	flags.Bool("json", false, "print raw JSON instead of tables")
	for _, name := range globalFlags {
		_ = a.v.BindPFlag(configKey(name), flags.Lookup(name))
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig(a.v, cfgFile)
	}

	rootCmd.AddCommand(newWorkspacesCmd(a))
	rootCmd.AddCommand(newValuesCmd(a))
	rootCmd.AddCommand(newSessionCmd(a))
	rootCmd.AddCommand(newCallCmd(a))
	return rootCmd
}

func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// initConfig reads the config file, if any, and ASSISTANT_* variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			v.AddConfigPath(filepath.Join(xdgConfigHome, "assistantctl"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "assistantctl"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

type app struct {
	v *viper.Viper
}

func (a *app) serviceConfig() *core.ServiceConfig {
	return &core.ServiceConfig{
		URL:       a.v.GetString("url"),
		Version:   a.v.GetString("version_date"),
		IAMApiKey: a.v.GetString("apikey"),
		Username:  a.v.GetString("username"),
		Password:  a.v.GetString("password"),
	}
}

func (a *app) v1() (*assistantv1.Service, error) {
	return assistantv1.NewService(a.serviceConfig())
}

func (a *app) v2() (*assistantv2.Service, error) {
	return assistantv2.NewService(a.serviceConfig())
}

// print renders model as JSON or, when listKey names the collection field,
// as one table per item.
func (a *app) print(cmd *cobra.Command, model any, listKey string) error {
	record, err := core.ModelToRecord(model)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if a.v.GetBool("json") {
		fmt.Fprintln(out, record.PrettyJson("  "))
		return nil
	}
	if listKey != "" {
		fmt.Fprintln(out, record.RecordSetFrom(listKey).PrettyTable())
		return nil
	}
	fmt.Fprintln(out, record.PrettyTable())
	return nil
}

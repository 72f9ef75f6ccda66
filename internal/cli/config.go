package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/idelchi/cachesweep/internal/cachesweep"
	"github.com/idelchi/cachesweep/internal/locations"
	"github.com/idelchi/cachesweep/internal/scaffold"
)

// envPrefix is the prefix of environment variables overriding configuration.
const envPrefix = "CACHESWEEP"

// fileConfig mirrors the keys of the configuration file.
type fileConfig struct {
	Directories []string `yaml:"directories"`
	Depth       int      `yaml:"depth"`
	Months      int      `yaml:"months"`
	MinSize     string   `yaml:"min-size"`
	LogFile     string   `yaml:"log-file,omitempty"`
	Debug       bool     `yaml:"debug,omitempty"`
}

// configDirs returns the directories searched for config.yaml.
func configDirs() []string {
	var dirs []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "cachesweep"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "cachesweep"))
	}

	return dirs
}

// loadConfig resolves options from flags, environment, configuration file and
// defaults, in that order of precedence. Positional args replace the
// configured directories; with neither, the platform defaults are used.
func loadConfig(flags *pflag.FlagSet, options *cachesweep.Options, args []string) error {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	options.ConfigFile = v.GetString("config")

	if options.ConfigFile != "" {
		v.SetConfigFile(options.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if options.ConfigFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading configuration: %w", err)
		}
	}

	options.MaxDepth = v.GetInt("depth")
	options.StaleMonths = v.GetInt("months")
	options.DryRun = v.GetBool("dry-run")
	options.Output = strings.ToLower(v.GetString("output"))
	options.LogFile = v.GetString("log-file")
	options.Debug = v.GetBool("debug")

	if minSize := v.GetString("min-size"); minSize != "" {
		size, err := humanize.ParseBytes(minSize)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		if size > math.MaxInt64 {
			return fmt.Errorf("invalid min-size: %q exceeds %s", minSize, humanize.IBytes(math.MaxInt64))
		}

		options.MinSize = int64(size)
	}

	switch {
	case len(args) > 0:
		options.Directories = args
	case len(v.GetStringSlice("directories")) > 0:
		options.Directories = v.GetStringSlice("directories")
	default:
		options.Directories = locations.Defaults()
	}

	return nil
}

// printConfig writes the effective configuration as YAML.
func printConfig(options cachesweep.Options, writer io.Writer) error {
	cfg := fileConfig{
		Directories: options.Directories,
		Depth:       options.MaxDepth,
		Months:      options.StaleMonths,
		MinSize:     humanize.IBytes(uint64(options.MinSize)), //nolint:gosec // MinSize is never negative
		LogFile:     options.LogFile,
		Debug:       options.Debug,
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	_, err = writer.Write(data)

	return err
}

// printScaffold writes a commented starter configuration file.
func printScaffold(options cachesweep.Options, writer io.Writer) error {
	rendered, err := scaffold.Render(scaffold.Data{
		Directories: options.Directories,
		Depth:       options.MaxDepth,
		Months:      options.StaleMonths,
		MinSize:     humanize.IBytes(uint64(options.MinSize)), //nolint:gosec // MinSize is never negative
		LogFile:     options.LogFile,
	})
	if err != nil {
		return err
	}

	//nolint:forbidigo // Configuration output to console
	_, err = fmt.Fprint(writer, rendered)

	return err
}

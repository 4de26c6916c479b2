package cmd

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"errors"
	"fmt"
	"github.com/carlmjohnson/versioninfo"
	"github.com/robinovitch61/vlist/internal"
	"github.com/robinovitch61/vlist/internal/constants"
	"github.com/robinovitch61/vlist/internal/keymap"
	"github.com/robinovitch61/vlist/internal/viewport"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
	"path/filepath"
	"strings"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X github.com/robinovitch61/vlist/cmd.Version=vX.Y.Z"
	Version = ""
)

type arg struct {
	cliShort, cfgFileEnvVar, description, defaultString string
	isBool, isInt, defaultIfBool                        bool
	defaultIfInt                                        int
}

var (
	rootNameToArg = map[string]arg{
		"buffer": {
			cliShort:      "b",
			cfgFileEnvVar: "buffer",
			description:   `Number of items rendered beyond each edge of the screen`,
			isInt:         true,
			defaultIfInt:  constants.DefaultBuffer,
		},
		"config": {
			cliShort:      "",
			cfgFileEnvVar: "config",
			description:   `Config file path. Defaults to $HOME/.config/vlist/config.yaml`,
		},
		"count": {
			cliShort:      "n",
			cfgFileEnvVar: "count",
			description:   `Number of items to generate when no file is given`,
			isInt:         true,
			defaultIfInt:  constants.DefaultCount,
		},
		"file": {
			cliShort:      "f",
			cfgFileEnvVar: "file",
			description:   `File to view, one item per line. Without it, items are generated`,
		},
		"help": {
			description: `Print usage`,
		},
		"item-height": {
			cliShort:      "i",
			cfgFileEnvVar: "item-height",
			description:   `Number of rows each item takes`,
			isInt:         true,
			defaultIfInt:  constants.DefaultItemHeight,
		},
		"no-footer": {
			cfgFileEnvVar: "no-footer",
			description:   `If present, hide the position footer`,
			isBool:        true,
		},
		"no-scrollbar": {
			cfgFileEnvVar: "no-scrollbar",
			description:   `If present, hide the scrollbar`,
			isBool:        true,
		},
		"save-dir": {
			cfgFileEnvVar: "save-dir",
			description:   `Directory that saved items are written to. Defaults to $HOME/vlist`,
		},
		"wrap": {
			cliShort:      "w",
			cfgFileEnvVar: "wrap",
			description:   `If present, start with item text wrapped within its rows`,
			isBool:        true,
		},
	}

	description = fmt.Sprintf(`vlist %s
Leo Robinovitch <leorobinovitch@gmail.com>

vlist is a terminal viewer for huge lists that only renders what's on screen

Home page: https://github.com/robinovitch61/vlist`,
		getVersion(),
	)

	rootCmd = &cobra.Command{
		Use:   "vlist",
		Short: "vlist: windowed list viewer",
		Long:  description,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, rootNameToArg)
		},
		RunE:          mainEntrypoint,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// init is called once when the cmd package is loaded
// https://golangdocs.com/init-function-in-golang
func init() {
	cliLong := "help"
	rootCmd.PersistentFlags().BoolP(cliLong, rootNameToArg[cliLong].cliShort, rootNameToArg[cliLong].defaultIfBool, rootNameToArg[cliLong].description)

	for _, cliLong = range []string{
		"buffer",
		"config",
		"count",
		"file",
		"item-height",
		"no-footer",
		"no-scrollbar",
		"save-dir",
		"wrap",
	} {
		c := rootNameToArg[cliLong]
		if c.isBool {
			rootCmd.PersistentFlags().BoolP(cliLong, c.cliShort, c.defaultIfBool, c.description)
		} else if c.isInt {
			rootCmd.PersistentFlags().IntP(cliLong, c.cliShort, c.defaultIfInt, c.description)
		} else {
			rootCmd.PersistentFlags().StringP(cliLong, c.cliShort, c.defaultString, c.description)
		}
		_ = viper.BindPFlag(c.cfgFileEnvVar, rootCmd.PersistentFlags().Lookup(cliLong))
	}
	rootCmd.SetVersionTemplate(`{{printf "vlist %s\n" .Version}}`)
	rootCmd.Flags().BoolP("version", "v", false, "Show vlist version")
}

func initConfig(cmd *cobra.Command, nameToArg map[string]arg) error {
	v := viper.GetViper()

	// bind viper to env vars, e.g. VLIST_ITEM_HEIGHT
	v.SetEnvPrefix("vlist")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// config file is optional unless explicitly given
	cfgFile := v.GetString("config")
	explicit := cfgFile != ""
	if !explicit {
		cfgFile = filepath.Join(homeDir(), ".config", "vlist", "config.yaml")
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	return bindFlags(cmd, nameToArg)
}

func bindFlags(cmd *cobra.Command, nameToArg map[string]arg) error {
	v := viper.GetViper()
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Determine the naming convention of the flags when represented in the config file
		cliLong := f.Name
		viperName := nameToArg[cliLong].cfgFileEnvVar
		if viperName == "" || err != nil {
			return
		}

		// Apply the viper config value to the flag when the flag is not manually specified
		// and viper has a value from the config file or env var
		if !f.Changed && v.IsSet(viperName) {
			val := v.Get(viperName)
			if setErr := cmd.Flags().Set(cliLong, fmt.Sprintf("%v", val)); setErr != nil {
				err = fmt.Errorf("setting flag %s: %w", cliLong, setErr)
			}
		}
	})
	return err
}

func mainEntrypoint(cmd *cobra.Command, _ []string) error {
	c, err := getConfig(cmd)
	if err != nil {
		return err
	}
	c.HasDarkBackground = lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	program := tea.NewProgram(internal.InitialModel(c))

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("error running vlist: %w", err)
	}
	if m, ok := finalModel.(internal.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	return os.Getenv("USERPROFILE") // Windows
}

func getBool(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Lookup(name).Value.String() == "true"
}

func getNonNegativeInt(cmd *cobra.Command, name string) (int, error) {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	if val < 0 {
		return 0, fmt.Errorf("%s must be non-negative", name)
	}
	return val, nil
}

func getSaveDir(cmd *cobra.Command) string {
	if dir := cmd.Flags().Lookup("save-dir").Value.String(); dir != "" {
		return dir
	}
	return filepath.Join(homeDir(), constants.SaveDirName)
}

func getConfig(cmd *cobra.Command) (internal.Config, error) {
	count, err := getNonNegativeInt(cmd, "count")
	if err != nil {
		return internal.Config{}, err
	}
	buffer, err := getNonNegativeInt(cmd, "buffer")
	if err != nil {
		return internal.Config{}, err
	}
	// zero is passed through so the viewport reports it as an invalid extent
	itemHeight, err := getNonNegativeInt(cmd, "item-height")
	if err != nil {
		return internal.Config{}, err
	}

	return internal.Config{
		KeyMap:           keymap.DefaultKeyMap(),
		ViewportKeyMap:   viewport.DefaultKeyMap(),
		FilePath:         cmd.Flags().Lookup("file").Value.String(),
		Count:            count,
		ItemHeight:       itemHeight,
		Buffer:           buffer,
		WrapText:         getBool(cmd, "wrap"),
		ScrollbarEnabled: !getBool(cmd, "no-scrollbar"),
		FooterEnabled:    !getBool(cmd, "no-footer"),
		SaveDir:          getSaveDir(cmd),
		Version:          getVersion(),
	}, nil
}

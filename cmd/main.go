package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"txt_reader/lang"
	"txt_reader/ui"
	"txt_reader/utils"
)

func main() {
	var (
		libraryDir string
		configDir  string
		locale     string
	)

	cmd := &cobra.Command{
		Use:           "txt_reader",
		Short:         "Terminal reader for local .txt novels",
		Long:          "Scans a folder of plain-text novels, splits them into chapters and remembers the reading position per title.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configDir == "" {
				configDir = utils.DefaultConfigDir()
			}
			if locale != "" && !lang.SetLocale(lang.Locale(locale)) {
				return fmt.Errorf("unknown language %q (want zh or en)", locale)
			}
			return ui.RunApp(ui.Options{
				LibraryDir:   libraryDir,
				SettingsPath: filepath.Join(configDir, "settings.toml"),
				ProgressPath: filepath.Join(configDir, "reading_progress.json"),
			})
		},
	}

	cmd.Flags().StringVar(&libraryDir, "library", "novel", "folder scanned for .txt novels")
	cmd.Flags().StringVar(&configDir, "config", "", "config directory (default ~/.config/txt_reader)")
	cmd.Flags().StringVar(&locale, "lang", "", "interface language: zh or en")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

/*
Copyright © 2024 Tim Parisi
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tim-parisi/100-dice-simulation/internal/display"
	"github.com/tim-parisi/100-dice-simulation/internal/engine"
	"github.com/tim-parisi/100-dice-simulation/internal/log"
	"github.com/tim-parisi/100-dice-simulation/internal/persistence"
	"github.com/tim-parisi/100-dice-simulation/internal/rules"
	"github.com/tim-parisi/100-dice-simulation/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// newRoller is swapped out by tests for scripted dice.
var newRoller = func() engine.Roller { return engine.CryptoRoller{} }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hundred",
	Short: "A terminal version of the dice game 100",
	Long: `Players take turns rolling two dice, adding each roll to their round
score until they choose to bank it. Rolling a 7 ends the turn with the
score banked before it; rolling a 2 wipes the player's score to 0.

Once someone banks 100, every other player gets one last turn and the
highest score wins.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if chart, _ := cmd.Flags().GetBool("scorechart"); chart {
			return display.PrintScorechart(out)
		}

		var book engine.Classifier
		if path := viper.GetString("rules"); path != "" {
			b, err := rules.LoadFile(path)
			if err != nil {
				return err
			}
			book = b
		}

		opts := session.Options{
			Players: viper.GetInt("players"),
			Target:  viper.GetInt("target"),
			Quiet:   viper.GetBool("quiet"),
			Rules:   book,
			Roller:  newRoller(),
			In:      cmd.InOrStdin(),
			Out:     out,
		}

		if name := viper.GetString("record"); name != "" {
			store, err := persistence.NewArchive(gamesDir()).Create(name)
			if err != nil {
				return err
			}
			defer store.Close()
			opts.Recorder = store
			log.Info("recording game", "path", store.Path())
		}

		_, err := session.NewSession(opts).Run()
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	log.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hundred.yaml)")
	rootCmd.PersistentFlags().String("debug-log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().String("games-dir", "", "Directory holding recorded games (default ./games)")

	rootCmd.Flags().BoolP("quiet", "q", false, "Condenses a majority of the output text of the program")
	rootCmd.Flags().IntP("players", "p", 0, "Defines the amount of players in the game")
	rootCmd.Flags().BoolP("scorechart", "s", false, "Displays a score chart for how scoring is displayed in quiet mode")
	rootCmd.Flags().Int("target", engine.DefaultTarget, "Score that triggers the final round")
	rootCmd.Flags().String("rules", "", "YAML file of house bust rules")
	rootCmd.Flags().String("record", "", "Record the game under this name in the games directory")

	for key, flag := range map[string]string{
		"quiet":     "quiet",
		"players":   "players",
		"target":    "target",
		"rules":     "rules",
		"record":    "record",
		"debug_log": "debug-log",
		"games_dir": "games-dir",
	} {
		f := rootCmd.Flags().Lookup(flag)
		if f == nil {
			f = rootCmd.PersistentFlags().Lookup(flag)
		}
		cobra.CheckErr(viper.BindPFlag(key, f))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hundred")
	}

	viper.SetEnvPrefix("hundred")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	if path := viper.GetString("debug_log"); path != "" {
		if err := log.SetFileOutput(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
		}
	}
}

func gamesDir() string {
	dir := viper.GetString("games_dir")
	if dir == "" {
		dir = filepath.Join(".", "games")
	}
	return dir
}

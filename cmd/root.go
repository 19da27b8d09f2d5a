/*
Copyright © 2021 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ghostdb/src/config"
	"ghostdb/src/utils"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tevino/abool/v2"
)

var (
	logLevel       string
	inputFilePath  string
	outputFilePath string
)

var log = utils.GetLogger()

// StopRequested is set by the signal handler in main; the pipeline checks it
// between lines and winds down cleanly.
var StopRequested = abool.New()

var rootCmd = &cobra.Command{
	Use:   "ghostdb",
	Short: "A tool to anonymize sensitive data in SQL dump files",
	Long: `ghostdb rewrites INSERT statements in SQL dump files, replacing sensitive
column values with deterministic synthetic substitutes so production exports
can be used safely in non-production environments.

Run it with just --input for a guided scan-and-anonymize session, or use the
scan and run subcommands for a scripted two-step workflow.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.SetLogLevel(log, logLevel)
	},

	Run: func(cmd *cobra.Command, args []string) {
		if inputFilePath == "" {
			fmt.Println("No input file provided. Use --input or a subcommand.")
			cmd.Help()
			os.Exit(1)
		}
		if !utils.FileOrFolderExists(inputFilePath) {
			utils.ErrExit("Input file %q doesn't exist!!", inputFilePath)
		}
		smartRun(inputFilePath, outputFilePath)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO",
		"Logging levels: TRACE, DEBUG, INFO, WARN")

	rootCmd.Flags().StringVarP(&inputFilePath, "input", "i", "",
		"path of the SQL dump file to scan and anonymize")
	rootCmd.Flags().StringVarP(&outputFilePath, "output", "o", "",
		"path of the anonymized output file (default \"<input stem>_anonymized.sql\")")
}

// initConfig reads in the settings file and ENV variables if set.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	// Search settings in home directory with name ".ghostdb" (without extension).
	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".ghostdb")

	viper.SetEnvPrefix("ghostdb")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using settings file:", viper.ConfigFileUsed())
	}
}

// smartRun is the guided path: scan the dump, show the proposed plan, let the
// operator run it as-is, customize it first, or bail out.
func smartRun(inputPath, outputPath string) {
	if outputPath == "" {
		base := filepath.Base(inputPath)
		outputPath = strings.TrimSuffix(base, filepath.Ext(base)) + ANONYMIZED_SQL_SUFFIX
	}
	log.Infof("Starting smart run, input: %s, output: %s", inputPath, outputPath)

	fmt.Println("Scanning file for schema...")
	cfg, err := scanFile(inputPath)
	if err != nil {
		utils.ErrExit("Scan failed: %v", err)
	}
	fmt.Printf("Found %d tables.\n", len(cfg.Tables))

	fmt.Println("\nProposed Anonymization Plan:")
	printPlan(cfg)

	options := []string{"Run (Execute Plan)", "Customize Plan", "Quit"}
	var selected string
	err = survey.AskOne(&survey.Select{
		Message: "Ready to proceed?",
		Options: options,
	}, &selected)
	if err != nil {
		utils.ErrExit("%v", err)
	}

	switch selected {
	case options[0]:
	case options[1]:
		if err := runInteractiveWizard(cfg); err != nil {
			utils.ErrExit("%v", err)
		}
	default:
		fmt.Println("Bye!")
		return
	}

	fmt.Printf("Anonymizing to %s...\n", outputPath)
	if err := anonymizeFile(inputPath, outputPath, cfg, DEFAULT_SEED); err != nil {
		utils.ErrExit("Anonymization failed: %v", err)
	}
}

func printPlan(cfg *config.AppConfig) {
	for _, tableName := range sortedTableNames(cfg) {
		fmt.Printf("Table: %s\n", tableName)
		tableConfig := cfg.Tables[tableName]
		for _, columnName := range sortedColumnNames(tableConfig) {
			strategy := tableConfig.Columns[columnName]
			if strategy.Kind != config.StrategyKeep {
				fmt.Printf("  - %s -> %s\n", columnName, strategy)
			}
		}
	}
}

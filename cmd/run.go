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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ghostdb/src/anonymizer"
	"ghostdb/src/config"
	"ghostdb/src/datafile"
	"ghostdb/src/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

var (
	runInputPath  string
	runOutputPath string
	runConfigPath string
	globalSeed    uint64
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Anonymize a SQL dump file using a saved configuration",
	Long: `This command streams the input dump line by line, rewrites the value lists
of INSERT statements targeting configured tables, and writes everything else
through unchanged. The same seed always produces the same output.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmd.Parent().PersistentPreRun(cmd.Parent(), args)
	},

	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(runConfigPath)
		if err != nil {
			utils.ErrExit("Failed to load configuration: %v", err)
		}
		if err := anonymizeFile(runInputPath, runOutputPath, cfg, globalSeed); err != nil {
			color.Red("Anonymization failed, retry!! ❌")
			utils.ErrExit("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runInputPath, "input", "i", "",
		"path of the SQL dump file to anonymize")
	runCmd.Flags().StringVarP(&runOutputPath, "output", "o", "",
		"path of the anonymized output file")
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "",
		"path of the anonymization configuration YAML file")
	runCmd.Flags().Uint64VarP(&globalSeed, "seed", "s", DEFAULT_SEED,
		"global seed for deterministic value generation")

	runCmd.MarkFlagRequired("input")
	runCmd.MarkFlagRequired("output")
	runCmd.MarkFlagRequired("config")
}

// anonymizeFile drives one full pipeline run with a byte-based progress bar.
func anonymizeFile(inputPath string, outputPath string, cfg *config.AppConfig, seed uint64) error {
	df, err := datafile.OpenSqlDataFile(inputPath)
	if err != nil {
		return err
	}
	defer df.Close()

	totalSize, err := df.Size()
	if err != nil {
		return err
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", outputPath, err)
	}
	defer outputFile.Close()
	writer := bufio.NewWriter(outputFile)

	pipeline := anonymizer.NewPipeline(cfg, seed)

	progressContainer := mpb.New()
	bar := progressContainer.AddBar(totalSize,
		mpb.PrependDecorators(
			decor.Name(filepath.Base(inputPath)),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncSpace),
		),
	)

	quitProgress := make(chan bool)
	go func() {
		for {
			select {
			case <-quitProgress:
				return
			default:
				bar.IncrInt64(df.GetBytesRead() - bar.Current())
				time.Sleep(PROGRESS_POLL_MILLIS * time.Millisecond)
			}
		}
	}()

	runErr := pipeline.Run(df, writer, StopRequested)
	close(quitProgress)
	if runErr != nil {
		bar.Abort(true)
	} else {
		// on an interrupted run the bar settles at the bytes actually consumed
		bar.SetTotal(df.GetBytesRead(), true)
	}
	progressContainer.Wait()
	if runErr != nil {
		return runErr
	}

	if StopRequested.IsSet() {
		color.Yellow("Anonymization interrupted, partial output flushed")
	} else {
		color.Green("Anonymization complete ✅")
	}
	utils.PrintAndLog("Processed %d lines. Anonymized %d statements.",
		pipeline.Counters.LinesProcessed, pipeline.Counters.StatementsAnonymized)
	return nil
}

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
	"io"
	"os"
	"sort"

	"ghostdb/src/config"
	"ghostdb/src/datafile"
	"ghostdb/src/sqlparser"
	"ghostdb/src/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	scanInputPath   string
	scanOutputPath  string
	reportFilePath  string
	interactiveMode bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a SQL dump file and propose an anonymization configuration",
	Long: `This command discovers tables and columns from the INSERT statements in a
dump file and proposes a strategy for each column based on its name. The
result is printed as YAML, or written to a file with --output. Use
--interactive to adjust the proposal in the wizard before it is emitted.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmd.Parent().PersistentPreRun(cmd.Parent(), args)
	},

	Run: func(cmd *cobra.Command, args []string) {
		log.Infof("Scanning file: %s", scanInputPath)
		cfg, err := scanFile(scanInputPath)
		if err != nil {
			utils.ErrExit("Scan failed: %v", err)
		}

		if interactiveMode {
			if err := runInteractiveWizard(cfg); err != nil {
				utils.ErrExit("%v", err)
			}
		}

		if scanOutputPath != "" {
			if err := cfg.Save(scanOutputPath); err != nil {
				utils.ErrExit("Failed to save configuration: %v", err)
			}
			color.Green("Configuration written to %s", scanOutputPath)
		} else {
			yamlStr, err := cfg.Marshal()
			if err != nil {
				utils.ErrExit("%v", err)
			}
			fmt.Println(yamlStr)
		}

		if reportFilePath != "" {
			if err := generateScanReport(cfg, reportFilePath); err != nil {
				utils.ErrExit("Failed to generate scan report: %v", err)
			}
			color.Green("Scan report written to %s", reportFilePath)
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanInputPath, "input", "i", "",
		"path of the SQL dump file to scan")
	scanCmd.Flags().StringVarP(&scanOutputPath, "output", "o", "",
		"write the proposed configuration YAML to this file instead of stdout")
	scanCmd.Flags().StringVar(&reportFilePath, "report-html", "",
		"also write an HTML report of the proposed plan to this file")
	scanCmd.Flags().BoolVarP(&interactiveMode, "interactive", "I", false,
		"review and adjust the proposed configuration in the wizard")

	scanCmd.MarkFlagRequired("input")
}

// scanFile streams the dump with the light matcher and accumulates the set of
// columns seen per table, then proposes a strategy for each column.
func scanFile(filePath string) (*config.AppConfig, error) {
	df, err := datafile.OpenSqlDataFile(filePath)
	if err != nil {
		return nil, err
	}
	defer df.Close()

	tablesColumns := map[string]map[string]bool{}
	for {
		line, err := df.NextLine()
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read input: %w", err)
		}
		atEOF := err == io.EOF
		if atEOF && line == "" {
			break
		}

		if stmt, ok := sqlparser.MatchInsertPrefix(line); ok {
			columns := tablesColumns[stmt.TableName]
			if columns == nil {
				columns = map[string]bool{}
				tablesColumns[stmt.TableName] = columns
			}
			for _, columnName := range sqlparser.SplitColumns(stmt.ColumnsPart) {
				columns[columnName] = true
			}
		}

		if atEOF {
			break
		}
	}

	cfg := config.NewAppConfig()
	for tableName, columns := range tablesColumns {
		tableConfig := config.TableConfig{Columns: map[string]config.ColumnStrategy{}}
		for columnName := range columns {
			tableConfig.Columns[columnName] = config.GuessStrategy(columnName)
		}
		cfg.Tables[tableName] = tableConfig
	}
	return cfg, nil
}

func generateScanReport(cfg *config.AppConfig, filePath string) error {
	htmlStr := "<html><head><title>ghostdb scan report</title></head><body>"
	htmlStr += "<h1>Proposed Anonymization Plan</h1>"
	for _, tableName := range sortedTableNames(cfg) {
		tableConfig := cfg.Tables[tableName]
		htmlStr += fmt.Sprintf("<h2>Table: %s</h2>", tableName)
		htmlStr += "<table border='1'><tr><th>Column</th><th>Strategy</th></tr>"
		for _, columnName := range sortedColumnNames(tableConfig) {
			htmlStr += fmt.Sprintf("<tr><td>%s</td><td>%s</td></tr>",
				columnName, tableConfig.Columns[columnName])
		}
		htmlStr += "</table>"
	}
	htmlStr += "</body></html>"

	if err := os.WriteFile(filePath, []byte(utils.PrettifyHtmlString(htmlStr)), 0644); err != nil {
		return fmt.Errorf("write scan report %q: %w", filePath, err)
	}
	return nil
}

func sortedTableNames(cfg *config.AppConfig) []string {
	tableNames := make([]string, 0, len(cfg.Tables))
	for tableName := range cfg.Tables {
		tableNames = append(tableNames, tableName)
	}
	sort.Strings(tableNames)
	return tableNames
}

func sortedColumnNames(tableConfig config.TableConfig) []string {
	columnNames := make([]string, 0, len(tableConfig.Columns))
	for columnName := range tableConfig.Columns {
		columnNames = append(columnNames, columnName)
	}
	sort.Strings(columnNames)
	return columnNames
}

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

	"ghostdb/src/config"

	"github.com/AlecAivazis/survey/v2"
)

var wizardStrategyChoices = []struct {
	label    string
	strategy config.ColumnStrategy
}{
	{"Keep (Original Value)", config.Keep()},
	{"Email (fake@example.com)", config.Strategy(config.StrategyEmail)},
	{"First Name (Alice)", config.Strategy(config.StrategyFirstName)},
	{"Last Name (Smith)", config.Strategy(config.StrategyLastName)},
	{"Full Name (Alice Smith)", config.Strategy(config.StrategyFullName)},
	{"Phone (+1-555...)", config.Strategy(config.StrategyPhone)},
	{"Mask (a***@e***.com)", config.Strategy(config.StrategyMask)},
	{"Fixed Value...", config.Fixed("")},
}

// runInteractiveWizard walks the operator through the configuration:
// table -> column -> strategy, until "Save and Proceed".
func runInteractiveWizard(cfg *config.AppConfig) error {
	fmt.Println("GhostDB Interactive Config Wizard")

	for {
		tableNames := sortedTableNames(cfg)
		choices := append(append([]string{}, tableNames...), "Save and Proceed")

		var selected string
		err := survey.AskOne(&survey.Select{
			Message: "Select a table to configure",
			Options: choices,
		}, &selected)
		if err != nil {
			return err
		}
		if selected == "Save and Proceed" {
			return nil
		}

		if err := configureTable(selected, cfg.Tables[selected]); err != nil {
			return err
		}
	}
}

func configureTable(tableName string, tableConfig config.TableConfig) error {
	for {
		columnNames := sortedColumnNames(tableConfig)
		choices := make([]string, 0, len(columnNames)+1)
		for _, columnName := range columnNames {
			choices = append(choices, fmt.Sprintf("%s [%s]", columnName, tableConfig.Columns[columnName]))
		}
		choices = append(choices, "Back to Tables")

		var selected string
		err := survey.AskOne(&survey.Select{
			Message: fmt.Sprintf("Configure columns for table '%s'", tableName),
			Options: choices,
		}, &selected)
		if err != nil {
			return err
		}

		selectedIdx := -1
		for i, choice := range choices {
			if choice == selected {
				selectedIdx = i
				break
			}
		}
		if selectedIdx < 0 || selectedIdx == len(columnNames) {
			return nil
		}

		columnName := columnNames[selectedIdx]
		strategy, err := selectStrategy(columnName)
		if err != nil {
			return err
		}
		tableConfig.Columns[columnName] = strategy
	}
}

func selectStrategy(columnName string) (config.ColumnStrategy, error) {
	labels := make([]string, 0, len(wizardStrategyChoices))
	for _, choice := range wizardStrategyChoices {
		labels = append(labels, choice.label)
	}

	var selected string
	err := survey.AskOne(&survey.Select{
		Message: fmt.Sprintf("Select strategy for column '%s'", columnName),
		Options: labels,
	}, &selected)
	if err != nil {
		return config.Keep(), err
	}

	for _, choice := range wizardStrategyChoices {
		if choice.label != selected {
			continue
		}
		if choice.strategy.Kind == config.StrategyFixed {
			var fixedValue string
			err := survey.AskOne(&survey.Input{
				Message: "Enter the fixed value",
			}, &fixedValue)
			if err != nil {
				return config.Keep(), err
			}
			return config.Fixed(fixedValue), nil
		}
		return choice.strategy, nil
	}
	return config.Keep(), nil
}

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/avltree/ops"
)

var version = "0.1.0"

// loadSettings reads the config file, letting a non-empty keyType flag
// override the configured key type
func loadSettings(keyType string) (*Config, ops.Session) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("%sFailed to load configuration%s: %v. Using default settings.", Warning, Reset, err)
	}
	if keyType != "" {
		config.Tree.KeyType = keyType
	}

	session, err := ops.NewSession(config.Tree.KeyType)
	if err != nil {
		log.Fatalf("Error creating tree: %v", err)
	}
	return config, session
}

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing binary search tree playground and verifier [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var keyType string

	playground := func(cmd *cobra.Command, args []string) {
		config, session := loadSettings(keyType)
		if err := runPlayground(session, NewOptimizedHelpCache(), config); err != nil {
			log.Fatalf("Error running playground: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree playground",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens a playground where operations are typed in and the tree is redrawn after each one`),
		Args:  cobra.NoArgs,
		Run:   playground,
	}

	var cmdExec = &cobra.Command{
		Use:   "exec [operation...]",
		Short: "Runs operations non-interactively",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Exec runs each argument as one operation line, e.g.

  avltree exec "insert 10 20 30" preorder check

With --file, lines are read from a script first ("-" reads stdin).`),
		Run: func(cmd *cobra.Command, args []string) {
			_, session := loadSettings(keyType)
			file, _ := cmd.Flags().GetString("file")
			if err := runExec(session, file, args, os.Stdout); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}
	cmdExec.Flags().StringP("file", "f", "", "script of operations, one per line")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Verifies the tree under random inserts and removes",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stress applies random operations to an integer tree and checks ordering, balance, cached heights and size after every step`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, _ := loadSettings("")
			opts := StressOptions{
				Operations: config.Stress.Operations,
				KeySpace:   config.Stress.KeySpace,
				Seed:       config.Stress.Seed,
			}
			if cmd.Flags().Changed("ops") {
				opts.Operations, _ = cmd.Flags().GetInt("ops")
			}
			if cmd.Flags().Changed("keys") {
				opts.KeySpace, _ = cmd.Flags().GetInt("keys")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetUint64("seed")
			}
			opts.ShowProgress, _ = cmd.Flags().GetBool("progress")

			report, err := RunStress(opts)
			if err != nil {
				log.Fatalf("%sStress run failed%s: %v", Error, Reset, err)
			}
			fmt.Printf("✅ %s%s%s\n", Green, report, Reset)
		},
	}
	cmdStress.Flags().Int("ops", 0, "number of random operations (default from config)")
	cmdStress.Flags().Int("keys", 0, "keys are drawn from [0, keys) (default from config)")
	cmdStress.Flags().Uint64("seed", 0, "random seed (default from config)")
	cmdStress.Flags().Bool("progress", true, "show a progress bar")

	var cmdExplain = &cobra.Command{
		Use:   "explain [operation]",
		Short: "Describes an operation, or lists all of them",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explain prints the usage of one operation, or every operation when none is named`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			_, session := loadSettings(keyType)
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			text, err := getExplanation(session, name)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			fmt.Println(text)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings shows ~/.avltree.yaml, creating it with defaults when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Run:     playground,
	}
	rootCmd.PersistentFlags().StringVarP(&keyType, "key-type", "k", "", "key type: int, float or string (default from config)")
	rootCmd.AddCommand(cmdRun, cmdExec, cmdStress, cmdExplain, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}

/*
 * Copyright 2024 PISA developers
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pisa-engine/warcpp/cmd/warcextract/cmd/extract"
	"github.com/pisa-engine/warcpp/cmd/warcextract/cmd/watch"
)

type conf struct {
	cfgFile  string
	logLevel string
}

// NewCommand returns a new cobra.Command implementing the root command for warcextract
func NewCommand() *cobra.Command {
	c := &conf{}
	cmd := &cobra.Command{
		Use:   "warcextract",
		Short: "Parse WARC files and output records in a selected text format",
		Long: `Parse WARC files and output valid response records in a selected text
format. Malformed records are logged to stderr and skipped by
resynchronizing on the next record boundary.`,
	}

	cobra.OnInitialize(func() { c.initConfig() })

	// Flags
	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.warcextract.yaml)")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn or error)")

	// Subcommands
	cmd.AddCommand(extract.NewCommand())
	cmd.AddCommand(watch.NewCommand())

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func (c *conf) initConfig() {
	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	log.SetLevel(level)

	if c.cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(c.cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".warcextract" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".warcextract")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file: %v", viper.ConfigFileUsed())
	}
}

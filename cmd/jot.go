/*
Copyright © 2024 Jot Labs

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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jotlabs/jot/internal/constants"
	"github.com/jotlabs/jot/internal/state"
	"github.com/jotlabs/jot/pkg/cmd/root"
)

func Execute() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	s, err := state.NewState()
	if err != nil {
		fmt.Printf("failed to initialize: %v\n", err)
		os.Exit(1)
	}

	rootCmd, rootErr := root.NewCmdRoot(s)
	if rootErr != nil {
		fmt.Printf("failed to build commands: %v\n", rootErr)
		os.Exit(1)
	}
	rootCmd.Version = constants.Version

	if execErr := rootCmd.Execute(); execErr != nil {
		os.Exit(1)
	}
}

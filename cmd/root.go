/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

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

// Package cmd implements the command line interface of the chain binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bbva/chain/build"
)

// SetReleaseInfo sets the build metadata printed by the version command.
func SetReleaseInfo(version, commit, date string) {
	build.Set(version, commit, date)
}

// Root is the command executed by the chain binary.
var Root = newRootCommand()

func newRootCommand() *cobra.Command {
	ctx := newCmdContext(viper.New())

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Append-only history chain",
		Long:  "Chain keeps an append-only history of values and serves the most recent one or any older one by depth. This command replays a sequence of commits and prints the requested lookups.",
		// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.loadConfig(); err != nil {
				return err
			}
			return ctx.setupLogger(cmd.ErrOrStderr())
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&ctx.configFile, "config", "c", "", "Config file (yaml, json or toml). Supports ~ expansion")
	f.StringP("log", "l", "error", "Choose between log levels: silent, error, warn, info, debug, trace")

	ctx.v.SetEnvPrefix("chain")
	ctx.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	ctx.v.AutomaticEnv()
	_ = ctx.v.BindPFlag("log", f.Lookup("log"))

	cmd.AddCommand(
		newReplayCommand(ctx),
		newVersionCommand(),
	)

	return cmd
}

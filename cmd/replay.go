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

package cmd

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/bbva/chain/chain"
	"github.com/bbva/chain/log"
)

func newReplayCommand(ctx *cmdContext) *cobra.Command {
	var (
		depths      []int
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "replay [values...]",
		Short: "Commit values in order and print lookups over the resulting history",
		Long: `Replay commits every value, in the given order, into an empty chain and
prints the head. Every --older depth is then looked up from the head.
When no values are given they are read from the history.commits config key.`,
		Example: "  chain replay 1 2 3 4 --older 2 --older 7",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.L().Named("replay")

			values, err := ctx.commits(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("older") {
				if depths, err = ctx.depths(); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("history") {
				showHistory = ctx.v.GetBool("history.show")
			}

			history := chain.New[int64]()
			for _, value := range values {
				history.Commit(value)
				logger.Debugf("Committed %d, size %d", value, history.Size())
			}
			logger.Infof("Replayed %d commits", history.Size())

			return newRenderer(cmd.OutOrStdout()).render(history, depths, showHistory)
		},
	}

	f := cmd.Flags()
	f.IntSliceVarP(&depths, "older", "o", nil, "Depth to look up from the head. Can be repeated or comma separated")
	f.BoolVar(&showHistory, "history", false, "Print every committed value from head to root")

	return cmd
}

// commits parses the values to commit, taking them from the command line
// arguments or, when there are none, from the config. Config and
// environment lists may be whitespace separated strings.
func (ctx *cmdContext) commits(args []string) ([]int64, error) {
	raw := args
	if len(raw) == 0 && ctx.v.IsSet("history.commits") {
		var err error
		raw, err = cast.ToStringSliceE(ctx.v.Get("history.commits"))
		if err != nil {
			return nil, fmt.Errorf("invalid history.commits: %w", err)
		}
	}

	values := make([]int64, 0, len(raw))
	for _, r := range raw {
		value, err := cast.ToInt64E(r)
		if err != nil {
			return nil, fmt.Errorf("invalid value %v: %w", r, err)
		}
		values = append(values, value)
	}
	return values, nil
}

func (ctx *cmdContext) depths() ([]int, error) {
	if !ctx.v.IsSet("history.older") {
		return nil, nil
	}
	raw, err := cast.ToStringSliceE(ctx.v.Get("history.older"))
	if err != nil {
		return nil, fmt.Errorf("invalid history.older: %w", err)
	}

	depths := make([]int, 0, len(raw))
	for _, r := range raw {
		by, err := cast.ToIntE(r)
		if err != nil {
			return nil, fmt.Errorf("invalid depth %v: %w", r, err)
		}
		depths = append(depths, by)
	}
	return depths, nil
}

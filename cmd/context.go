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
	"io"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/bbva/chain/log"
)

type cmdContext struct {
	v          *viper.Viper
	configFile string
}

func newCmdContext(v *viper.Viper) *cmdContext {
	return &cmdContext{v: v}
}

// loadConfig reads the config file, if any, into the context's viper
// instance. Flags explicitly set on the command line take precedence.
func (ctx *cmdContext) loadConfig() error {
	if ctx.configFile == "" {
		return nil
	}

	path, err := homedir.Expand(ctx.configFile)
	if err != nil {
		return fmt.Errorf("unable to expand config path %s: %w", ctx.configFile, err)
	}

	ctx.v.SetConfigFile(path)
	if err := ctx.v.ReadInConfig(); err != nil {
		return fmt.Errorf("unable to read config file %s: %w", path, err)
	}
	return nil
}

func (ctx *cmdContext) setupLogger(out io.Writer) error {
	name := ctx.v.GetString("log")
	level := log.LevelFromString(name)
	if level == log.NotSet {
		return fmt.Errorf("unknown log level %q", name)
	}

	log.SetDefault(log.New(&log.LoggerOptions{
		Name:   "chain",
		Level:  level,
		Output: out,
	}))
	log.L().Debugf("Using log level %s", level)
	if used := ctx.v.ConfigFileUsed(); used != "" {
		log.L().Infof("Using config file %s", used)
	}
	return nil
}

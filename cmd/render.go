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
	"strconv"

	"github.com/pterm/pterm"

	"github.com/bbva/chain/chain"
)

type renderer struct {
	out io.Writer
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out}
}

func (r *renderer) render(history *chain.Chain[int64], depths []int, showHistory bool) error {
	if head, ok := history.Head(); ok {
		r.printf("%s %s\n", pterm.Bold.Sprint("head:"), pterm.LightGreen(head))
	} else {
		r.printf("%s %s\n", pterm.Bold.Sprint("head:"), pterm.Gray("empty"))
	}

	for _, by := range depths {
		label := pterm.Bold.Sprintf("older(%d):", by)
		value, err := history.Older(by)
		if err != nil {
			r.printf("%s %s\n", label, pterm.LightRed(err.Error()))
			continue
		}
		r.printf("%s %s\n", label, pterm.LightGreen(value))
	}

	if !showHistory || history.Empty() {
		return nil
	}

	data := pterm.TableData{{"depth", "value"}}
	for by := 0; by < history.Size(); by++ {
		value, err := history.Older(by)
		if err != nil {
			return err
		}
		data = append(data, []string{strconv.Itoa(by), strconv.FormatInt(value, 10)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("unable to render history: %w", err)
	}
	r.printf("%s\n", table)
	return nil
}

func (r *renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

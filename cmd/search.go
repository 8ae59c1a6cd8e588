/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// getSearchCmd returns the search command.
func getSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Search plants and medicinal uses by name",
		Long: `Search plant names (common and scientific) and medicinal use names
for a substring. Letter case is ignored. Plants are not found through
the names of their medicinal uses.

Examples:
  herbdb search gin
  herbdb search "pain relief"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openCatalog(ctx)
			if err != nil {
				return report(err)
			}
			defer s.Close()

			res, err := s.cat.Search(ctx, strings.Join(args, " "))
			if err != nil {
				return report(err)
			}
			return render(cmd.OutOrStdout(), res, func(w io.Writer) {
				printSearch(w, res)
			})
		},
	}
}

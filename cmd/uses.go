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

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/spf13/cobra"
)

// getUsesCmd returns the uses command with its subcommands.
func getUsesCmd() *cobra.Command {
	usesCmd := &cobra.Command{
		Use:   "uses",
		Short: "List, show and edit medicinal uses",
		Long: `Manage medicinal uses of the catalog.

Examples:
  herbdb uses list
  herbdb uses show 3
  herbdb uses add "Pain Relief" --description "Reduces pain"
  herbdb uses update 3 --name "Analgesic"
  herbdb uses delete 3`,
	}

	usesCmd.AddCommand(
		getUsesListCmd(),
		getUsesShowCmd(),
		getUsesAddCmd(),
		getUsesUpdateCmd(),
		getUsesDeleteCmd(),
	)
	return usesCmd
}

func getUsesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List medicinal uses with their number of plants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			s, err := openCatalog(ctx)
			if err != nil {
				return report(err)
			}
			defer s.Close()

			uses, err := s.cat.ListMedicinalUses(ctx)
			if err != nil {
				return report(err)
			}
			return render(cmd.OutOrStdout(), uses, func(w io.Writer) {
				printUses(w, uses)
			})
		},
	}
}

func getUsesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a medicinal use with its plants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(catalog.KindMedicinalUse, args[0])
			if err != nil {
				return report(err)
			}

			ctx := context.Background()
			s, err := openCatalog(ctx)
			if err != nil {
				return report(err)
			}
			defer s.Close()

			mu, err := s.cat.GetMedicinalUse(ctx, id)
			if err != nil {
				return report(err)
			}
			if mu == nil {
				return report(notFound(catalog.KindMedicinalUse, id))
			}
			return render(cmd.OutOrStdout(), mu, func(w io.Writer) {
				printUse(w, mu)
			})
		},
	}
}

func getUsesAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a medicinal use",
		Long: `Add a medicinal use. If a use with the same name exists (letter case
is ignored), the existing use is shown and nothing is changed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openCatalog(ctx)
			if err != nil {
				return report(err)
			}
			defer s.Close()

			mu, err := s.cat.CreateMedicinalUse(ctx,
				strings.Join(args, " "), description)
			if err != nil {
				return report(err)
			}
			gn.Info("Medicinal use <em>%s</em> has id %d", mu.UseName, mu.ID)
			return render(cmd.OutOrStdout(), mu, func(w io.Writer) {
				printUse(w, mu)
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "",
		"description of the medicinal use")
	return cmd
}

func getUsesUpdateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename a medicinal use or change its description",
		Long: `Rename a medicinal use or change its description. Fields without a
flag keep their values. Renaming to a name of another use fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(catalog.KindMedicinalUse, args[0])
			if err != nil {
				return report(err)
			}

			ctx := context.Background()
			s, err := openCatalog(ctx)
			if err != nil {
				return report(err)
			}
			defer s.Close()

			cur, err := s.cat.GetMedicinalUse(ctx, id)
			if err != nil {
				return report(err)
			}
			if cur == nil {
				return report(notFound(catalog.KindMedicinalUse, id))
			}
			if !cmd.Flags().Changed("name") {
				name = cur.UseName
			}
			if !cmd.Flags().Changed("description") {
				description = cur.Description
			}

			mu, err := s.cat.UpdateMedicinalUse(ctx, id, name, description)
			if err != nil {
				return report(err)
			}
			gn.Info("Updated medicinal use <em>%s</em>", mu.UseName)
			return render(cmd.OutOrStdout(), mu, func(w io.Writer) {
				printUse(w, mu)
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&description, "description", "d", "",
		"new description")
	return cmd
}

func getUsesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a medicinal use",
		Long: `Delete a medicinal use. Plants are kept, only their links to the
use are removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(catalog.KindMedicinalUse, args[0])
			if err != nil {
				return report(err)
			}

			ctx := context.Background()
			s, err := openCatalog(ctx)
			if err != nil {
				return report(err)
			}
			defer s.Close()

			mu, err := s.cat.DeleteMedicinalUse(ctx, id)
			if err != nil {
				return report(err)
			}
			if mu == nil {
				gn.Warn("Medicinal use with id %d does not exist, nothing to delete", id)
				return nil
			}
			gn.Info("Deleted medicinal use <em>%s</em>", mu.UseName)
			return nil
		},
	}
}

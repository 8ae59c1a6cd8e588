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
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/internal/iocatalog"
	"github.com/gnames/herbdb/internal/ioschema"
	"github.com/gnames/herbdb/internal/ioseed"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var forceCreate, example bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the herbdb database schema.

This command:
  1. Connects to PostgreSQL or SQLite using configuration settings
  2. Checks for existing tables and prompts for confirmation
  3. Creates plants, medicinal_uses and plant_medicinal_uses tables
  4. Creates case-insensitive unique indexes on names
  5. Optionally seeds a placeholder plant and medicinal use

Use --force to skip confirmation and drop existing tables.

Examples:
  herbdb create
  herbdb create --force
  herbdb create -f --example`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, forceCreate, example)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")
	createCmd.Flags().BoolVarP(&example, "example", "e",
		false, "seed a placeholder plant and medicinal use")

	return createCmd
}

func runCreate(
	cmd *cobra.Command,
	_ []string,
	force, example bool,
) error {
	ctx := context.Background()

	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to <em>%s</em> database", op.Dialect().Name())

	// Check if database has existing tables
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if hasTables {
		if !force {
			gn.Warn("\nWarning: Database contains existing tables.")
			gn.Warn("Creating schema will drop ALL existing tables and data.")
			fmt.Fprint(cmd.OutOrStdout(), "\nDo you want to continue? (yes/no): ")

			reader := bufio.NewReader(cmd.InOrStdin())
			response, err := reader.ReadString('\n')
			if err != nil {
				gn.Warn("Failed to read user input")
				return err
			}

			response = strings.TrimSpace(strings.ToLower(response))
			if response != "yes" && response != "y" {
				gn.Info("Aborted. No changes made.")
				return nil
			}
		}

		gn.Info("Dropping all existing tables...")
		if err := op.DropAllTables(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("All tables dropped")
	}

	sm := ioschema.NewManager(op)
	gn.Info("Creating schema...")
	if err := sm.Create(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if example {
		cat, err := iocatalog.New(op, iocatalog.OptMetrics(metrics))
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if _, err = ioseed.Import(ctx, cat, ioseed.Example()); err != nil {
			return report(err)
		}
		gn.Info("Seeded placeholder plant and medicinal use")
	}

	gn.Info("\nDatabase schema creation complete!")
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'herbdb seed FILE' to import plants")
	gn.Info("  - Run 'herbdb plants add' to add a plant")

	return nil
}

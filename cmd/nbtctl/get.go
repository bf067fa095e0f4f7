package main

import (
	"fmt"

	"github.com/mcformats/nbtkit/nbt"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print a single value",
		Long: `The get command resolves a dot-separated path and prints the value
at that position in textual NBT notation.

Example:
  nbtctl get level.dat "Data.LevelName"
  nbtctl get level.dat "Data.Player.Inventory.0"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	root, err := nbt.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	v, err := resolvePath(root, args[1])
	if err != nil {
		return err
	}
	printInfo("%s\n", v.Display())
	return nil
}

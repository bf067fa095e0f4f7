package main

import (
	"fmt"
	"strings"

	"github.com/mcformats/nbtkit/nbt"
	"github.com/spf13/cobra"
)

var (
	treeDepth  int
	treeValues bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeValues, "values", false, "Show scalar values too")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file> [path]",
		Short: "Display the document tree",
		Long: `The tree command displays a hierarchical view of the document.

Example:
  nbtctl tree level.dat
  nbtctl tree level.dat "Data.Player" --depth 2
  nbtctl tree level.dat --values`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
}

func runTree(args []string) error {
	printVerbose("Opening document: %s\n", args[0])
	root, err := nbt.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	start := nbt.CompoundValue(root)
	name := "(root)"
	if len(args) > 1 {
		start, err = resolvePath(root, args[1])
		if err != nil {
			return err
		}
		name = args[1]
	}
	printTree(name, start, 0)
	return nil
}

func printTree(name string, v nbt.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch {
	case v.Countable():
		printInfo("%s%s: %s (%d entries)\n", indent, name, v.Tag(), v.Len())
		if treeDepth > 0 && depth+1 > treeDepth {
			return
		}
		if c, err := v.AsCompound(); err == nil {
			for i := 0; i < c.Len(); i++ {
				key, _ := c.KeyAt(i)
				child, _ := c.At(i)
				printTree(key, child, depth+1)
			}
			return
		}
		elems, _ := v.AsList()
		for i, e := range elems {
			printTree(fmt.Sprintf("[%d]", i), e, depth+1)
		}
	case treeValues:
		printInfo("%s%s: %s = %s\n", indent, name, v.Tag(), v.Display())
	default:
		printInfo("%s%s: %s\n", indent, name, v.Tag())
	}
}

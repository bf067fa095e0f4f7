package main

import (
	"fmt"

	"github.com/mcformats/nbtkit/nbt"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newJSONCmd())
}

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json <file> [path]",
		Short: "Export the document as JSON",
		Long: `The json command converts the document (or the subtree at path)
to JSON. Compounds become objects, lists and arrays become JSON arrays,
and scalars map to numbers and strings.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJSON(args)
		},
	}
}

func runJSON(args []string) error {
	root, err := nbt.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	v := nbt.CompoundValue(root)
	if len(args) > 1 {
		v, err = resolvePath(root, args[1])
		if err != nil {
			return err
		}
	}
	return printJSON(toJSON(v))
}

// toJSON converts a value to the shapes encoding/json expects. Compounds
// become maps, so JSON output does not preserve key order; use the tree
// command when order matters.
func toJSON(v nbt.Value) interface{} {
	switch v.Tag() {
	case nbt.TagByte:
		b, _ := v.AsByte()
		return b
	case nbt.TagShort:
		s, _ := v.AsShort()
		return s
	case nbt.TagInt:
		i, _ := v.AsInt()
		return i
	case nbt.TagLong:
		l, _ := v.AsLong()
		return l
	case nbt.TagFloat:
		f, _ := v.AsFloat()
		return f
	case nbt.TagDouble:
		d, _ := v.AsDouble()
		return d
	case nbt.TagString:
		s, _ := v.AsString()
		return s
	case nbt.TagByteArray:
		arr, _ := v.AsByteArray()
		out := make([]int8, len(arr))
		copy(out, arr)
		return out
	case nbt.TagIntArray:
		arr, _ := v.AsIntArray()
		out := make([]int32, len(arr))
		copy(out, arr)
		return out
	case nbt.TagList:
		elems, _ := v.AsList()
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			out[i] = toJSON(e)
		}
		return out
	case nbt.TagCompound:
		c, _ := v.AsCompound()
		out := make(map[string]interface{}, c.Len())
		for _, k := range c.Keys() {
			e, _ := c.Get(k)
			out[k] = toJSON(e)
		}
		return out
	default:
		return nil
	}
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "booltab",
		Usage: "generates the byte value to bool-array lookup table as source code",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to `FILE` instead of stdout (gzip if it ends in .gz)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "rust",
				Usage:   "output format, rust or go",
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Value:   "U8_TO_ARRAY_BOOL",
				Usage:   "name of the emitted constant",
			},
			&cli.StringFlag{
				Name:    "package",
				Aliases: []string{"p"},
				Value:   "tables",
				Usage:   "package clause for go output",
			},
			&cli.StringFlag{
				Name:  "check",
				Usage: "verify a previously generated rust `FILE` against a fresh table and exit",
			},
		},
		Action: func(c *cli.Context) error {
			table := NewTable()

			if path := c.String("check"); path != "" {
				return checkTable(table, path)
			}

			out, err := openOutput(c.String("output"))
			if err != nil {
				return err
			}

			switch c.String("format") {
			case "rust":
				err = table.WriteAsRust(out, c.String("name"))
			case "go":
				err = table.WriteAsGo(out, c.String("package"), c.String("name"))
			default:
				_ = out.Close()
				return fmt.Errorf("unknown format %q, want rust or go", c.String("format"))
			}
			if err != nil {
				_ = out.Close()
				return err
			}
			return out.Close()
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func checkTable(want *Table, path string) error {
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	got, err := ReadRustTable(in)
	if err != nil {
		return fmt.Errorf("could not parse %s: %s", path, err.Error())
	}
	for n := range want {
		if got[n] != want[n] {
			return fmt.Errorf("%s: entry %d is %s, want %s", path, n, got[n].BinaryString(), want[n].BinaryString())
		}
	}
	fmt.Fprintf(os.Stderr, "%s: all %d entries match\n", path, len(want))
	return nil
}

package main

import (
	"fmt"
	"os"

	jd "github.com/josephburnett/jd/v2"
	"github.com/urfave/cli/v2"
)

func newCmd_Compare() *cli.Command {
	return &cli.Command{
		Name:        "compare",
		Usage:       "Diff two JSON documents.",
		Description: "Structural JSON diff (not line diff) between two JSON files. The bench command prints a plain-text summary, not a JSON report.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "a", Required: true},
			&cli.StringFlag{Name: "b", Required: true},
		},
		Action: func(c *cli.Context) error {
			return runCompare(c.String("a"), c.String("b"))
		},
	}
}

func runCompare(aPath, bPath string) error {
	aRaw, err := os.ReadFile(aPath)
	if err != nil {
		return err
	}
	bRaw, err := os.ReadFile(bPath)
	if err != nil {
		return err
	}

	aNode, err := jd.ReadJsonString(string(aRaw))
	if err != nil {
		return fmt.Errorf("binsearchctl: parse %s: %w", aPath, err)
	}
	bNode, err := jd.ReadJsonString(string(bRaw))
	if err != nil {
		return fmt.Errorf("binsearchctl: parse %s: %w", bPath, err)
	}

	diff := aNode.Diff(bNode)
	if len(diff) == 0 {
		fmt.Println("no differences")
		return nil
	}
	fmt.Println(diff.Render())
	return nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/obolibrary/obo-format/go-obo/libdiff"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: obo diff <from> <to>", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	d := libdiff.Diff(from, to)
	if d.IsEmpty() {
		return nil
	}
	out := d.String()
	if diffColors(cfg, cc) {
		out = colorizeDiff(out)
	}
	fmt.Fprint(cc.Out, out)
	return fmt.Errorf("%d frames differ", len(d.Frames))
}

func diffColors(cfg *DiffConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func colorizeDiff(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		switch {
		case strings.HasPrefix(ln, "+ "):
			lines[i] = color.GreenString(ln)
		case strings.HasPrefix(ln, "- "):
			lines[i] = color.RedString(ln)
		}
	}
	return strings.Join(lines, "\n")
}

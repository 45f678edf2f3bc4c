package main

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/obolibrary/obo-format/go-obo/encode"
	"github.com/obolibrary/obo-format/go-obo/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Workers int  `cli:"name=w aliases=workers desc='parse worker pool size, 0 for sequential'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	res := []parse.Option{}
	workersSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "w" {
			continue
		}
		workersSet = opt.Value != nil
		break
	}
	if workersSet {
		res = append(res, parse.Workers(cfg.Workers))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

// input opens one named input, "-" or "" meaning stdin. A .gz suffix
// selects decompression.
func (cfg *MainConfig) input(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return gzReadCloser{gz, f}, nil
	}
	return f, nil
}

type gzReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g gzReadCloser) Close() error {
	err := g.Reader.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}

type ValidateConfig struct {
	*cli.Command
	*MainConfig

	TreatXrefs bool `cli:"name=x aliases=treat-xrefs desc='expand treat-xrefs macros before validating'"`
	Namespaces bool `cli:"name=n aliases=namespaces desc='assign the default namespace before validating'"`
}

type SortConfig struct {
	*cli.Command
	*MainConfig

	Check bool `cli:"name=check desc='report whether the input is sorted, without output'"`
}

type DumpConfig struct {
	*cli.Command
	*MainConfig

	YAML bool `cli:"name=y aliases=yaml desc='dump as YAML instead of JSON'"`
}

type DiffConfig struct {
	*cli.Command
	*MainConfig
}

type FilterConfig struct {
	*cli.Command
	*MainConfig

	Expr string `cli:"name=e aliases=expr desc='frame selection expression'"`
}

type StatsConfig struct {
	*cli.Command
	*MainConfig
}

type ViewConfig struct {
	*cli.Command
	*MainConfig

	Comments bool `cli:"name=c desc='include trailing comments'"`
}

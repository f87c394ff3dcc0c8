// Copyright 2026 Virtual Observatory Tools

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/virtualobs/voregistry/registry"
	"github.com/virtualobs/voregistry/votable"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	ServiceType string
	Keyword     string
	Waveband    string
	Source      string
	OrderBy     string
	Logic       string
	Rows        int    // max. rows to print; 0 = unlimited
	Config      string // optional config file overriding the registry URL
	LogLevel    logging.Level
	CSV         bool // dump CSV format; default: text.
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("vo-search", flag.ExitOnError)
	fs.StringVar(&flags.ServiceType, "type", "",
		"service type: image, spectral, cone, or a raw cap_type value")
	fs.StringVar(&flags.Keyword, "keyword", "", "free-text keyword")
	fs.StringVar(&flags.Waveband, "waveband", "", "waveband name")
	fs.StringVar(&flags.Source, "source", "", "substring of the resource IVOID")
	fs.StringVar(&flags.OrderBy, "order-by", "", "column to order results by")
	fs.StringVar(&flags.Logic, "logic", "", `operator joining filters; default: "and"`)
	fs.IntVar(&flags.Rows, "rows", 0, "max. number of rows to print; 0 = all")
	fs.StringVar(&flags.Config, "conf", "", "optional TOML config file")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")

	err := fs.Parse(args)
	return &flags, err
}

type Config struct {
	URL string `toml:"url"` // base URL of the registry TAP service
}

func parseConfig(filePath string) (*Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	return &c, nil
}

func search(ctx context.Context, flags *Flags) (*votable.Table, error) {
	if flags.Config != "" {
		config, err := parseConfig(flags.Config)
		if err != nil {
			return nil, errors.Annotate(err, "failed to parse config")
		}
		if config.URL != "" {
			registry.URL = config.URL
		}
	}
	ctx = registry.UseClient(ctx)
	s := registry.NewSearch().
		ServiceType(flags.ServiceType).
		Keyword(flags.Keyword).
		Waveband(flags.Waveband).
		Source(flags.Source).
		OrderBy(flags.OrderBy)
	if flags.Logic != "" {
		s = s.Logic(flags.Logic)
	}
	tbl, err := s.Do(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "search failed")
	}
	return tbl, nil
}

func printData(ctx context.Context, flags *Flags, w io.Writer) error {
	tbl, err := search(ctx, flags)
	if err != nil {
		return errors.Annotate(err, "failed to query the registry")
	}
	params := votable.Params{Rows: flags.Rows}
	if flags.CSV {
		if err := tbl.WriteCSV(w, params); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
		return nil
	}
	if err := tbl.WriteText(w, params); err != nil {
		return errors.Annotate(err, "failed to print text")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := printData(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}

// Copyright 2024 OdmKit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main provides the updatemap command-line tool.
//
// It reads an entity schema and a raw update document in extended JSON,
// maps the update against the schema, and prints the mapped update document.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/odmkit/updatemap/build/version"
	"github.com/odmkit/updatemap/internal/convert"
	"github.com/odmkit/updatemap/internal/mapping"
	"github.com/odmkit/updatemap/internal/mapper"
	"github.com/odmkit/updatemap/internal/update"
	"github.com/odmkit/updatemap/internal/util/logging"
)

// The cli struct represents all command-line commands, fields and flags.
// It's used for parsing the user input.
var cli struct {
	Version bool   `default:"false" help:"Print version to stdout and exit."`
	Schema  string `default:""      help:"Entity schema file path."         type:"existingfile"`
	Root    string `default:""      help:"Root entity type name."`

	Update string `arg:"" optional:"" help:"Update document in extended JSON. Reads stdin if omitted or \"-\"."`

	TypeKey          string `default:"_class" help:"Input field marking a value's runtime type."`
	DiscriminatorKey string `default:"_class" help:"Discriminator field written into mapped values."`
	OmitUnknownHints bool   `default:"false"  help:"Do not write discriminators for values with unknown declared types." negatable:""`

	Metrics bool `default:"false" help:"Print mapper metrics to stderr on exit."`

	Log struct {
		Level string `default:"warn"  help:"Log level: debug, info, warn, error."`
		UUID  bool   `default:"false" help:"Add instance UUID to all log messages." negatable:""`
	} `embed:"" prefix:"log-"`
}

func main() {
	kong.Parse(&cli)

	info := version.Get()

	if cli.Version {
		fmt.Fprintln(os.Stdout, "version:", info.Version)
		fmt.Fprintln(os.Stdout, "commit:", info.Commit)
		fmt.Fprintln(os.Stdout, "go:", info.GoVersion)
		return
	}

	level, err := zapcore.ParseLevel(cli.Log.Level)
	if err != nil {
		log.Fatal(err)
	}

	var logUUID string
	if cli.Log.UUID {
		logUUID = uuid.New().String()
	}

	logging.Setup(level, logUUID)
	l := zap.L()

	registry := mapping.NewRegistry()

	if cli.Schema != "" {
		f, err := os.Open(cli.Schema)
		if err != nil {
			l.Fatal("Failed to open schema file.", zap.Error(err))
		}

		registry, err = mapping.LoadSchema(f)
		_ = f.Close()

		if err != nil {
			l.Fatal("Failed to load schema.", zap.String("path", cli.Schema), zap.Error(err))
		}
	}

	var updateB []byte
	if cli.Update == "" || cli.Update == "-" {
		if updateB, err = io.ReadAll(os.Stdin); err != nil {
			l.Fatal("Failed to read update from stdin.", zap.Error(err))
		}
	} else {
		updateB = []byte(cli.Update)
	}

	doc, err := convert.UnmarshalExtJSON(updateB)
	if err != nil {
		l.Fatal("Failed to parse update document.", zap.Error(err))
	}

	u, err := update.FromDocument(doc, &update.FromDocumentOpts{
		TypeKey: cli.TypeKey,
	})
	if err != nil {
		l.Fatal("Failed to interpret update document.", zap.Error(err))
	}

	metrics := mapper.NewMetrics()
	registerer := prometheus.NewRegistry()
	registerer.MustRegister(metrics)

	m := mapper.NewUpdateMapper(registry, &mapper.UpdateMapperOpts{
		L:                   l.Named("mapper"),
		Metrics:             metrics,
		DiscriminatorKey:    cli.DiscriminatorKey,
		OmitHintsForUnknown: cli.OmitUnknownHints,
	})

	mapped, err := m.Map(u, mapping.TypeName(cli.Root))
	if err != nil {
		l.Fatal("Failed to map update.", zap.Error(err))
	}

	b, err := convert.MarshalExtJSONIndent(mapped)
	if err != nil {
		l.Fatal("Failed to marshal mapped update.", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, string(b))

	if cli.Metrics {
		mfs, err := registerer.Gather()
		if err != nil {
			l.Fatal("Failed to gather metrics.", zap.Error(err))
		}

		enc := expfmt.NewEncoder(os.Stderr, expfmt.NewFormat(expfmt.TypeTextPlain))
		for _, mf := range mfs {
			if err = enc.Encode(mf); err != nil {
				l.Fatal("Failed to encode metrics.", zap.Error(err))
			}
		}
	}
}

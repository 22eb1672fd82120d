// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config lets the command-line driver's flags be overridden by a
// YAML file, for the two settings the CLI exposes: the log level and the
// output-overwrite policy.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// SetFlagsFromYAML visits every flag registered on fs and, for any flag not
// already set on the command line, looks up REPLACE(UPPERCASE(flagname),
// '-', '_') in rawYaml and applies it as that flag's value.
func SetFlagsFromYAML(fs *flag.FlagSet, rawYaml []byte) (err error) {
	conf := make(map[string]string)
	if err = yaml.Unmarshal(rawYaml, conf); err != nil {
		return fmt.Errorf("config: parsing yaml: %w", err)
	}

	alreadySet := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		alreadySet[f.Name] = true
	})
	fs.VisitAll(func(f *flag.Flag) {
		if alreadySet[f.Name] {
			return
		}
		tag := strings.Replace(strings.ToUpper(f.Name), "-", "_", -1)
		if tag == "" {
			return
		}
		val, ok := conf[tag]
		if !ok {
			return
		}
		if serr := fs.Set(f.Name, val); serr != nil {
			err = fmt.Errorf("config: invalid value %q for %s: %w", val, tag, serr)
		}
	})
	return
}

// ApplyFile reads path and applies it to fs via SetFlagsFromYAML. An empty
// path is not an error, since the CLI's -config flag is optional; a path that
// cannot be read is.
func ApplyFile(fs *flag.FlagSet, path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	return SetFlagsFromYAML(fs, raw)
}

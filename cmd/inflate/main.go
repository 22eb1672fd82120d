// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command inflate expands a single-member GZIP file, recovering its
// original name and modification time from the container.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ryunzip/ryunzip/capnslog"
	"github.com/ryunzip/ryunzip/config"
	"github.com/ryunzip/ryunzip/gzip"
	"github.com/ryunzip/ryunzip/outfile"
	"github.com/ryunzip/ryunzip/stop"
)

var plog = capnslog.NewPackageLogger("github.com/ryunzip/ryunzip", "main")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "inflate:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("inflate", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "enable trace logging of block headers and gzip header/size (individual bits, symbols and tables are not traced)")
	overwrite := fs.Bool("f", false, "overwrite the output file if it already exists")
	configPath := fs.String("config", "", "path to a YAML file overriding unset flags")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := config.ApplyFile(fs, *configPath); err != nil {
		return err
	}

	repo := capnslog.MustRepoLogger("github.com/ryunzip/ryunzip")
	capnslog.SetFormatter(capnslog.NewStringFormatter(os.Stderr))
	if *verbose {
		repo.SetGlobalLogLevel(capnslog.TRACE)
	} else {
		repo.SetGlobalLogLevel(capnslog.NOTICE)
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: inflate [-v] [-f] [-config file] <file>")
	}
	inputPath := fs.Arg(0)

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	group := stop.NewGroup()
	group.AddFunc(func() <-chan struct{} {
		in.Close()
		return stop.AlreadyDone
	})
	defer func() { <-group.Stop() }()

	policy := outfile.RefuseExisting
	if *overwrite {
		policy = outfile.OverwriteExisting
	}

	var created string
	hdr, err := gzip.ReadMemberTo(in, func(hdr *gzip.Header) (io.WriteCloser, error) {
		out, err := outfile.Create(hdr.Name, policy)
		if err != nil {
			return nil, err
		}
		created = hdr.Name
		group.AddFunc(func() <-chan struct{} {
			out.Close()
			return stop.AlreadyDone
		})
		return out, nil
	})
	if err != nil {
		if created != "" {
			os.Remove(created)
		}
		return err
	}
	plog.Noticef("wrote %s", hdr.Name)

	return outfile.SetModTime(hdr.Name, hdr.ModTime)
}

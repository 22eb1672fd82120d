// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package outfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCreateRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out")
	if f, err := Create(name, RefuseExisting); err != nil {
		t.Fatalf("first Create: %v", err)
	} else {
		f.Close()
	}

	if _, err := Create(name, RefuseExisting); err == nil {
		t.Fatal("expected error creating over an existing file with RefuseExisting")
	}
}

func TestCreateOverwritesWhenAllowed(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out")
	if f, err := Create(name, RefuseExisting); err != nil {
		t.Fatalf("first Create: %v", err)
	} else {
		f.WriteString("old")
		f.Close()
	}

	f, err := Create(name, OverwriteExisting)
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	f.Close()

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected truncated file, got %q", data)
	}
}

func TestSetModTime(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out")
	f, err := Create(name, RefuseExisting)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	f.Close()

	want := time.Unix(1_000_000_000, 0)
	if err := SetModTime(name, want); err != nil {
		t.Fatalf("SetModTime: %v", err)
	}

	info, err := os.Stat(name)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.ModTime().Equal(want) {
		t.Fatalf("got mtime %v, want %v", info.ModTime(), want)
	}
}

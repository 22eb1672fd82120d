// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package outfile creates the filesystem destination a decompressed member
// is written to, and restores its recovered modification time afterward.
package outfile

import (
	"os"
	"time"
)

// Policy controls what happens when the destination path already exists.
type Policy int

const (
	// RefuseExisting is the default: Create fails if the path exists.
	RefuseExisting Policy = iota
	// OverwriteExisting truncates and reuses an existing path.
	OverwriteExisting
)

// Create opens name for writing under the given overwrite policy. The
// caller is responsible for closing the returned file.
func Create(name string, policy Policy) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if policy == OverwriteExisting {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(name, flags, 0644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// SetModTime sets the named file's modification time to mtime while preserving its
// current access time, mirroring the original decompressor's
// stat-then-utime sequence: the access time recorded by the filesystem at
// the moment of the stat call is carried forward rather than reset to now.
func SetModTime(name string, mtime time.Time) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	atime := accessTime(info)
	return os.Chtimes(name, atime, mtime)
}

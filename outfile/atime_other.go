// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package outfile

import (
	"os"
	"time"
)

// accessTime falls back to the modification time on platforms whose
// os.FileInfo does not expose st_atime through Sys().
func accessTime(info os.FileInfo) time.Time {
	return info.ModTime()
}

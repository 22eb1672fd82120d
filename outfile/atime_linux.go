// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package outfile

import (
	"os"
	"syscall"
	"time"
)

// accessTime extracts the access time recorded by the filesystem, the Go
// equivalent of reading st_atime off the stat struct the original
// decompressor used directly.
func accessTime(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(st.Atim.Sec, st.Atim.Nsec)
}

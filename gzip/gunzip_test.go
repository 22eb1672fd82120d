// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gzip

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"testing"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// TestReadMemberAgainstStandardLibrary uses compress/gzip purely as a test
// oracle to produce a well-formed member, never as part of the shipped
// decompressor.
func TestReadMemberAgainstStandardLibrary(t *testing.T) {
	var compressed bytes.Buffer
	zw, err := gzip.NewWriterLevel(&compressed, gzip.BestCompression)
	if err != nil {
		t.Fatalf("NewWriterLevel: %v", err)
	}
	zw.Name = "hello.txt"
	want := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly, repeatedly")
	if _, err := zw.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var out bytes.Buffer
	hdr, err := ReadMember(bytes.NewReader(compressed.Bytes()), &out)
	if err != nil {
		t.Fatalf("ReadMember: %v", err)
	}
	if hdr.Name != "hello.txt" {
		t.Errorf("got name %q, want %q", hdr.Name, "hello.txt")
	}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("got %q, want %q", out.Bytes(), want)
	}
}

func TestReadMemberToChoosesSinkFromHeader(t *testing.T) {
	var compressed bytes.Buffer
	zw, err := gzip.NewWriterLevel(&compressed, gzip.BestSpeed)
	if err != nil {
		t.Fatalf("NewWriterLevel: %v", err)
	}
	zw.Name = "report.csv"
	want := []byte("a,b,c\n1,2,3\n")
	if _, err := zw.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var gotName string
	var out bytes.Buffer
	_, err = ReadMemberTo(bytes.NewReader(compressed.Bytes()), func(hdr *Header) (io.WriteCloser, error) {
		gotName = hdr.Name
		return nopWriteCloser{&out}, nil
	})
	if err != nil {
		t.Fatalf("ReadMemberTo: %v", err)
	}
	if gotName != "report.csv" {
		t.Errorf("got name %q, want %q", gotName, "report.csv")
	}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("got %q, want %q", out.Bytes(), want)
	}
}

func TestReadMemberBadMagic(t *testing.T) {
	var out bytes.Buffer
	_, err := ReadMember(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}), &out)
	var cerr *ContainerError
	if !errors.As(err, &cerr) || cerr.Reason != ReasonBadMagic {
		t.Fatalf("got %v, want ContainerError{%s}", err, ReasonBadMagic)
	}
}

func TestReadMemberUnsupportedFlag(t *testing.T) {
	hdr := []byte{gzipID1, gzipID2, gzipDeflate, flagExtra, 0, 0, 0, 0, 0, 0xff}
	var out bytes.Buffer
	_, err := ReadMember(bytes.NewReader(hdr), &out)
	var cerr *ContainerError
	if !errors.As(err, &cerr) || cerr.Reason != ReasonUnsupportedFlag {
		t.Fatalf("got %v, want ContainerError{%s}", err, ReasonUnsupportedFlag)
	}
}

func TestReadMemberUnsupportedXFL(t *testing.T) {
	hdr := []byte{gzipID1, gzipID2, gzipDeflate, 0, 0, 0, 0, 0, 9, 0xff}
	var out bytes.Buffer
	_, err := ReadMember(bytes.NewReader(hdr), &out)
	var cerr *ContainerError
	if !errors.As(err, &cerr) || cerr.Reason != ReasonUnsupportedXFL {
		t.Fatalf("got %v, want ContainerError{%s}", err, ReasonUnsupportedXFL)
	}
}

func TestReadMemberTrailingGarbage(t *testing.T) {
	var compressed bytes.Buffer
	zw, err := gzip.NewWriterLevel(&compressed, gzip.BestCompression)
	if err != nil {
		t.Fatalf("NewWriterLevel: %v", err)
	}
	if _, err := zw.Write([]byte("payload")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	compressed.WriteByte('X') // trailing garbage after the trailer

	var out bytes.Buffer
	_, err = ReadMember(bytes.NewReader(compressed.Bytes()), &out)
	var cerr *ContainerError
	if !errors.As(err, &cerr) || cerr.Reason != ReasonTrailingGarbage {
		t.Fatalf("got %v, want ContainerError{%s}", err, ReasonTrailingGarbage)
	}
}

package main

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// openOutput returns a sink for generated source. An empty path means
// stdout; a path ending in .gz is gzip-compressed on the way out.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		return &gzipSink{gzip: gzip.NewWriter(file), file: file}, nil
	}
	return file, nil
}

// openInput is the matching source for verification, transparently
// decompressing .gz files.
func openInput(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		return &gzipSource{gzip: gzipReader, file: file}, nil
	}
	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type gzipSink struct {
	gzip *gzip.Writer
	file *os.File
}

func (s *gzipSink) Write(p []byte) (int, error) {
	return s.gzip.Write(p)
}

func (s *gzipSink) Close() error {
	if err := s.gzip.Close(); err != nil {
		return err
	}
	return s.file.Close()
}

type gzipSource struct {
	gzip *gzip.Reader
	file *os.File
}

func (s *gzipSource) Read(p []byte) (int, error) {
	return s.gzip.Read(p)
}

func (s *gzipSource) Close() error {
	if err := s.gzip.Close(); err != nil {
		return err
	}
	return s.file.Close()
}

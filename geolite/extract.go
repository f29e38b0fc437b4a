package geolite

import (
	"archive/tar"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"
)

// Extract pipes an archive stream through gzip and tar, writing every
// *.mmdb member into dir under its base name. File writes run
// concurrently with further demultiplexing; Extract returns only after
// the archive is fully read and every write has finished. Members
// which are not database files are skipped. There is no rollback:
// files written before a failure stay on a disk.
func Extract(ctx context.Context, archive io.Reader, dir string) error {
	ungzipReader, err := gzip.NewReader(archive)
	if err != nil {
		return fmt.Errorf("cannot create a gzip reader: %w", err)
	}

	writers, ctx := errgroup.WithContext(ctx)

	demuxErr := demuxArchive(ctx, tar.NewReader(ungzipReader), dir, writers)
	waitErr := writers.Wait()

	// a failed write cancels the group context and knocks the demux
	// loop out with a cancellation, so the write error is the root
	// cause to report.
	switch {
	case demuxErr != nil && !errors.Is(demuxErr, context.Canceled):
		return demuxErr
	case waitErr != nil:
		return fmt.Errorf("cannot write a database file: %w", waitErr)
	}

	return demuxErr
}

func demuxArchive(ctx context.Context, tarReader *tar.Reader, dir string, writers *errgroup.Group) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		header, err := tarReader.Next()

		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return fmt.Errorf("cannot extract a header: %w", err)
		case header.Typeflag != tar.TypeReg:
			continue
		case strings.ToLower(filepath.Ext(header.Name)) != mmdbExtension:
			continue
		}

		pipeReadEnd, pipeWriteEnd := io.Pipe()
		path := filepath.Join(dir, filepath.Base(header.Name))

		writers.Go(func() error {
			return writeDatabase(path, pipeReadEnd)
		})

		_, err = io.Copy(pipeWriteEnd, tarReader)
		pipeWriteEnd.CloseWithError(err) // nolint: errcheck

		if err != nil {
			return fmt.Errorf("cannot read a member %s: %w", header.Name, err)
		}
	}
}

func writeDatabase(path string, data *io.PipeReader) error {
	fp, err := os.Create(path)
	if err != nil {
		data.CloseWithError(err) // nolint: errcheck

		return fmt.Errorf("cannot create a file %s: %w", path, err)
	}

	if _, err := io.Copy(fp, bufio.NewReader(data)); err != nil {
		fp.Close()               // nolint: errcheck
		data.CloseWithError(err) // nolint: errcheck

		return fmt.Errorf("cannot copy into a file %s: %w", path, err)
	}

	if err := fp.Close(); err != nil {
		return fmt.Errorf("cannot close a file %s: %w", path, err)
	}

	return nil
}

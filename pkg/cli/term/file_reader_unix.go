//go:build unix

package term

import (
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fileReader reads single bytes from a file, optionally bounded by a
// timeout. Timeouts are implemented with select(2) so the file descriptor
// itself can stay blocking.
type fileReader struct {
	file *os.File
}

func (r fileReader) ReadByteWithTimeout(timeout time.Duration) (byte, error) {
	if timeout >= 0 {
		ok, err := waitForRead(int(r.file.Fd()), timeout)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, errTimeout
		}
	}
	var b [1]byte
	nr, err := r.file.Read(b[:])
	if err != nil {
		return 0, err
	}
	if nr != 1 {
		return 0, io.ErrNoProgress
	}
	return b[0], nil
}

// waitForRead blocks until fd is ready for reading or the timeout elapses.
func waitForRead(fd int, timeout time.Duration) (bool, error) {
	var fds unix.FdSet
	for {
		fds.Zero()
		fds.Set(fd)
		tv := unix.NsecToTimeval(int64(timeout))
		n, err := unix.Select(fd+1, &fds, nil, nil, &tv)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}

// Package `ftpx` wraps the subset of `github.com/jlaffaye/ftp` that
// `c14put` uses: a scoped control connection and a binary store of a
// stream.
package ftpx

import (
	"fmt"
	"io"
	"time"

	"github.com/jlaffaye/ftp"
)

const dialTimeout = 20 * time.Second

// `Put()` uploads `r` as the remote file `name`: it opens a control
// connection to `addr`, logs in, stores the stream in binary mode, and
// closes the connection on all exit paths.  Transient transfer errors are
// not retried.
func Put(addr, login, password, name string, r io.Reader) error {
	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(dialTimeout))
	if err != nil {
		return fmt.Errorf("failed to connect to `%s`: %w", addr, err)
	}
	defer conn.Quit()

	if err := conn.Login(login, password); err != nil {
		return fmt.Errorf("failed to log in to `%s`: %w", addr, err)
	}

	if err := conn.Stor(name, r); err != nil {
		return fmt.Errorf(
			"failed to store remote file `%s`: %w", name, err,
		)
	}

	return nil
}

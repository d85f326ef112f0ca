package fetcher

import (
	"io"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// FTPOptions configures feed downloads from upstream FTP drop sites.
type FTPOptions struct {
	User     string
	Password string
	Timeout  time.Duration
}

// FetchFTP downloads a feed file from an FTP URL into destDir and returns
// the local path, ready for ReadTable. Several upstream systems publish
// their nightly extracts on FTP drops rather than shared storage.
func FetchFTP(rawURL, destDir string, opts FTPOptions) (string, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.User == "" {
		opts.User = "anonymous"
		opts.Password = "anonymous"
	}

	host, remotePath, err := parseFTPURL(rawURL)
	if err != nil {
		return "", err
	}

	conn, err := ftp.Dial(host, ftp.DialWithTimeout(opts.Timeout))
	if err != nil {
		return "", eris.Wrapf(ErrSourceUnavailable, "ftp: dial %s: %v", host, err)
	}
	defer conn.Quit()

	if err := conn.Login(opts.User, opts.Password); err != nil {
		return "", eris.Wrapf(err, "ftp: login %s", host)
	}

	resp, err := conn.Retr(remotePath)
	if err != nil {
		return "", eris.Wrapf(ErrSourceUnavailable, "ftp: retrieve %s: %v", remotePath, err)
	}
	defer resp.Close()

	local := filepath.Join(destDir, filepath.Base(remotePath))
	out, err := os.Create(local)
	if err != nil {
		return "", eris.Wrapf(err, "ftp: create %s", local)
	}
	defer out.Close()

	n, err := io.Copy(out, resp)
	if err != nil {
		return "", eris.Wrapf(err, "ftp: download %s", remotePath)
	}

	zap.L().Debug("fetched feed file over ftp",
		zap.String("host", host),
		zap.String("path", remotePath),
		zap.Int64("bytes", n))

	return local, nil
}

// parseFTPURL extracts host (with port) and path from an FTP URL.
func parseFTPURL(rawURL string) (host, path string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", eris.Wrap(err, "ftp: parse url")
	}
	if u.Scheme != "ftp" {
		return "", "", eris.Errorf("ftp: expected ftp scheme, got %q", u.Scheme)
	}

	host = u.Host
	if _, _, splitErr := net.SplitHostPort(host); splitErr != nil {
		host = net.JoinHostPort(host, "21")
	}

	if u.Path == "" {
		return "", "", eris.New("ftp: empty path in url")
	}

	return host, u.Path, nil
}

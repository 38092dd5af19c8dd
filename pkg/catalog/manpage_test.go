package catalog

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapFiles map[string]string

func (m mapFiles) ReadFile(name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

const manPage = `.TH DOGECOIND "1" "June 2021" "dogecoind v1.14.4.0" "User Commands"
.SH OPTIONS
.HP
\-?
.IP
Print this help message and exit
.HP
\fB\-version\fR
.IP
Print version and exit
.HP
\fB\-datadir=\fR<dir>
.IP
Specify data directory
.HP
\fB\-reindex\-chainstate\fR
.IP
Rebuild chain state from the currently indexed blocks
.TP
\fB\-notanoption\fR
.IP
Entry without the .HP marker
.HP
\fB\-help\-debug\fR
.IP
Show all debugging options (usage: \fB\-\-help\fR \fB\-help\-debug\fR)
.HP
\fB\-torcontrol=\fR<ip>:<port>
.IP
Tor control port to use if onion listening enabled
`

func TestParseManPage(t *testing.T) {
	got := ParseManPage(manPage)

	assert.Equal(t, []string{"version", "datadir", "reindex-chainstate", "help-debug", "torcontrol"}, got)
}

func TestParseManPage_CRLF(t *testing.T) {
	got := ParseManPage(".HP\r\n\\fB\\-daemon\\fR\r\n.IP\r\nRun in the background\r\n")

	assert.Equal(t, []string{"daemon"}, got)
}

func TestParseManPage_NoEntries(t *testing.T) {
	assert.Empty(t, ParseManPage(".TH DOGECOIN-TX 1\n.SH NAME\ndogecoin-tx\n"))
}

func TestManPageSource_Path(t *testing.T) {
	assert.Equal(t, "/usr/share/man/man1/dogecoind.1", (&ManPageSource{}).Path("dogecoind"))
	assert.Equal(t, "/opt/man/dogecoin-qt.1", (&ManPageSource{Dir: "/opt/man"}).Path("dogecoin-qt"))
}

func TestManPageSource_Options(t *testing.T) {
	src := &ManPageSource{Dir: "/man", Files: mapFiles{"/man/dogecoind.1": manPage}}

	got, err := src.Options(context.Background(), "dogecoind")

	require.NoError(t, err)
	assert.Equal(t, []string{"version", "datadir", "reindex-chainstate", "help-debug", "torcontrol"}, got)
}

func TestManPageSource_MissingPage(t *testing.T) {
	src := &ManPageSource{Dir: "/man", Files: mapFiles{}}

	_, err := Discover(context.Background(), src, "dogecoin-cli")

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	var discoveryErr *DiscoveryError
	assert.ErrorAs(t, err, &discoveryErr)
}

func TestRealFileReader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dogecoind.1"), []byte(manPage), 0o600))

	src := &ManPageSource{Dir: dir, Files: &RealFileReader{}}
	c, err := Discover(context.Background(), src, "dogecoind")

	require.NoError(t, err)
	assert.Equal(t, []OptionName{"version", "datadir", "reindex-chainstate", "help-debug", "torcontrol"}, c.Names())
}

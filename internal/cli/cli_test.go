package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Flarenzy/inetstore/internal/inet"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := NewRootCmd()
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs(args)
	err := c.ExecuteContext(t.Context())
	return out.String(), err
}

func TestParsePrintsCanonicalForm(t *testing.T) {
	out, err := runCmd(t, "parse", "10.1.1.1/24", "2001:db8:3333:4444:5555:6666:1.2.3.4/96")
	require.NoError(t, err)
	require.Equal(t,
		"10.1.1.1/24\tipv4\t10.1.1.0/24\t10.1.1.0-10.1.1.255\n"+
			"2001:db8:3333:4444:5555:6666:102:304/96\tipv6\t2001:db8:3333:4444:5555:6666::/96\t2001:db8:3333:4444:5555:6666::-2001:db8:3333:4444:5555:6666:ffff:ffff\n",
		out)
}

func TestParseStopsAtFirstInvalidValue(t *testing.T) {
	out, err := runCmd(t, "parse", "10.1.1.1", "10.1.1.1/322", "10.1.1.2")
	require.ErrorIs(t, err, inet.ErrInvalidPrefixLength)
	require.Equal(t, "10.1.1.1/32\tipv4\t10.1.1.1/32\t10.1.1.1-10.1.1.1\n", out)
}

func TestParseRequiresAValue(t *testing.T) {
	_, err := runCmd(t, "parse")
	require.Error(t, err)
}

func TestSaveInput(t *testing.T) {
	input, err := saveInput([]string{"10.1.1.1"}, false)
	require.NoError(t, err)
	require.NotNil(t, input.IPAddress)
	require.Equal(t, "10.1.1.1", *input.IPAddress)

	input, err = saveInput(nil, true)
	require.NoError(t, err)
	require.Nil(t, input.IPAddress)

	_, err = saveInput([]string{"10.1.1.1"}, true)
	require.Error(t, err)

	_, err = saveInput(nil, false)
	require.Error(t, err)
}

func TestDatabaseCommandsNeedDSN(t *testing.T) {
	for _, args := range [][]string{
		{"schema", "create"},
		{"list"},
		{"first"},
		{"save", "--null"},
	} {
		_, err := runCmd(t, append(args, "--dsn", "")...)
		require.ErrorContains(t, err, "no database", "%v", args)
	}
}

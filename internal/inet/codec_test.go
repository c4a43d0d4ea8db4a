package inet

import (
	"database/sql/driver"
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

type row struct {
	IPAddress Inet `json:"ip_address"`
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(row{IPAddress: MustParse("2001:db8:0:0:0:0:0:0/96")})
	require.NoError(t, err)
	require.JSONEq(t, `{"ip_address":"2001:db8::/96"}`, string(data))

	data, err = json.Marshal(row{})
	require.NoError(t, err)
	require.JSONEq(t, `{"ip_address":null}`, string(data))

	var decoded row
	require.NoError(t, json.Unmarshal([]byte(`{"ip_address":"10.1.1.1/32"}`), &decoded))
	require.Equal(t, MustParse("10.1.1.1/32"), decoded.IPAddress)

	require.NoError(t, json.Unmarshal([]byte(`{"ip_address":null}`), &decoded))
	require.False(t, decoded.IPAddress.IsValid())

	err = json.Unmarshal([]byte(`{"ip_address":"10.1.1.1/322"}`), &decoded)
	require.ErrorIs(t, err, ErrInvalidPrefixLength)

	err = json.Unmarshal([]byte(`{"ip_address":42}`), &decoded)
	require.Error(t, err)
}

func TestText(t *testing.T) {
	var v Inet
	require.NoError(t, v.UnmarshalText([]byte("2001:db8:3333:4444:5555:6666:1.2.3.4/96")))
	text, err := v.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "2001:db8:3333:4444:5555:6666:102:304/96", string(text))

	require.NoError(t, v.UnmarshalText(nil))
	require.False(t, v.IsValid())
}

func TestValue(t *testing.T) {
	got, err := MustParse("2001:db8:0:0:0:0:0:1/64").Value()
	require.NoError(t, err)
	require.Equal(t, driver.Value("2001:db8::1/64"), got)

	got, err = Inet{}.Value()
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want Inet
	}{
		{name: "nil", src: nil, want: Inet{}},
		{name: "string", src: "10.1.1.1/32", want: MustParse("10.1.1.1/32")},
		{name: "bytes", src: []byte("2001:db8::/96"), want: MustParse("2001:db8::/96")},
		{name: "prefix", src: netip.MustParsePrefix("10.2.3.4/8"), want: MustParse("10.2.3.4/8")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustParse("192.0.2.1/32")
			require.NoError(t, v.Scan(tt.src))
			require.Equal(t, tt.want, v)
		})
	}

	var v Inet
	require.ErrorIs(t, v.Scan("10.1.1.1/322"), ErrInvalidPrefixLength)
	require.Error(t, v.Scan(42))
}

func TestNetipPrefixCodec(t *testing.T) {
	in := MustParse("10.1.1.1/24")
	p, err := in.NetipPrefixValue()
	require.NoError(t, err)
	require.Equal(t, netip.MustParsePrefix("10.1.1.1/24"), p)

	p, err = Inet{}.NetipPrefixValue()
	require.NoError(t, err)
	require.False(t, p.IsValid())

	var out Inet
	require.NoError(t, out.ScanNetipPrefix(p))
	require.False(t, out.IsValid())

	require.NoError(t, out.ScanNetipPrefix(netip.MustParsePrefix("2001:db8::1/96")))
	require.Equal(t, "2001:db8::1/96", out.String())
}

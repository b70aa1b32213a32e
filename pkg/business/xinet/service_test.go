package xinet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/omeyang/xinet/pkg/observability/xmetrics"
	"github.com/omeyang/xinet/pkg/util/xmac"
	"github.com/omeyang/xinet/pkg/util/xnet"
	"github.com/omeyang/xinet/pkg/util/xoui"
)

func newTestService(tb testing.TB, opts ...Option) *Service {
	tb.Helper()
	tbl, err := xoui.LoadEmbedded()
	require.NoError(tb, err)
	svc, err := New(tbl, opts...)
	require.NoError(tb, err)
	return svc
}

// callCase 描述一次按名称调用的期望：want 或 (wantArg, wantErr)。
type callCase struct {
	name    string
	fn      string
	args    []Value
	want    Value
	wantArg int
	wantErr error
}

func runCalls(t *testing.T, svc *Service, tests []callCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Call(context.Background(), tt.fn, tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var ce *CallError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.fn, ce.Func)
				assert.Equal(t, tt.wantArg, ce.Arg)
				assert.True(t, got.IsNull())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestNew_NilSource(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilSource)
}

func TestService_MacLookups(t *testing.T) {
	svc := newTestService(t)
	runCalls(t, svc, []callCase{
		{name: "manuf", fn: "MAC_MANUF", args: []Value{Text("3c:a6:f6:00:00:01")}, want: Text("Apple")},
		{name: "manuf_long", fn: "MAC_MANUFLONG", args: []Value{Text("3C-A6-F6-00-00-01")}, want: Text("Apple, Inc.")},
		{name: "prefix_24", fn: "MAC_PREFIX", args: []Value{Text("3ca6.f600.0001")}, want: Text("3c:a6:f6")},
		{name: "prefix_28", fn: "MAC_PREFIX", args: []Value{Text("8c:1c:da:8a:bc:de")}, want: Text("8c:1c:da:80:00:00/28")},
		{name: "manuf_28", fn: "MAC_MANUF", args: []Value{Text("8c:1c:da:8a:bc:de")}, want: Text("Atol")},
		{name: "fallback_parent", fn: "MAC_PREFIX", args: []Value{Text("8c:1c:da:f0:00:01")}, want: Text("8c:1c:da")},
		{name: "prefix_36", fn: "MAC_MANUF", args: []Value{Text("8c:1f:64:cb:1f:ff")}, want: Text("Spectrum")},
		{name: "comment", fn: "MAC_COMMENT", args: []Value{Text("08:00:87:12:34:56")}, want: Text("terminal servers")},
		{name: "comment_long", fn: "MAC_MANUFLONG", args: []Value{Text("08:00:87:12:34:56")}, want: Text("Xyplex")},
		{name: "no_comment", fn: "MAC_COMMENT", args: []Value{Text("3c:a6:f6:00:00:01")}, want: Null()},
		{name: "no_long", fn: "MAC_MANUFLONG", args: []Value{Text("00:00:17:00:00:01")}, want: Null()},
		{name: "no_match", fn: "MAC_MANUF", args: []Value{Text("12:34:56:78:9a:bc")}, want: Null()},
		{name: "null", fn: "MAC_MANUF", args: []Value{Null()}, want: Null()},
		{name: "empty", fn: "MAC_PREFIX", args: []Value{Text("")}, want: Null()},
		{name: "bad_char", fn: "MAC_MANUF", args: []Value{Text("zz:zz")}, wantArg: 0, wantErr: xmac.ErrInvalidCharacter},
		{name: "bad_length", fn: "MAC_COMMENT", args: []Value{Text("3c:a6:f6")}, wantArg: 0, wantErr: xmac.ErrInvalidLength},
		{name: "int_arg", fn: "MAC_MANUF", args: []Value{Int(1)}, wantArg: 0, wantErr: ErrArgType},
		{name: "no_args", fn: "MAC_MANUF", args: nil, wantArg: -1, wantErr: ErrArity},
		{name: "extra_args", fn: "MAC_PREFIX", args: []Value{Text("a"), Text("b")}, wantArg: -1, wantErr: ErrArity},
	})
}

func TestService_MacFormat(t *testing.T) {
	svc := newTestService(t)
	const mac = "AA-BB-CC-DD-EE-FF"
	runCalls(t, svc, []callCase{
		{name: "default", fn: "MAC_FORMAT", args: []Value{Text(mac)}, want: Text("aa:bb:cc:dd:ee:ff")},
		{name: "null_spec", fn: "MAC_FORMAT", args: []Value{Text(mac), Null()}, want: Text("aa:bb:cc:dd:ee:ff")},
		{name: "upper", fn: "MAC_FORMAT", args: []Value{Text(mac), Text("HEX")}, want: Text("AA:BB:CC:DD:EE:FF")},
		{name: "dot", fn: "MAC_FORMAT", args: []Value{Text(mac), Text("dot")}, want: Text("aabb.ccdd.eeff")},
		{name: "link_local", fn: "MAC_FORMAT", args: []Value{Text(mac), Text("link-local")}, want: Text("fe80::a8bb:ccff:fedd:eeff")},
		{name: "fallback_upper", fn: "MAC_FORMAT", args: []Value{Text(mac), Text("~de$H")}, want: Text("AA:BB:CC:DD:EE:FF")},
		{name: "null_on_bad", fn: "MAC_FORMAT", args: []Value{Text("bogus"), Text("?dash")}, want: Null()},
		{name: "null_on_empty", fn: "MAC_FORMAT", args: []Value{Text(""), Text("?dash")}, want: Null()},
		{name: "null_mac", fn: "MAC_FORMAT", args: []Value{Null(), Text("dash")}, want: Null()},
		{name: "bad_mac", fn: "MAC_FORMAT", args: []Value{Text("bogus"), Text("dash")}, wantArg: 0, wantErr: xmac.ErrInvalidCharacter},
		{name: "empty_mac", fn: "MAC_FORMAT", args: []Value{Text("")}, wantArg: 0, wantErr: xmac.ErrInvalidLength},
		{name: "mixed_case", fn: "MAC_FORMAT", args: []Value{Text(mac), Text("Dash")}, wantArg: 1, wantErr: xmac.ErrMixedCaseSpec},
		{name: "spec_checked_first", fn: "MAC_FORMAT", args: []Value{Text("bogus"), Text("nope")}, wantArg: 1, wantErr: xmac.ErrUnknownStyle},
		{name: "spec_type", fn: "MAC_FORMAT", args: []Value{Text(mac), Int(1)}, wantArg: 1, wantErr: ErrArgType},
		{name: "mac_type", fn: "MAC_FORMAT", args: []Value{Blob([]byte{1})}, wantArg: 0, wantErr: ErrArgType},
	})
}

func TestService_MacFlags(t *testing.T) {
	svc := newTestService(t)
	runCalls(t, svc, []callCase{
		{name: "unicast", fn: "MAC_ISUNICAST", args: []Value{Text("3c:a6:f6:00:00:01")}, want: Bool(true)},
		{name: "multicast", fn: "MAC_ISMULTICAST", args: []Value{Text("01:00:5e:00:00:01")}, want: Bool(true)},
		{name: "not_unicast", fn: "MAC_ISUNICAST", args: []Value{Text("01:00:5e:00:00:01")}, want: Bool(false)},
		{name: "local", fn: "MAC_ISLOCAL", args: []Value{Text("02:00:00:00:00:01")}, want: Bool(true)},
		{name: "universal", fn: "MAC_ISUNIVERSAL", args: []Value{Text("02:00:00:00:00:01")}, want: Bool(false)},
		{name: "universal_true", fn: "MAC_ISUNIVERSAL", args: []Value{Text("3c:a6:f6:00:00:01")}, want: Bool(true)},
		{name: "null", fn: "MAC_ISLOCAL", args: []Value{Null()}, want: Null()},
		{name: "bad", fn: "MAC_ISMULTICAST", args: []Value{Text("0g:00:00:00:00:00")}, wantArg: 0, wantErr: xmac.ErrInvalidCharacter},
	})
}

func TestService_IPFormat(t *testing.T) {
	svc := newTestService(t)
	runCalls(t, svc, []callCase{
		{name: "address", fn: "IP_FORMAT", args: []Value{Text("10.2.3.1")}, want: Text("10.2.3.1")},
		{name: "v6_canonical", fn: "IP_FORMAT", args: []Value{Text("FE80:0:0:0:2:3:0:AABB")}, want: Text("fe80::2:3:0:aabb")},
		{name: "cidr_kept", fn: "IP_FORMAT", args: []Value{Text("10.2.3.1/24")}, want: Text("10.2.3.1/24")},
		{name: "cidr_truncated", fn: "IP_FORMAT", args: []Value{Text("10.2.3.1/24"), Bool(true)}, want: Text("10.2.3.0/24")},
		{name: "dotted_mask", fn: "IP_FORMAT", args: []Value{Text("192.168.3.2"), Text("255.255.0.0")}, want: Text("192.168.3.2/16")},
		{name: "text_bits", fn: "IP_FORMAT", args: []Value{Text("192.168.3.2"), Text("16")}, want: Text("192.168.3.2/16")},
		{name: "int_bits_truncate", fn: "IP_FORMAT", args: []Value{Text("192.168.3.2"), Int(16), Bool(true)}, want: Text("192.168.0.0/16")},
		{name: "int_truncate_flag", fn: "IP_FORMAT", args: []Value{Text("192.168.3.2"), Int(16), Int(1)}, want: Text("192.168.0.0/16")},
		{name: "cidr_ignores_mask", fn: "IP_FORMAT", args: []Value{Text("10.2.3.1/24"), Text("8")}, want: Text("10.2.3.1/24")},
		{name: "cidr_int_flag", fn: "IP_FORMAT", args: []Value{Text("fe80:0:0:0:2:03:0:aabb/10"), Int(1)}, want: Text("fe80::/10")},
		{name: "cidr_int_flag_false", fn: "IP_FORMAT", args: []Value{Text("fe80::2:3:0:aabb/10"), Int(0)}, want: Text("fe80::2:3:0:aabb/10")},
		{name: "blob_network_int_flag", fn: "IP_FORMAT", args: []Value{Blob([]byte{128, 231, 61, 3, 22}), Int(1)}, want: Text("128.231.60.0/22")},
		{name: "blob_network_with_mask", fn: "IP_FORMAT", args: []Value{Blob([]byte{128, 231, 60, 0, 22}), Text("255.0.0.0"), Bool(false)}, wantArg: 1, wantErr: xnet.ErrAmbiguousMask},
		{name: "blob_network_with_text_bits", fn: "IP_FORMAT", args: []Value{Blob([]byte{128, 231, 60, 0, 22}), Text("8")}, wantArg: 1, wantErr: xnet.ErrAmbiguousMask},
		{name: "v6_truncate", fn: "IP_FORMAT", args: []Value{Text("fe80::2:3:0:aabb"), Int(10), Bool(true)}, want: Text("fe80::/10")},
		{name: "null_mask", fn: "IP_FORMAT", args: []Value{Text("10.2.3.1"), Null(), Bool(true)}, want: Text("10.2.3.1")},
		{name: "blob_network", fn: "IP_FORMAT", args: []Value{Blob([]byte{10, 2, 3, 1, 24})}, want: Text("10.2.3.1/24")},
		{name: "blob_with_mask", fn: "IP_FORMAT", args: []Value{Blob([]byte{10, 2, 3, 1}), Int(24), Bool(true)}, want: Text("10.2.3.0/24")},
		{name: "null", fn: "IP_FORMAT", args: []Value{Null()}, want: Null()},
		{name: "non_contiguous", fn: "IP_FORMAT", args: []Value{Text("192.168.3.2"), Text("255.0.255.0")}, wantArg: 1, wantErr: xnet.ErrNonContiguousMask},
		{name: "bits_range", fn: "IP_FORMAT", args: []Value{Text("192.168.3.2"), Int(33)}, wantArg: 1, wantErr: xnet.ErrInvalidPrefixLen},
		{name: "family_mask", fn: "IP_FORMAT", args: []Value{Text("192.168.3.2"), Text("ffff::")}, wantArg: 1, wantErr: xnet.ErrInvalidMask},
		{name: "leading_zero", fn: "IP_FORMAT", args: []Value{Text("192.168.003.002")}, wantArg: 0, wantErr: xnet.ErrInvalidAddress},
		{name: "bad_with_mask", fn: "IP_FORMAT", args: []Value{Text("bogus"), Text("8")}, wantArg: 0, wantErr: xnet.ErrInvalidAddress},
		{name: "bad_blob", fn: "IP_FORMAT", args: []Value{Blob([]byte{1, 2, 3})}, wantArg: 0, wantErr: xnet.ErrInvalidBinaryLength},
		{name: "addr_type", fn: "IP_FORMAT", args: []Value{Real(1.5)}, wantArg: 0, wantErr: ErrArgType},
		{name: "mask_type", fn: "IP_FORMAT", args: []Value{Text("10.0.0.1"), Real(8)}, wantArg: 1, wantErr: ErrArgType},
		{name: "truncate_type", fn: "IP_FORMAT", args: []Value{Text("10.0.0.1"), Int(8), Text("yes")}, wantArg: 2, wantErr: ErrArgType},
		{name: "arity", fn: "IP_FORMAT", args: []Value{Null(), Null(), Null(), Null()}, wantArg: -1, wantErr: ErrArity},
	})
}

func TestService_IPContains(t *testing.T) {
	svc := newTestService(t)
	runCalls(t, svc, []callCase{
		{name: "inside", fn: "IP_CONTAINS", args: []Value{Text("10.2.3.4"), Text("10.2.3.0/24")}, want: Bool(true)},
		{name: "outside", fn: "IP_CONTAINS", args: []Value{Text("10.2.4.4"), Text("10.2.3.0/24")}, want: Bool(false)},
		{name: "network_untruncated", fn: "IP_CONTAINS", args: []Value{Text("10.2.3.4"), Text("10.2.3.99/24")}, want: Bool(true)},
		{name: "separate_mask", fn: "IP_CONTAINS", args: []Value{Text("10.2.3.4"), Text("10.2.3.99"), Text("255.255.255.0")}, want: Bool(true)},
		{name: "cidr_ignores_mask", fn: "IP_CONTAINS", args: []Value{Text("10.9.3.4"), Text("10.2.3.0/24"), Int(8)}, want: Bool(false)},
		{name: "subnet_inside", fn: "IP_CONTAINS", args: []Value{Text("10.2.3.0/25"), Text("10.2.3.0/24")}, want: Bool(true)},
		{name: "subnet_wider", fn: "IP_CONTAINS", args: []Value{Text("10.2.3.0/23"), Text("10.2.3.0/24")}, want: Bool(false)},
		{name: "family_mismatch", fn: "IP_CONTAINS", args: []Value{Text("::1"), Text("10.0.0.0/8")}, want: Bool(false)},
		{name: "v6", fn: "IP_CONTAINS", args: []Value{Text("fe80::1"), Text("fe80::"), Int(10)}, want: Bool(true)},
		{name: "blob_subject", fn: "IP_CONTAINS", args: []Value{Blob([]byte{10, 0, 0, 1}), Text("10.0.0.0/8")}, want: Bool(true)},
		{name: "blob_network", fn: "IP_CONTAINS", args: []Value{Text("10.0.0.1"), Blob([]byte{10, 0, 0, 0, 8})}, want: Bool(true)},
		{name: "blob_network_mask", fn: "IP_CONTAINS", args: []Value{Text("11.0.0.1"), Blob([]byte{10, 0, 0, 0}), Int(8)}, want: Bool(false)},
		{name: "null_subject", fn: "IP_CONTAINS", args: []Value{Null(), Text("10.0.0.0/8")}, want: Null()},
		{name: "null_network", fn: "IP_CONTAINS", args: []Value{Text("10.0.0.1"), Null()}, want: Null()},
		{name: "missing_mask", fn: "IP_CONTAINS", args: []Value{Text("10.0.0.1"), Text("10.0.0.0")}, wantArg: 1, wantErr: xnet.ErrMissingMask},
		{name: "blob_network_extra_mask", fn: "IP_CONTAINS", args: []Value{Text("128.231.61.3"), Blob([]byte{128, 231, 60, 0, 22}), Int(8)}, wantArg: 2, wantErr: xnet.ErrAmbiguousMask},
		{name: "blob_network_null_mask", fn: "IP_CONTAINS", args: []Value{Text("128.231.61.3"), Blob([]byte{128, 231, 60, 0, 22}), Null()}, want: Bool(true)},
		{name: "blob_missing_mask", fn: "IP_CONTAINS", args: []Value{Text("10.0.0.1"), Blob([]byte{10, 0, 0, 0})}, wantArg: 1, wantErr: xnet.ErrMissingMask},
		{name: "blob_bad_prefix_byte", fn: "IP_CONTAINS", args: []Value{Text("10.0.0.1"), Blob([]byte{10, 0, 0, 0, 40})}, wantArg: 1, wantErr: xnet.ErrInvalidPrefixLen},
		{name: "blob_bad_mask", fn: "IP_CONTAINS", args: []Value{Text("10.0.0.1"), Blob([]byte{10, 0, 0, 0}), Int(40)}, wantArg: 2, wantErr: xnet.ErrInvalidPrefixLen},
		{name: "bad_subject", fn: "IP_CONTAINS", args: []Value{Text("10.0.0"), Text("10.0.0.0/8")}, wantArg: 0, wantErr: xnet.ErrInvalidAddress},
		{name: "bad_mask", fn: "IP_CONTAINS", args: []Value{Text("10.0.0.1"), Text("10.0.0.0"), Text("255.0.0.255")}, wantArg: 2, wantErr: xnet.ErrNonContiguousMask},
		{name: "network_type", fn: "IP_CONTAINS", args: []Value{Text("10.0.0.1"), Int(10)}, wantArg: 1, wantErr: ErrArgType},
	})
}

func TestService_IPBlobify(t *testing.T) {
	svc := newTestService(t)
	v6 := make([]byte, 16)
	v6[15] = 1
	runCalls(t, svc, []callCase{
		{name: "v4", fn: "IP_BLOBIFY", args: []Value{Text("10.2.3.1")}, want: Blob([]byte{10, 2, 3, 1})},
		{name: "v4_network", fn: "IP_BLOBIFY", args: []Value{Text("10.2.3.1/24")}, want: Blob([]byte{10, 2, 3, 1, 24})},
		{name: "v4_mask", fn: "IP_BLOBIFY", args: []Value{Text("10.2.3.1"), Text("255.255.255.0")}, want: Blob([]byte{10, 2, 3, 1, 24})},
		{name: "v6", fn: "IP_BLOBIFY", args: []Value{Text("::1")}, want: Blob(v6)},
		{name: "v6_network", fn: "IP_BLOBIFY", args: []Value{Text("::1"), Int(128)}, want: Blob(append(v6, 128))},
		{name: "blob_roundtrip", fn: "IP_BLOBIFY", args: []Value{Blob([]byte{10, 2, 3, 1, 24})}, want: Blob([]byte{10, 2, 3, 1, 24})},
		{name: "null", fn: "IP_BLOBIFY", args: []Value{Null()}, want: Null()},
		{name: "ambiguous", fn: "IP_BLOBIFY", args: []Value{Text("10.2.3.1/24"), Int(8)}, wantArg: 1, wantErr: xnet.ErrAmbiguousMask},
		{name: "bad", fn: "IP_BLOBIFY", args: []Value{Text("10.2.3")}, wantArg: 0, wantErr: xnet.ErrInvalidAddress},
	})
}

func TestService_InSubnet(t *testing.T) {
	svc := newTestService(t)
	runCalls(t, svc, []callCase{
		{name: "cidr", fn: "INSUBNET", args: []Value{Text("10.2.3.4"), Text("10.2.3.0/24")}, want: Bool(true)},
		{name: "cidr_miss", fn: "INSUBNET", args: []Value{Text("10.2.4.4"), Text("10.2.3.0/24")}, want: Bool(false)},
		{name: "network_mask", fn: "INSUBNET", args: []Value{Text("10.2.3.4"), Text("10.2.0.0"), Text("255.255.0.0")}, want: Bool(true)},
		{name: "network_bits", fn: "INSUBNET", args: []Value{Text("10.3.3.4"), Text("10.2.0.0"), Int(16)}, want: Bool(false)},
		{name: "blob_cidr", fn: "INSUBNET", args: []Value{Text("10.2.3.4"), Blob([]byte{10, 2, 0, 0, 16})}, want: Bool(true)},
		{name: "family_mismatch", fn: "INSUBNET", args: []Value{Text("::ffff:10.2.3.4"), Text("10.2.3.0/24")}, want: Bool(false)},
		{name: "null", fn: "INSUBNET", args: []Value{Null(), Text("10.2.3.0/24")}, want: Null()},
		{name: "null_network", fn: "INSUBNET", args: []Value{Text("10.2.3.4"), Null()}, want: Null()},
		{name: "bare_network", fn: "INSUBNET", args: []Value{Text("10.2.3.4"), Text("10.2.3.0")}, wantArg: 1, wantErr: xnet.ErrMissingMask},
		{name: "null_mask", fn: "INSUBNET", args: []Value{Text("10.2.3.4"), Text("10.2.3.0"), Null()}, wantArg: 1, wantErr: xnet.ErrMissingMask},
		{name: "subject_network", fn: "INSUBNET", args: []Value{Text("10.2.3.0/24"), Text("10.0.0.0/8")}, wantArg: 0, wantErr: xnet.ErrInvalidAddress},
		{name: "ambiguous", fn: "INSUBNET", args: []Value{Text("10.2.3.4"), Text("10.2.3.0/24"), Int(8)}, wantArg: 2, wantErr: xnet.ErrAmbiguousMask},
		{name: "bad_mask", fn: "INSUBNET", args: []Value{Text("10.2.3.4"), Text("10.2.3.0"), Text("x")}, wantArg: 2, wantErr: xnet.ErrInvalidMask},
		{name: "mask_type", fn: "INSUBNET", args: []Value{Text("10.2.3.4"), Text("10.2.3.0"), Bool(true)}, wantArg: 2, wantErr: ErrArgType},
		{name: "arity", fn: "INSUBNET", args: []Value{Text("10.2.3.4")}, wantArg: -1, wantErr: ErrArity},
	})
}

func TestService_MethodsMatchCall(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	mac := Text("8c:1c:da:8a:bc:de")

	methods := map[string]func(context.Context, ...Value) (Value, error){
		"MAC_PREFIX":      svc.MacPrefix,
		"MAC_MANUF":       svc.MacManuf,
		"MAC_MANUFLONG":   svc.MacManufLong,
		"MAC_COMMENT":     svc.MacComment,
		"MAC_FORMAT":      svc.MacFormat,
		"MAC_ISUNICAST":   svc.MacIsUnicast,
		"MAC_ISMULTICAST": svc.MacIsMulticast,
		"MAC_ISUNIVERSAL": svc.MacIsUniversal,
		"MAC_ISLOCAL":     svc.MacIsLocal,
	}
	for name, method := range methods {
		want, wantErr := svc.Call(ctx, name, mac)
		got, err := method(ctx, mac)
		assert.Equal(t, wantErr, err, name)
		assert.Equal(t, want, got, name)
	}

	ip := []Value{Text("10.2.3.4"), Text("10.2.3.0/24")}
	got, err := svc.IPContains(ctx, ip...)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), got)
	got, err = svc.InSubnet(ctx, ip...)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), got)
	got, err = svc.IPFormat(ctx, ip[1], Bool(true))
	require.NoError(t, err)
	assert.Equal(t, Text("10.2.3.0/24"), got)
	got, err = svc.IPBlobify(ctx, ip[0])
	require.NoError(t, err)
	assert.Equal(t, Blob([]byte{10, 2, 3, 4}), got)
}

func TestService_UnknownFunction(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Call(context.Background(), "mac_vendor", Text("3c:a6:f6:00:00:01"))
	require.ErrorIs(t, err, ErrUnknownFunction)
	var ce *CallError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, -1, ce.Arg)
	assert.Equal(t, "mac_vendor: xinet: unknown function", err.Error())
}

func TestService_CallIgnoresCase(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	for _, name := range []string{"ip_format", "Ip_Format", "IP_FORMAT"} {
		got, err := svc.Call(ctx, name, Text("10.2.3.1"))
		require.NoError(t, err, name)
		assert.Equal(t, Text("10.2.3.1"), got, name)
	}

	_, err := svc.Call(ctx, "mac_manuf")
	var ce *CallError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, ErrArity)
	assert.Equal(t, "MAC_MANUF", ce.Func)
}

func TestFunctions(t *testing.T) {
	fns := Functions()
	require.Len(t, fns, len(catalog))
	assert.Equal(t, "INSUBNET", fns[0].Name)
	for i := 1; i < len(fns); i++ {
		assert.Less(t, fns[i-1].Name, fns[i].Name)
	}
	for _, fn := range fns {
		assert.NotEmpty(t, fn.Summary, fn.Name)
		assert.LessOrEqual(t, fn.MinArgs, fn.MaxArgs, fn.Name)
		assert.Contains(t, catalogIndex, fn.Name)
	}
}

func TestService_CachesLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockVendorSource(ctrl)
	addr := xmac.MustParse("3c:a6:f6:00:00:01")
	entry := xoui.Entry{Prefix: xoui.PrefixFrom(addr), Vendor: xoui.Vendor{Short: "Apple"}}
	src.EXPECT().Search(addr).Return(entry, true).Times(1)
	src.EXPECT().Search(xmac.MustParse("12:34:56:00:00:01")).Return(xoui.Entry{}, false).Times(1)

	svc, err := New(src, WithCacheSize(16))
	require.NoError(t, err)
	ctx := context.Background()

	for range 3 {
		v, err := svc.MacManuf(ctx, Text("3c:a6:f6:00:00:01"))
		require.NoError(t, err)
		assert.Equal(t, Text("Apple"), v)
		v, err = svc.MacPrefix(ctx, Text("12:34:56:00:00:01"))
		require.NoError(t, err)
		assert.True(t, v.IsNull())
	}

	stats := svc.CacheStats()
	assert.Equal(t, uint64(4), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
}

func TestService_CacheDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockVendorSource(ctrl)
	src.EXPECT().Search(gomock.Any()).Return(xoui.Entry{}, false).Times(2)

	svc, err := New(src, WithCacheSize(0))
	require.NoError(t, err)
	for range 2 {
		_, err := svc.MacManuf(context.Background(), Text("3c:a6:f6:00:00:01"))
		require.NoError(t, err)
	}
	assert.Zero(t, svc.CacheStats())
}

func TestService_SkipsSourceOnBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockVendorSource(ctrl)
	src.EXPECT().Search(gomock.Any()).Times(0)

	svc, err := New(src)
	require.NoError(t, err)
	_, err = svc.MacManuf(context.Background(), Text("not-a-mac"))
	require.Error(t, err)
	v, err := svc.MacManuf(context.Background(), Null())
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

// recordingObserver 记录每次结束时的操作名与状态。
type recordingObserver struct {
	ops []string
	res []xmetrics.Result
}

type recordingSpan struct {
	obs *recordingObserver
	op  string
}

func (o *recordingObserver) Start(ctx context.Context, opts xmetrics.SpanOptions) (context.Context, xmetrics.Span) {
	return ctx, &recordingSpan{obs: o, op: opts.Component + "/" + opts.Operation}
}

func (s *recordingSpan) End(r xmetrics.Result) {
	s.obs.ops = append(s.obs.ops, s.op)
	s.obs.res = append(s.obs.res, r)
}

func TestService_Observes(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(t, WithObserver(obs))
	ctx := context.Background()

	_, err := svc.MacManuf(ctx, Text("3c:a6:f6:00:00:01"))
	require.NoError(t, err)
	_, err = svc.MacManuf(ctx, Null())
	require.NoError(t, err)
	_, err = svc.IPFormat(ctx, Text("bogus"))
	require.Error(t, err)
	// 参数个数错误不产生观测
	_, err = svc.IPFormat(ctx)
	require.Error(t, err)

	require.Len(t, obs.ops, 3)
	assert.Equal(t, []string{"xinet/mac_manuf", "xinet/mac_manuf", "xinet/ip_format"}, obs.ops)
	assert.Empty(t, obs.res[0].Status)
	assert.Equal(t, xmetrics.StatusNull, obs.res[1].Status)
	assert.True(t, errors.Is(obs.res[2].Err, xnet.ErrInvalidAddress))
}

func TestService_Concurrent(t *testing.T) {
	svc := newTestService(t, WithCacheSize(8))
	macs := []string{"3c:a6:f6:00:00:01", "8c:1c:da:8a:bc:de", "08:00:87:12:34:56", "12:34:56:78:9a:bc"}

	done := make(chan struct{})
	for i := range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := range 200 {
				_, err := svc.MacManuf(context.Background(), Text(macs[(i+j)%len(macs)]))
				assert.NoError(t, err)
			}
		}()
	}
	for range 8 {
		<-done
	}
	stats := svc.CacheStats()
	assert.Equal(t, uint64(8*200), stats.Hits+stats.Misses)
}

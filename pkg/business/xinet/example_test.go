package xinet_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/omeyang/xinet/pkg/business/xinet"
	"github.com/omeyang/xinet/pkg/util/xnet"
)

func Example() {
	ctx := context.Background()
	tbl, err := xinet.LoadVendors(ctx, xinet.VendorConfig{})
	if err != nil {
		panic(err)
	}
	svc, err := xinet.New(tbl)
	if err != nil {
		panic(err)
	}

	v, _ := svc.Call(ctx, "MAC_MANUF", xinet.Text("8c:1c:da:8a:bc:de"))
	fmt.Println(v)
	v, _ = svc.Call(ctx, "MAC_PREFIX", xinet.Text("8c:1c:da:8a:bc:de"))
	fmt.Println(v)
	v, _ = svc.Call(ctx, "MAC_FORMAT", xinet.Text("8c:1c:da:8a:bc:de"), xinet.Text("DOT"))
	fmt.Println(v)
	v, _ = svc.Call(ctx, "MAC_COMMENT", xinet.Text(""))
	fmt.Println(v)
	// Output:
	// Atol
	// 8c:1c:da:80:00:00/28
	// 8C1C.DA8A.BCDE
	// NULL
}

func ExampleService_IPFormat() {
	ctx := context.Background()
	tbl, _ := xinet.LoadVendors(ctx, xinet.VendorConfig{})
	svc, _ := xinet.New(tbl)

	v, _ := svc.IPFormat(ctx, xinet.Text("192.168.3.2"), xinet.Text("255.255.0.0"))
	fmt.Println(v)
	v, _ = svc.IPFormat(ctx, xinet.Text("192.168.3.2"), xinet.Int(16), xinet.Bool(true))
	fmt.Println(v)

	_, err := svc.IPFormat(ctx, xinet.Text("192.168.3.2"), xinet.Text("255.0.255.0"))
	var ce *xinet.CallError
	if errors.As(err, &ce) {
		fmt.Println(ce.Arg, errors.Is(err, xnet.ErrNonContiguousMask))
	}
	// Output:
	// 192.168.3.2/16
	// 192.168.0.0/16
	// 1 true
}

func ExampleService_IPContains() {
	ctx := context.Background()
	tbl, _ := xinet.LoadVendors(ctx, xinet.VendorConfig{})
	svc, _ := xinet.New(tbl)

	v, _ := svc.IPContains(ctx, xinet.Text("10.2.3.4"), xinet.Text("10.2.3.99"), xinet.Int(24))
	fmt.Println(v)
	v, _ = svc.InSubnet(ctx, xinet.Text("10.2.3.4"), xinet.Text("10.2.0.0"), xinet.Text("255.255.0.0"))
	fmt.Println(v)
	v, _ = svc.IPBlobify(ctx, xinet.Text("10.2.3.4/24"))
	fmt.Println(v)
	// Output:
	// true
	// true
	// x'0a02030418'
}

package xmac_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/xinet/pkg/util/xmac"
)

func ExampleParse() {
	for _, s := range []string{
		"aa:bb:cc:dd:ee:ff",
		"AA-BB-CC-DD-EE-FF",
		"aabb.ccdd.eeff",
		"0xAABBCCDDEEFF",
	} {
		addr, err := xmac.Parse(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(addr)
	}

	_, err := xmac.Parse("aa:bb:cc")
	fmt.Println(errors.Is(err, xmac.ErrInvalidLength))

	// Output:
	// aa:bb:cc:dd:ee:ff
	// aa:bb:cc:dd:ee:ff
	// aa:bb:cc:dd:ee:ff
	// aa:bb:cc:dd:ee:ff
	// true
}

func ExampleAddr_Format() {
	addr := xmac.MustParse("aa-bb-cc-dd-ee-ff")
	fmt.Println(addr.Format(xmac.StyleDots, false))
	fmt.Println(addr.Format(xmac.StyleLinkLocal, false))
	fmt.Println(addr.Format(xmac.StyleInterfaceID, true))

	// Output:
	// aabb.ccdd.eeff
	// fe80::a8bb:ccff:fedd:eeff
	// A8BB:CCFF:FEDD:EEFF
}

func ExampleParseFormatSpec() {
	spec, err := xmac.ParseFormatSpec("~DASH")
	if err != nil {
		fmt.Println(err)
		return
	}
	out, _, _ := spec.Apply("aabbccddeeff")
	fmt.Println(out)

	// Output:
	// AA-BB-CC-DD-EE-FF
}

package codec_test

import (
	"fmt"

	"github.com/hasbyte1/go-object-utils/codec"
)

func Example() {
	v, _ := codec.JSON().Unmarshal([]byte(`{"name":"svc","ports":[80,443]}`))

	out, _ := codec.YAML().Marshal(v)
	fmt.Print(string(out))
	// Output:
	// name: svc
	// ports:
	//     - 80
	//     - 443
}

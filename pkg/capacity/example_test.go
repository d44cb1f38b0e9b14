package capacity_test

import (
	"errors"
	"fmt"

	"capacity/pkg/capacity"
)

func ExampleFormat() {
	fmt.Println(capacity.Format(500))
	fmt.Println(capacity.Format(1024))
	fmt.Println(capacity.Format(1536))
	fmt.Println(capacity.Format(3 << 29))
	// Output:
	// 500
	// 1K
	// 1.5K
	// 1.5G
}

func ExampleParse() {
	b, err := capacity.Parse("4K")
	fmt.Println(b.Bytes(), err)

	_, err = capacity.Parse("4Z")
	var pe *capacity.ParseError
	if errors.As(err, &pe) {
		fmt.Println("bad input:", pe.Input)
	}
	// Output:
	// 4096 <nil>
	// bad input: 4Z
}

func ExampleParseLenient() {
	b, _ := capacity.ParseLenient(capacity.Format(1536))
	fmt.Println(int64(b))
	// Output: 1536
}

// Volume gains the whole Capacity behavior by embedding ByteCount.
type Volume struct {
	capacity.ByteCount
	Label string
}

func Example_embedding() {
	var c capacity.Capacity = Volume{ByteCount: capacity.Of(uint32(3)), Label: "scratch"}
	fmt.Println(c.Gigabytes(), capacity.Format(c.Gigabytes()))
	// Output: 3221225472 3.0G
}

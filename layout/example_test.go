package layout_test

import (
	"fmt"

	"github.com/flavioheleno/ssd1306/layout"
)

func ExampleSplit() {
	w := layout.Split("HELLO WORLD FOO BAR BAZ QUX")
	for _, line := range w.Lines {
		fmt.Printf("%q\n", line)
	}
	fmt.Println("dropped:", w.Dropped())
	// Output:
	// "HELLO"
	// "WORLD FOO"
	// "BAR BAZ"
	// dropped: 4
}

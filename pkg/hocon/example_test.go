package hocon_test

import (
	"fmt"

	"github.com/matzehuels/markergen/pkg/hocon"
)

func ExampleEncode() {
	// Strings are quoted and escaped; sequences of primitives render on one line.
	fmt.Println(hocon.Encode(hocon.String(`say "hi"`)))
	fmt.Println(hocon.Encode(hocon.List{hocon.Int(1), hocon.Int(2), hocon.Int(3)}))
	// Output:
	// "say \"hi\""
	// [1, 2, 3]
}

func ExampleMap_Set() {
	// Keys keep their insertion order in the encoded output.
	color := hocon.NewMap().
		Set("r", hocon.Int(30)).
		Set("g", hocon.Int(144)).
		Set("b", hocon.Int(255)).
		Set("a", hocon.Float(1.0))

	fmt.Println(color.Keys())
	// Output: [r g b a]
}

package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/seqkit/dsu"
)

// ExampleComponents counts provinces from direct connections.
func ExampleComponents() {
	groups, err := dsu.Components(
		[]string{"Kyiv", "Lviv", "Odesa", "Dnipro"},
		[][2]string{{"Kyiv", "Dnipro"}, {"Lviv", "Odesa"}},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(groups), groups)
	// Output: 2 [[Kyiv Dnipro] [Lviv Odesa]]
}

package heat_test

import (
	"fmt"
	"strings"

	"github.com/gogpu/heat"
)

func ExampleCalculator_Calculate() {
	calc := heat.NewCalculator()

	values := calc.Calculate([]heat.Point{heat.Pt(0, 0, 1)}, heat.Sz(3, 3), 0.5)

	for r := range 3 {
		row := make([]string, 3)
		for c := range row {
			row[c] = "."
			if values[r*3+c] > 0 {
				row[c] = "#"
			}
		}
		fmt.Println(strings.Join(row, " "))
	}
	// Output:
	// # # .
	// # # .
	// . . .
}

func ExampleCalculator_CalculateGrid() {
	calc := heat.NewCalculator()

	g := calc.CalculateGrid([]heat.Point{heat.Pt(1, 1, 1)}, heat.Sz(3, 3), 0.5)
	fmt.Println(g.Max() == g.At(1, 1))
	// Output: true
}

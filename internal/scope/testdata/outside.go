package demo

import "fmt"

var x int

func main() {
	x = 5

	{
		x := 7
		y := 12
		fmt.Println(x, y)
	}

	fmt.Println(x, y)
}

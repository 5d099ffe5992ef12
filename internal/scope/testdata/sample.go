package sample

import (
	_ "embed"
	"fmt"
	str "strings"
)

type List[T any] struct {
	items []T
	next  *List[T]
}

func (l *List[T]) Push(v T) { l.items = append(l.items, v) }

type Number interface{ ~int | ~float64 }

func Sum[N Number](ns ...N) (total N) {
	for _, n := range ns {
		total += n
	}
	return
}

const (
	A = iota
	B
)

func kinds(v any) string {
	switch t := v.(type) {
	case int:
		return fmt.Sprint(t + A)
	case string:
		return str.ToUpper(t)
	}
	return ""
}

func loops(ch chan int) {
outer:
	for i := 0; i < 3; i++ {
		select {
		case v, ok := <-ch:
			if !ok {
				break outer
			}
			fmt.Println(v, i)
		default:
			continue outer
		}
	}

	m := map[string]int{"a": B}
	type pair struct {
		k string
		v int
	}
	var ps []pair
	for k, v := range m {
		ps = append(ps, pair{k: k, v: v})
	}

	go func(n int) { fmt.Println(n, len(ps)) }(len(ps))
	defer close(ch)

	var l List[int]
	l.Push(Sum(1, 2))
}

package efjson_test

import (
	"fmt"

	"github.com/efjson-go/efjson"
)

func Example() {
	p, _ := efjson.New()

	input := []rune(`{"name":"Ringo"}`)
	input = append(input, 0) // 0x00 is the end-of-input sentinel

	for _, r := range input {
		tok := p.FeedOne(r)
		if code, isErr := tok.Error(); isErr {
			fmt.Println("error:", code)
			return
		}
	}

	fmt.Println(p.Stage())
	// Output: ended
}

func ExampleStreamParser_FeedString() {
	p, _ := efjson.New(efjson.WithJSON5())

	toks, err := p.FeedString("{a: 1,}\x00") // bare key + trailing comma, JSON5 only
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(toks) > 0, p.Stage())
	// Output: true ended
}

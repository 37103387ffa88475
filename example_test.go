package bbow_test

import (
	"fmt"

	"github.com/npillmayer/bbow"
)

func ExampleBag_ExtendFromText() {
	bag := bbow.New().ExtendFromText("Hello world.")
	fmt.Println(bag.Len(), bag.MatchCount("hello"))
	// Output: 2 1
}

func ExampleBag_MatchCount() {
	bag := bbow.New().ExtendFromText("b b b-banana b")
	fmt.Println(bag.MatchCount("b"), bag.MatchCount("banana"), bag.MatchCount("B"))
	// Output: 3 0 0
}

func ExampleBag_Count() {
	bag := bbow.New().ExtendFromText("Can't stop this! Stop!")
	fmt.Println(bag.Count(), bag.Len())
	// Output: 3 2
}

func ExampleBag_All() {
	bag := bbow.New().
		ExtendFromText("It ain't over untïl it ain't, over.").
		ExtendFromText("Super Bowl Sunday")
	for word, count := range bag.All() {
		fmt.Printf("%s %d\n", word, count)
	}
	// Output:
	// bowl 1
	// it 2
	// over 2
	// sunday 1
	// super 1
	// untïl 1
}

package structview_test

import (
	"os"

	"github.com/viant/structview"
)

func ExampleRender() {
	items := []interface{}{
		[]interface{}{2, 4},
		structview.NewDocument().Put("key1", "value1"),
	}
	for _, item := range items {
		_ = structview.Render(os.Stdout, item)
	}
	// Output:
	// Element 1:
	//   Value: 2
	// Element 2:
	//   Value: 4
	// key1:
	//   Value: value1
}

func ExampleRender_label() {
	_ = structview.Render(os.Stdout, []int{6, 7}, structview.WithLabel("Item"))
	// Output:
	// Item 1:
	//   Value: 6
	// Item 2:
	//   Value: 7
}

package fanin_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/matfan/fanin"
)

// ExampleQueue shows global FIFO delivery across producers.
func ExampleQueue() {
	q := fanin.NewQueue[fanin.Msg]()
	_ = q.Push(fanin.NewMsg(1, 7))
	_ = q.Push(fanin.NewMsg(0, 3))
	q.Close()

	for {
		msg, err := q.Pop(context.Background())
		if err != nil {
			break
		}
		fmt.Println("Consumer:", msg)
	}
	// Output:
	// Consumer: Msg { idx: 1, value: 7 }
	// Consumer: Msg { idx: 0, value: 3 }
}

package eventlog_test

import (
	"fmt"
	"os"

	"github.com/Station-Manager/eventlog"
)

func Example() {
	log := eventlog.New(eventlog.Options{
		EchoLevel:   eventlog.LevelWarn,
		InitialData: map[string]any{"step": "compile"},
		Sink: eventlog.SinkFuncs{
			WarnFunc:  func(line string) { fmt.Println("echo:", line) },
			ErrorFunc: func(line string) { fmt.Println("echo:", line) },
		},
	})

	log.Info("started").
		Warn("cache miss").
		Error("compiler exited", eventlog.AddEventOptions{Data: map[string]any{"code": 2}})

	fmt.Println(log.Counts()[eventlog.LevelInfo], log.HighestLevel(), log.OK())
	fmt.Println(log.GetEvents(eventlog.LevelError)[0].Data)
	// Output:
	// echo: Warn: cache miss
	// echo: Error: compiler exited
	// 1 error false
	// map[code:2 step:compile]
}

func ExampleMerge() {
	a := eventlog.New(eventlog.Options{}).Info("a")
	b := eventlog.New(eventlog.Options{}).Warn("b")

	for _, msg := range eventlog.Merge(a, b).AllMessages() {
		fmt.Println(msg)
	}
	// Output:
	// Info: a
	// Warn: b
}

func ExampleEventLog_WriteTo() {
	log := eventlog.New(eventlog.Options{BaseIndentLevel: 1})
	log.Info("fetch", eventlog.AddEventOptions{ID: eventlog.StringID("dep-1"), Data: map[string]any{"bytes": 512}})

	_, _ = log.WriteTo(os.Stdout)
	// Output:
	//   Info: fetch
	//     id: "dep-1"
	//     data:
	//       bytes: 512
}

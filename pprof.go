// +build pprof

package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
)

func init() {
	addr := os.Getenv("SHUNIT_RUNNER_PPROF_ADDR")
	if addr == "" {
		addr = "localhost:6060"
	}
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			fmt.Fprintf(os.Stderr, "shunit-runner: failed to start http server for pprof on %s: %v\n", addr, err)
		}
	}()
}

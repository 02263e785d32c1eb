package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// tests run from the project root so the logs/ directory and any sqlite file
	// end up in one place, import it blank from a _test.go file:
	//
	//   import (
	//     _ "iotdef.xyz/agro-dashboard-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

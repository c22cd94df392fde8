package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

const (
	testAdmin   = "00000000-0000-4000-8000-00000000000a"
	testCaptain = "00000000-0000-4000-8000-00000000000c"
	testMember  = "00000000-0000-4000-8000-00000000000d"
	testJudge   = "00000000-0000-4000-8000-00000000000e"
)

var update = flag.Bool("update", false, "update script files")

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"hack": run,
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:           "./testdata/",
		UpdateScripts: *update,
		Setup: func(e *testscript.Env) error {
			e.Setenv("HACKHUB_DATA_PATH", filepath.Join(e.WorkDir, "data"))
			e.Setenv("HACKHUB_AUTH_JWT_SECRET", "testscript-secret")
			e.Setenv("HACKHUB_INITIAL_ADMINS", testAdmin)
			e.Setenv("HACKHUB_LOG_FORMAT", "text")
			e.Setenv("ADMIN", testAdmin)
			e.Setenv("CAPTAIN", testCaptain)
			e.Setenv("MEMBER", testMember)
			e.Setenv("JUDGE", testJudge)
			return nil
		},
	})
}

package msbuild

import (
	"os"
	osexec "os/exec"
	"reflect"
	"runtime"
	"testing"
)

func TestProcessRegistry_RegisterRemoveActive(t *testing.T) {
	registry := newProcessRegistry()

	self, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}

	registry.register("build_b", self)
	registry.register("build_a", self)

	if got, want := registry.active(), []string{"build_a", "build_b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("active() = %v, want %v", got, want)
	}

	registry.remove("build_a")
	if got, want := registry.active(), []string{"build_b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("active() after remove = %v, want %v", got, want)
	}

	registry.remove("build_b")
	if got := registry.active(); len(got) != 0 {
		t.Errorf("active() after removing all = %v, want empty", got)
	}
}

func TestProcessRegistry_CancelUnknownBuild(t *testing.T) {
	registry := newProcessRegistry()

	if err := registry.cancel("build_missing"); err == nil {
		t.Fatal("expected error for unknown build ID")
	}
}

func TestProcessRegistry_CancelKillsProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses a POSIX sleep")
	}

	cmd := osexec.Command("sleep", "60")
	if err := cmd.Start(); err != nil {
		t.Fatal(err)
	}

	registry := newProcessRegistry()
	registry.register("build_x", cmd.Process)

	if err := registry.cancel("build_x"); err != nil {
		t.Fatalf("cancel() error: %v", err)
	}

	// The killed process must terminate with a non-nil wait error
	if err := cmd.Wait(); err == nil {
		t.Error("expected wait error after kill")
	}
}

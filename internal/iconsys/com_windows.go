//go:build windows

package iconsys

import (
	"fmt"
	"sync"
	"syscall"

	"fileicon/internal/icondispatch"
)

// The shell image factory lives in an apartment-threaded COM session, and
// apartment state is only valid on the thread that initialized it. One
// ref-counted dispatcher owns that thread for the whole process; sessions
// and one-shot calls acquire and release references around their work.

var (
	modOle32           = syscall.NewLazyDLL("ole32.dll")
	procCoInitialize   = modOle32.NewProc("CoInitialize")
	procCoUninitialize = modOle32.NewProc("CoUninitialize")
)

var (
	shellMu   sync.Mutex
	shellRefs int
	shellDisp *icondispatch.Dispatcher
)

func acquireShellThread() (*icondispatch.Dispatcher, error) {
	shellMu.Lock()
	defer shellMu.Unlock()
	if shellRefs == 0 {
		d, err := icondispatch.New(coInitialize, coUninitialize)
		if err != nil {
			return nil, err
		}
		shellDisp = d
	}
	shellRefs++
	return shellDisp, nil
}

func releaseShellThread() {
	shellMu.Lock()
	defer shellMu.Unlock()
	if shellRefs == 0 {
		return
	}
	shellRefs--
	if shellRefs == 0 {
		shellDisp.Close()
		shellDisp = nil
	}
}

func coInitialize() error {
	// S_OK (0) and S_FALSE (1) both leave the apartment usable.
	hr, _, _ := procCoInitialize.Call(0)
	if int32(hr) < 0 {
		return fmt.Errorf("CoInitialize failed: 0x%08x", uint32(hr))
	}
	return nil
}

func coUninitialize() {
	procCoUninitialize.Call()
}

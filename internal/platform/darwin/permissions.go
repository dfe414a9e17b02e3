//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework Foundation
#include <CoreGraphics/CoreGraphics.h>

static int screen_capture_granted() {
    if (@available(macOS 10.15, *)) {
        return CGPreflightScreenCaptureAccess() ? 1 : 0;
    }
    return 1;
}
*/
import "C"

// IsScreenRecordingGranted reports whether the process may read window
// titles owned by other applications.
func IsScreenRecordingGranted() bool {
	return C.screen_capture_granted() != 0
}

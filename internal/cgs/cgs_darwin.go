//go:build darwin && cgo

package cgs

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework Foundation -F/System/Library/PrivateFrameworks -framework SkyLight
#import <Foundation/Foundation.h>
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>
#include <string.h>

int _CGSDefaultConnection(void);
CFArrayRef CGSCopyManagedDisplaySpaces(int conn);
CFStringRef CGSCopyActiveMenuBarDisplayIdentifier(int conn);

// Returns 0 on success, 2 if obj is not representable as JSON.
static int cgs_serialize(id obj, char **out, int *outLen) {
    if (![NSJSONSerialization isValidJSONObject:obj]) {
        return 2;
    }
    NSError *err = nil;
    NSData *data = [NSJSONSerialization dataWithJSONObject:obj options:0 error:&err];
    if (data == nil) {
        return 2;
    }
    int n = (int)[data length];
    char *buf = malloc(n > 0 ? n : 1);
    memcpy(buf, [data bytes], n);
    *out = buf;
    *outLen = n;
    return 0;
}

static int cgs_default_connection(void) {
    return _CGSDefaultConnection();
}

static int cgs_copy_managed_display_spaces(int conn, char **out, int *outLen) {
    @autoreleasepool {
        CFArrayRef displays = CGSCopyManagedDisplaySpaces(conn);
        if (displays == NULL) {
            return 1;
        }
        int rc = cgs_serialize((id)displays, out, outLen);
        CFRelease(displays);
        return rc;
    }
}

static int cgs_copy_active_menu_bar_display_identifier(int conn, char **out) {
    @autoreleasepool {
        CFStringRef ident = CGSCopyActiveMenuBarDisplayIdentifier(conn);
        if (ident == NULL) {
            return 1;
        }
        const char *utf8 = [(NSString *)ident UTF8String];
        *out = strdup(utf8 ? utf8 : "");
        CFRelease(ident);
        return 0;
    }
}

static int cgs_copy_window_list_info(uint32_t option, uint32_t relativeTo, char **out, int *outLen) {
    @autoreleasepool {
        CFArrayRef windows = CGWindowListCopyWindowInfo(option, relativeTo);
        if (windows == NULL) {
            return 1;
        }
        int rc = cgs_serialize((id)windows, out, outLen);
        CFRelease(windows);
        return rc;
    }
}
*/
import "C"
import "unsafe"

// DefaultConnection returns the process's default window-server connection.
func DefaultConnection() ConnectionID {
	return ConnectionID(C.cgs_default_connection())
}

// CopyManagedDisplaySpaces returns the displays and their spaces.
func CopyManagedDisplaySpaces(conn ConnectionID) ([]ManagedDisplay, error) {
	var buf *C.char
	var n C.int
	if err := shimError("CGSCopyManagedDisplaySpaces", int(C.cgs_copy_managed_display_spaces(C.int(conn), &buf, &n))); err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(buf))
	return decodeManagedDisplays(C.GoBytes(unsafe.Pointer(buf), n))
}

// CopyActiveMenuBarDisplayIdentifier returns the identifier of the display
// currently showing the active menu bar.
func CopyActiveMenuBarDisplayIdentifier(conn ConnectionID) (string, error) {
	var buf *C.char
	if err := shimError("CGSCopyActiveMenuBarDisplayIdentifier", int(C.cgs_copy_active_menu_bar_display_identifier(C.int(conn), &buf))); err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(buf))
	return C.GoString(buf), nil
}

// CopyWindowListInfo returns the windows selected by option, relative to the
// given window (NullWindowID for none).
func CopyWindowListInfo(option WindowListOption, relativeTo WindowID) ([]WindowInfo, error) {
	var buf *C.char
	var n C.int
	if err := shimError("CGWindowListCopyWindowInfo", int(C.cgs_copy_window_list_info(C.uint32_t(option), C.uint32_t(relativeTo), &buf, &n))); err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(buf))
	return decodeWindowList(C.GoBytes(unsafe.Pointer(buf), n))
}

//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    char *name;
    char *bundleID;
    char *path;
    int pid;
} RunningApp;

static char *dup_ns(NSString *s) {
    const char *utf8 = s ? [s UTF8String] : NULL;
    return strdup(utf8 ? utf8 : "");
}

static int ns_running_apps(RunningApp **out, int *count) {
    @autoreleasepool {
        NSArray<NSRunningApplication *> *apps = [[NSWorkspace sharedWorkspace] runningApplications];
        NSUInteger total = [apps count];
        RunningApp *buf = calloc(total > 0 ? total : 1, sizeof(RunningApp));
        if (buf == NULL) {
            return 1;
        }
        int n = 0;
        for (NSRunningApplication *app in apps) {
            if (app.activationPolicy != NSApplicationActivationPolicyRegular) continue;
            if (!app.finishedLaunching) continue;
            NSURL *url = app.bundleURL;
            if (url == nil) continue;
            buf[n].name = dup_ns(app.localizedName);
            buf[n].bundleID = dup_ns(app.bundleIdentifier);
            buf[n].path = dup_ns([url path]);
            buf[n].pid = app.processIdentifier;
            n++;
        }
        *out = buf;
        *count = n;
        return 0;
    }
}

static void ns_free_apps(RunningApp *apps, int count) {
    for (int i = 0; i < count; i++) {
        free(apps[i].name);
        free(apps[i].bundleID);
        free(apps[i].path);
    }
    free(apps);
}

static int ns_frontmost_pid(void) {
    @autoreleasepool {
        NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
        return app ? app.processIdentifier : -1;
    }
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/mj1618/spaces-cli/internal/model"
)

// DarwinAppLister implements platform.AppLister using NSWorkspace.
type DarwinAppLister struct{}

// NewAppLister creates a new macOS app lister.
func NewAppLister() *DarwinAppLister {
	return &DarwinAppLister{}
}

func (l *DarwinAppLister) RunningApps() ([]model.App, error) {
	var cApps *C.RunningApp
	var cCount C.int
	if C.ns_running_apps(&cApps, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate running applications")
	}
	defer C.ns_free_apps(cApps, cCount)

	count := int(cCount)
	apps := make([]model.App, 0, count)
	if count == 0 {
		return apps, nil
	}
	for _, ca := range unsafe.Slice(cApps, count) {
		apps = append(apps, model.App{
			Name:     C.GoString(ca.name),
			BundleID: C.GoString(ca.bundleID),
			Path:     C.GoString(ca.path),
			PID:      int(ca.pid),
		})
	}
	return apps, nil
}

func frontmostPID() int {
	return int(C.ns_frontmost_pid())
}

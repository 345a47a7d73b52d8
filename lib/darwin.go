//go:build darwin && cgo

package allspaceslib

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework AppKit -framework Foundation

#include <AppKit/AppKit.h>
#include <stdlib.h>

static int screenCount(void) {
	@autoreleasepool {
		return (int)[[NSScreen screens] count];
	}
}

// Returns NULL on success, otherwise an error description the caller must free().
static char *setDesktopImage(int screen, const char *path, int allowClipping,
		unsigned long scaling, double r, double g, double b) {
	@autoreleasepool {
		NSArray<NSScreen *> *screens = [NSScreen screens];
		if (screen < 0 || (NSUInteger)screen >= [screens count]) {
			return strdup("screen is no longer connected");
		}

		NSURL *url = [NSURL fileURLWithPath:[NSString stringWithUTF8String:path]];
		NSDictionary *options = @{
			NSWorkspaceDesktopImageScalingKey: @(scaling),
			NSWorkspaceDesktopImageAllowClippingKey: @(allowClipping != 0),
			NSWorkspaceDesktopImageFillColorKey:
				[NSColor colorWithSRGBRed:r green:g blue:b alpha:1.0],
		};

		NSError *error = nil;
		BOOL ok = [[NSWorkspace sharedWorkspace] setDesktopImageURL:url
		                                                  forScreen:screens[screen]
		                                                    options:options
		                                                      error:&error];
		if (ok) {
			return NULL;
		}

		const char *msg = error ? [[error localizedDescription] UTF8String] : NULL;
		return strdup(msg ? msg : "unknown error");
	}
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/charmbracelet/log"
)

// AppKit expects to be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

type appKitDesktop struct{}

func NewDesktop(_ *log.Logger) Desktop {
	return appKitDesktop{}
}

func (appKitDesktop) Screens() (int, error) {
	return int(C.screenCount()), nil
}

// StretchAxes needs no separate key, AppKit derives it from ImageScaleAxesIndependently.
func (appKitDesktop) SetDesktopImage(screen int, file string, opts ScreenOptions) error {
	cpath := C.CString(file)
	defer C.free(unsafe.Pointer(cpath))

	clip := C.int(0)
	if opts.AllowClipping {
		clip = 1
	}

	msg := C.setDesktopImage(
		C.int(screen),
		cpath,
		clip,
		C.ulong(opts.ImageScaling),
		C.double(float64(opts.Fill.R)/255.0),
		C.double(float64(opts.Fill.G)/255.0),
		C.double(float64(opts.Fill.B)/255.0))
	if msg == nil {
		return nil
	}
	defer C.free(unsafe.Pointer(msg))

	return fmt.Errorf("setDesktopImageURL: %s", C.GoString(msg))
}

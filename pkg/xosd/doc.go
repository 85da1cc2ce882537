// Package xosd provides typed Go bindings for the XOSD on-screen-display
// library. XOSD renders text, percentage bars, and sliders in an unmanaged,
// shaped X11 window that appears transparent, like the on-screen display of
// a television.
//
// # Basic Usage
//
//	osd, err := xosd.New(1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer osd.Close()
//
//	osd.SetFont("fixed")
//	osd.SetColor("LawnGreen")
//	osd.SetTimeout(3)
//
//	osd.Display(0, xosd.Text("Example XOSD output"))
//	osd.WaitUntilNoDisplay()
//
// Percentage bars and sliders go through validating constructors:
//
//	cmd, err := xosd.Percentage(42)
//	if err != nil {
//		log.Fatal(err)
//	}
//	osd.Display(0, cmd)
//
// # Resource Lifetime
//
// An [Osd] owns exactly one native window. [Osd.Close] destroys it; the
// first call runs teardown exactly once and every operation afterwards
// returns [ErrClosed]. Always pair a successful constructor with Close or
// the native window leaks.
//
// # Errors
//
// Validation failures surface as the package's sentinel errors
// ([ErrInvalidLineCount], [ErrOutOfRangePercentage], [ErrStringConversion],
// [ErrNumericConversion], [ErrNilPointer], [ErrClosed]). Failures reported
// by the native library surface as [*NativeError] carrying the library's
// last-error message. Match with errors.Is and errors.As.
//
// # Concurrency
//
// Calls on one instance are serialized internally, but libxosd's last-error
// channel is process-wide: when several instances fail at the same time,
// an error message can be attributed to the wrong call. Treat the library
// as single-threaded.
//
// # Building
//
// The native backend needs Linux, cgo, and libxosd's headers (xosd.h) at
// build time. Elsewhere constructors fail with a clear error, and
// [NewSimulated] provides an in-memory stand-in for tests and dry runs.
package xosd

// Package testing drives widgets without a window. A Tester mounts a widget,
// synthesizes pointer and keyboard input, records what was drawn, and
// collects the messages the widget published.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    tester := puretest.NewTester[Msg](t)
//	    tester.Mount(view(0))
//
//	    if err := tester.Tap(puretest.ByText("+")); err != nil {
//	        t.Fatal(err)
//	    }
//	    if got := tester.TakeMessages(); len(got) != 1 {
//	        t.Fatalf("messages = %v", got)
//	    }
//	}
//
// # Snapshot Testing
//
//	tester.Snapshot().MatchesFile(t, "testdata/counter.snapshot.yaml")
//
// Update snapshots with:
//
//	PURE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Time
//
// The tester installs a FakeClock as the animation clock. Advance moves it
// and delivers a redraw event at the new time.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import puretest "github.com/go-drift/pure/pkg/testing"
package testing

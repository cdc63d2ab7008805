/*
Package harness tallies pass/fail outcomes of boolean checks, grouped under
descriptive labels. It is the reporting collaborator of the treeset checker:
callers assert conditions, the Context counts them, and an optional observer
decides how closed groups are rendered. The package itself never prints,
exits, or touches the code under test.
*/
package harness

import "fmt"

// Outcome is the tally of one closed check group.
type Outcome struct {
	Desc   string
	Passed int
	Failed int
}

// OK reports whether the group had no failing checks.
func (o Outcome) OK() bool { return o.Failed == 0 }

func (o Outcome) String() string {
	if o.OK() {
		return fmt.Sprintf("%-55s PASS (%d checks)", o.Desc, o.Passed)
	}
	return fmt.Sprintf("%-55s FAIL (%d of %d checks failed)", o.Desc, o.Failed, o.Passed+o.Failed)
}

// Context tallies checks in named groups. A group opens with Desc and
// closes with Result; checks in between are counted into it. Totals
// accumulate across groups for the lifetime of the Context.
type Context struct {
	desc           string
	passed, failed int
	totalPassed    int
	totalFailed    int
	observer       func(Outcome)
}

// New returns an empty Context. If observer is non-nil it is called with
// every Outcome that Result closes.
func New(observer func(Outcome)) *Context {
	return &Context{observer: observer}
}

// Desc opens a new check group with the given label, discarding any group
// still open.
func (c *Context) Desc(format string, args ...interface{}) {
	c.desc = fmt.Sprintf(format, args...)
	c.passed, c.failed = 0, 0
}

// Check tallies cond into the open group and returns it, so it can wrap an
// expression in-line.
func (c *Context) Check(cond bool) bool {
	if cond {
		c.passed++
		c.totalPassed++
	} else {
		c.failed++
		c.totalFailed++
	}
	return cond
}

// Result closes the open group, notifies the observer and returns the
// group's Outcome.
func (c *Context) Result() Outcome {
	out := Outcome{Desc: c.desc, Passed: c.passed, Failed: c.failed}
	if c.observer != nil {
		c.observer(out)
	}
	c.desc, c.passed, c.failed = "", 0, 0
	return out
}

// OK reports whether no check has failed since the Context was created.
func (c *Context) OK() bool { return c.totalFailed == 0 }

// Totals returns the accumulated pass and fail counts over all groups.
func (c *Context) Totals() (passed, failed int) {
	return c.totalPassed, c.totalFailed
}

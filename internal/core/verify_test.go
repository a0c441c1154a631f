package core_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/mockspy/internal/core"
	"github.com/toejough/mockspy/match"
)

func TestVerification_CountModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		verify func(v *core.Verification)
		pass   bool
	}{
		{name: "times matches", verify: func(v *core.Verification) { v.Times(2) }, pass: true},
		{name: "times too few", verify: func(v *core.Verification) { v.Times(3) }, pass: false},
		{name: "times too many", verify: func(v *core.Verification) { v.Times(1) }, pass: false},
		{name: "once", verify: func(v *core.Verification) { v.Once() }, pass: false},
		{name: "never", verify: func(v *core.Verification) { v.Never() }, pass: false},
		{name: "at least 2", verify: func(v *core.Verification) { v.AtLeast(2) }, pass: true},
		{name: "at least 3", verify: func(v *core.Verification) { v.AtLeast(3) }, pass: false},
		{name: "at most 2", verify: func(v *core.Verification) { v.AtMost(2) }, pass: true},
		{name: "at most 1", verify: func(v *core.Verification) { v.AtMost(1) }, pass: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			reporter := &fakeReporter{}
			imp := core.NewImp(reporter, "double")
			add := core.NewMethod(imp, "Add")

			imp.Intercept("Add", "test")
			imp.Intercept("Add", "other")
			imp.Intercept("Add", "test")

			test.verify(add.VerifyCalledWithExactly("test"))

			g.Expect(reporter.Failed()).To(Equal(!test.pass), reporter.Failure())
		})
	}
}

func TestVerification_NeverPassesForUncalledPattern(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reporter := &fakeReporter{}
	imp := core.NewImp(reporter, "double")

	imp.Intercept("Add", "test")

	core.NewMethod(imp, "Add").VerifyCalledWithExactly("missing").Never()
	core.NewMethod(imp, "Clear").VerifyCalled().Never()

	g.Expect(reporter.Failed()).To(BeFalse(), reporter.Failure())
}

func TestVerification_FailureShowsRecordedCalls(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reporter := &fakeReporter{}
	imp := core.NewImp(reporter, "mock list")
	add := core.NewMethod(imp, "Add")

	imp.Intercept("Add", "test 2")
	imp.Intercept("Size")

	add.VerifyCalledWithExactly("test").Times(1)

	g.Expect(reporter.Failed()).To(BeTrue())

	failure := reporter.Failure()
	g.Expect(failure).To(ContainSubstring(`mock list: wanted exactly 1 call(s) of Add("test"), got 0`))
	g.Expect(failure).To(ContainSubstring(`-Add("test")`))
	g.Expect(failure).To(ContainSubstring(`+Add("test 2")`))
	g.Expect(failure).NotTo(ContainSubstring("Size()"))
}

func TestVerification_FailureWithNoCallsOfMethod(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reporter := &fakeReporter{}
	imp := core.NewImp(reporter, "double")

	core.NewMethod(imp, "Clear").VerifyCalled().AtLeast(1)

	g.Expect(reporter.Failure()).To(ContainSubstring("wanted at least 1 call(s) of Clear(..), got 0"))
	g.Expect(reporter.Failure()).To(ContainSubstring("no calls of that method were recorded"))
}

func TestVerification_WithMatches(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reporter := &fakeReporter{}
	imp := core.NewImp(reporter, "double")
	insert := core.NewMethod(imp, "Insert")

	imp.Intercept("Insert", 0, "a")
	imp.Intercept("Insert", 5, "b")
	imp.Intercept("Insert", 1, "c")

	positive := match.Satisfy(func(i int) error {
		if i <= 0 {
			return errNotPositive
		}

		return nil
	})

	insert.VerifyCalledWithMatches(positive, match.BeAny).Times(2)
	insert.VerifyCalledWithMatches(BeNumerically("<", 1), "a").Once()

	g.Expect(reporter.Failed()).To(BeFalse(), reporter.Failure())
}

func TestVerification_NegativeCountPanics(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	imp := core.NewImp(t, "double")
	size := core.NewMethod(imp, "Size")

	g.Expect(func() { size.VerifyCalled().Times(-1) }).To(Panic())
	g.Expect(func() { size.VerifyCalled().AtLeast(-1) }).To(Panic())
	g.Expect(func() { size.VerifyCalled().AtMost(-1) }).To(Panic())
}

// TestVerification_Times_Property proves Times(n) passes exactly when n equals
// the number of matching calls.
func TestVerification_Times_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOf(rapid.SampledFrom([]string{"a", "b", "c"})).Draw(rt, "values")
		guess := rapid.IntRange(0, len(values)+1).Draw(rt, "guess")

		reporter := &fakeReporter{}
		imp := core.NewImp(reporter, "double")

		want := 0

		for _, v := range values {
			imp.Intercept("Add", v)

			if v == "a" {
				want++
			}
		}

		core.NewMethod(imp, "Add").VerifyCalledWithExactly("a").Times(guess)

		if reporter.Failed() != (guess != want) {
			rt.Fatalf("Times(%d) with %d matching calls: failed=%v", guess, want, reporter.Failed())
		}
	})
}

// TestVerification_FailureNamesCallerLine verifies a failed verification is
// attributed to the line in the test that asked for it.
func TestVerification_FailureNamesCallerLine(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reporter := &fakeReporter{}
	imp := core.NewImp(reporter, "mock list")
	add := core.NewMethod(imp, "Add")

	imp.Intercept("Add", "other")

	timesLine := nextLine()
	add.VerifyCalledWithExactly("test").Times(1)

	onceLine := nextLine()
	add.VerifyCalledWithExactly("test").Once()

	atLeastLine := nextLine()
	add.VerifyCalled().AtLeast(2)

	noMoreLine := nextLine()
	imp.VerifyNoMoreInteractions()

	g.Expect(reporter.Frames()).To(Equal([]string{timesLine, onceLine, atLeastLine, noMoreLine}))
}

// TestVerification_MatcherMayCallTheDouble verifies matchers run without the
// double's lock held, so a matcher that calls back into the double completes.
func TestVerification_MatcherMayCallTheDouble(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	reporter := &fakeReporter{}
	imp := core.NewImp(reporter, "spy list")
	get := core.NewMethod(imp, "Get")

	imp.Intercept("Get", 0)

	done := make(chan struct{})

	go func() {
		defer close(done)

		get.VerifyCalledWithMatches(match.Satisfy(func(int) error {
			imp.Intercept("Size")

			return nil
		})).Once()
	}()

	g.Eventually(done).Should(BeClosed())
	g.Expect(reporter.Failed()).To(BeFalse(), reporter.Failure())
	g.Expect(imp.Invocations()).To(HaveLen(2))
}

package parallel

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	P "github.com/ianj-als/pypeline/pair"
	"github.com/ianj-als/pypeline/plog"
)

// syncPool runs every submitted task immediately on the calling goroutine.
// It is sufficient to exercise the executor's wiring without depending on
// a real concurrent pool in these unit tests.
type syncPool struct{}

func (syncPool) Submit(task func() (any, error)) Future[any] {
	v, err := task()
	if err != nil {
		return Failed[any](err)
	}
	return Resolved(v)
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func appendLog(msg string) func([]string) []string {
	return func(s []string) []string {
		return append(append([]string{}, s...), msg)
	}
}

func TestSequentialEquivalenceTextPipeline(t *testing.T) {
	rev1 := ConsFunctionComponent[[]string, string, string, string](
		func(a string, _ []string) string { return reverseString(a) },
		nil, nil,
		appendLog("reverse(1)"),
	)
	rev2 := ConsFunctionComponent[[]string, string, string, string](
		func(a string, _ []string) string { return reverseString(a) },
		nil, nil,
		appendLog("reverse(2)"),
	)
	upper := ConsFunctionComponent[[]string, string, string, string](
		func(a string, _ []string) string {
			out := make([]rune, 0, len(a))
			for _, r := range a {
				if r >= 'a' && r <= 'z' {
					r -= 32
				}
				out = append(out, r)
			}
			return string(out)
		},
		nil, nil,
		appendLog("upper"),
	)

	p := ConsComposedComponent(ConsComposedComponent(rev1, rev2), upper)
	v, s, err := RunPipeline[[]string, string, string](syncPool{}, p, "hello world", []string{})

	assert.NoError(t, err)
	assert.Equal(t, "HELLO WORLD", v)
	assert.Equal(t, []string{"reverse(1)", "reverse(2)", "upper"}, s)
}

func TestFanOutAndUnsplit(t *testing.T) {
	revTop := ConsFunctionComponent[[]string, string, string, string](
		func(a string, _ []string) string { return reverseString(a) },
		nil, nil,
		appendLog("reverse(top)"),
	)
	revBottom := ConsFunctionComponent[[]string, string, string, string](
		func(a string, _ []string) string { return reverseString(a) },
		nil, nil,
		appendLog("reverse(bottom)"),
	)

	split := ConsSplitWire[[]string, string]()
	prod := ConsParallelComponent[[]string, string, string, string, string](revTop, revBottom)
	join := ConsUnsplitWire[[]string, string, string, map[string]string](func(top, bottom string) map[string]string {
		return map[string]string{"top": top, "bottom": bottom}
	})

	pipe := ConsWiredComponents(split, prod, join)
	v, s, err := RunPipeline[[]string, string, map[string]string](syncPool{}, pipe, "hello world", []string{})

	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"top": "dlrow olleh", "bottom": "dlrow olleh"}, v)
	assert.Equal(t, []string{"reverse(top)", "reverse(bottom)"}, s)
}

func TestDictionaryWireMissingKeyPanics(t *testing.T) {
	wire := ConsDictionaryWire[[]string, string, int](map[string]string{"missing": "x"})

	assert.Panics(t, func() {
		EvalPipeline[[]string, map[string]int, map[string]int](syncPool{}, wire, map[string]int{}, nil)
	})
}

func TestIfComponentBranchesOnPredicate(t *testing.T) {
	double := ConsWire[[]string, int, int](func(a int, _ []string) int { return a * 2 })
	negate := ConsWire[[]string, int, int](func(a int, _ []string) int { return -a })

	cond := ConsIfComponent[[]string, int, int](func(a int) bool { return a > 0 }, double, negate)

	v1, err := EvalPipeline[[]string, int, int](syncPool{}, cond, 3, nil)
	assert.NoError(t, err)
	assert.Equal(t, 6, v1)

	v2, err := EvalPipeline[[]string, int, int](syncPool{}, cond, -3, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, v2)
}

func TestUserTaskFailurePropagatesToRunPipeline(t *testing.T) {
	boom := ConsFunctionComponent[[]string, string, string, string](
		func(a string, _ []string) string { panic("kaboom") },
		nil, nil, nil,
	)

	_, _, err := RunPipeline[[]string, string, string](syncPool{}, boom, "x", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestExecPipelineDoesNotForceOutputFuture(t *testing.T) {
	boom := ConsFunctionComponent[[]string, string, string, string](
		func(a string, _ []string) string { panic("never forced") },
		nil, nil,
		appendLog("touched"),
	)

	s := ExecPipeline[[]string, string, string](syncPool{}, boom, "x", []string{})
	assert.Equal(t, []string{"touched"}, s)
}

func TestConsPipelinePrependsAndAppendsWires(t *testing.T) {
	in := ConsWire[[]string, string, P.Pair[string, string]](func(a string, _ []string) P.Pair[string, string] {
		return P.MakePair(a, a)
	})
	core := ConsFunctionComponent[[]string, P.Pair[string, string], string, P.Pair[string, string]](
		func(ab P.Pair[string, string], _ []string) string {
			return P.Head(ab) + P.Tail(ab)
		},
		nil, nil, nil,
	)
	out := ConsWire[[]string, string, int](func(a string, _ []string) int { return len(a) })

	p := ConsPipeline(in, core, out)
	v, err := EvalPipeline[[]string, string, int](syncPool{}, p, "hello", nil)
	assert.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestWithTracerLogsDispatchAndTaskFailure(t *testing.T) {
	var buf bytes.Buffer
	tracer := plog.NewTracer(log.New(&buf, "", 0))

	boom := ConsFunctionComponent[[]string, string, string, string](
		func(a string, _ []string) string { panic("kaboom") },
		nil, nil, nil,
	)

	_, _, err := RunPipeline[[]string, string, string](syncPool{}, boom, "x", nil, WithTracer(tracer))
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "dispatch: pipeline")
	assert.Contains(t, buf.String(), "failure: pipeline")
	assert.Contains(t, buf.String(), "kaboom")
}

func TestWithTracerLogsSynchronousPanicBeforeRepanicking(t *testing.T) {
	var buf bytes.Buffer
	tracer := plog.NewTracer(log.New(&buf, "", 0))

	wire := ConsDictionaryWire[[]string, string, int](map[string]string{"missing": "x"})

	assert.Panics(t, func() {
		EvalPipeline[[]string, map[string]int, map[string]int](syncPool{}, wire, map[string]int{}, nil, WithTracer(tracer))
	})
	assert.Contains(t, buf.String(), "failure: pipeline")
	assert.Contains(t, buf.String(), "missing key")
}

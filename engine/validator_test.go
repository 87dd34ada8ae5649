package engine

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/model"
	"github.com/gofhir/contentvalidator/pkg/logger"
	"github.com/gofhir/contentvalidator/trace"
)

func TestValidator_Compare(t *testing.T) {
	var buf bytes.Buffer
	metrics := cv.NewMetrics(prometheus.NewRegistry())
	v := New(
		cv.WithLogger(logger.New(&buf, logger.LevelDebug)),
		cv.WithMetrics(metrics),
	)

	sub := scenario()
	sub.Problem = model.None[model.Problem]()

	report := v.Compare(context.Background(), toc, scenario(), sub)

	require.NotNil(t, report)
	_, err := uuid.Parse(report.RunID)
	assert.NoError(t, err)
	assert.Equal(t, toc, report.Objective)
	assert.True(t, report.Baseline)
	assert.False(t, report.Passed())
	assert.Equal(t, 1, report.Result.ErrorCount())
	assert.False(t, report.StartedAt.IsZero())

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Runs(true)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Findings(string(model.CategoryProblem), cv.SeverityError)))

	out := buf.String()
	assert.Contains(t, out, report.RunID)
	assert.Contains(t, out, "step problem reported 1 finding(s)")
	assert.Contains(t, out, "comparison failed")
}

func TestValidator_UnknownObjective(t *testing.T) {
	metrics := cv.NewMetrics(nil)
	v := New(cv.WithLogger(logger.Nop()), cv.WithMetrics(metrics))

	report := v.Compare(context.Background(), "UNKNOWN_CODE", scenario(), model.NewDocument())

	assert.False(t, report.Baseline)
	assert.True(t, report.Passed())
	assert.True(t, report.Result.IsEmpty())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Runs(false)))
}

func TestValidator_StrictMode(t *testing.T) {
	ref := scenario()
	sub := scenario()
	p, _ := sub.Patient.Get()
	p.MiddleName = model.Some("Jones")
	sub.Patient = model.Some(p)

	lenient := New(cv.WithLogger(logger.Nop())).Compare(context.Background(), toc, ref, sub)
	require.Equal(t, 1, lenient.Result.WarningCount())
	assert.True(t, lenient.Passed())

	strict := New(cv.WithLogger(logger.Nop()), cv.WithStrictMode(true)).Compare(context.Background(), toc, ref, sub)
	assert.Equal(t, 0, strict.Result.WarningCount())
	assert.Equal(t, 1, strict.Result.ErrorCount())
	assert.False(t, strict.Passed())
}

func TestValidator_TraceHook(t *testing.T) {
	var mu sync.Mutex
	var roles []trace.Role
	hook := trace.HookFunc(func(_ context.Context, role trace.Role, _ *model.Document) {
		mu.Lock()
		defer mu.Unlock()
		roles = append(roles, role)
	})

	v := New(cv.WithLogger(logger.Nop()), cv.WithTraceHook(hook))
	v.Compare(context.Background(), toc, scenario(), scenario())

	assert.Equal(t, []trace.Role{trace.RoleReference, trace.RoleSubmitted}, roles)
}

func TestValidator_TraceHookDoesNotChangeFindings(t *testing.T) {
	sub := scenario()
	sub.Allergy = model.None[model.Allergy]()

	plain := New(cv.WithLogger(logger.Nop())).Compare(context.Background(), toc, scenario(), sub)
	traced := New(
		cv.WithLogger(logger.Nop()),
		cv.WithTraceHook(trace.NewLogHook(logger.New(&bytes.Buffer{}, logger.LevelDebug))),
	).Compare(context.Background(), toc, scenario(), sub)

	assert.Equal(t, plain.Result.Findings, traced.Result.Findings)
}

func TestValidator_CompareBatch(t *testing.T) {
	v := New(cv.WithLogger(logger.Nop()), cv.WithWorkerCount(3))

	missingAllergy := scenario()
	missingAllergy.Allergy = model.None[model.Allergy]()

	subs := []*model.Document{scenario(), missingAllergy, scenario(), missingAllergy, scenario()}

	reports, err := v.CompareBatch(context.Background(), toc, scenario(), subs)
	require.NoError(t, err)
	require.Len(t, reports, len(subs))

	for i, r := range reports {
		require.NotNil(t, r, "report %d", i)
		assert.Equal(t, i%2 == 0, r.Passed(), "report %d", i)
	}

	seen := map[string]bool{}
	for _, r := range reports {
		assert.False(t, seen[r.RunID], "duplicate run id")
		seen[r.RunID] = true
	}
}

func TestValidator_CompareBatchNilSubmission(t *testing.T) {
	v := New(cv.WithLogger(logger.Nop()))

	reports, err := v.CompareBatch(context.Background(), toc, scenario(), []*model.Document{scenario(), nil})

	require.Error(t, err)
	require.Len(t, reports, 2)
	assert.NotNil(t, reports[0])
	assert.Nil(t, reports[1])
}

func TestValidator_CompareBatchCancelled(t *testing.T) {
	v := New(cv.WithLogger(logger.Nop()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := v.CompareBatch(ctx, toc, scenario(), []*model.Document{scenario(), scenario()})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, reports, 2)
}

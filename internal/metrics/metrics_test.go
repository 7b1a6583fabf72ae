package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.ProblemGenerated("addition")
	m.ProblemGenerated("addition")
	m.AnswerGraded("addition", "correct", 12*time.Second)
	m.AnswerGraded("addition", "incorrect", 0)
	m.HintServed("division")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProblemsGenerated.WithLabelValues("addition")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnswersGraded.WithLabelValues("correct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnswersGraded.WithLabelValues("incorrect")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HintsServed.WithLabelValues("division")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AnswerDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ProblemGenerated("mass")
	m.AnswerGraded("mass", "correct", time.Second)
	m.HintServed("mass")
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ProblemGenerated("perimeter")

	path := filepath.Join(t.TempDir(), "p2tutor.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `p2tutor_problems_generated_total{topic="perimeter"} 1`))
}

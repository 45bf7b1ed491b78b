package metrics_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/coef"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/domain"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/metrics"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/recurrence"
)

// TestRecorder_CountsIteration wires a Recorder into a real enumeration.
func TestRecorder_CountsIteration(t *testing.T) {
	rec := metrics.NewRecorder()
	e, err := domain.New(domain.Config{
		Family: recurrence.Zeta3{},
		A:      coef.Ranges{{Min: 1, Max: 1}, {Min: 0, Max: 0}, {Min: 1, Max: 1}, {Min: 0, Max: 0}},
		B:      coef.Ranges{{Min: -2, Max: 2}},
	}, domain.WithObserver(rec))
	require.NoError(t, err)
	rec.SetDomainSize(e.Sizes())

	n, err := e.Count(t.Context(), domain.PrimaryA)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n) // b ∈ {0, 1, 2}

	count, err := testutil.GatherAndCount(rec.Registry())
	require.NoError(t, err)
	assert.Equal(t, 5, count, "examined{a}, accepted{a}, size{a,b,total}")

	body := scrape(t, rec)
	assert.Contains(t, body, `polydomain_candidates_examined_total{primary="a"} 5`)
	assert.Contains(t, body, `polydomain_candidates_accepted_total{primary="a"} 3`)
	assert.Contains(t, body, `polydomain_domain_size{axis="total"} 5`)
}

// TestRecorder_Isolated keeps registries independent.
func TestRecorder_Isolated(t *testing.T) {
	a, b := metrics.NewRecorder(), metrics.NewRecorder()
	a.Observe(domain.PrimaryB, true)
	assert.Contains(t, scrape(t, a), `polydomain_candidates_accepted_total{primary="b"} 1`)
	assert.NotContains(t, scrape(t, b), `primary="b"`)
}

func scrape(t *testing.T, rec *metrics.Recorder) string {
	t.Helper()
	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return buf.String()
}

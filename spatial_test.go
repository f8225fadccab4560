package kdtree_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kdtree"
	"github.com/hupe1980/kdtree/geom"
	"github.com/hupe1980/kdtree/point"
)

func TestNearestNeighbor_EmptyRangeIsAnError(t *testing.T) {
	_, _, err := kdtree.NearestNeighbor[int](nil, point.New(0, 0))
	require.ErrorIs(t, err, kdtree.ErrEmptyRange)
}

func TestNearestNeighbor_MatchesSpecScenario(t *testing.T) {
	pts := []point.Point[int]{
		point.New(0, 0), point.New(10, 10), point.New(5, 1), point.New(1, 5),
	}
	kdtree.Sort[int](pts)

	idx, dist, err := kdtree.NearestNeighbor[int](pts, point.New(2, 2))

	require.NoError(t, err)
	assert.Equal(t, point.New(0, 0), pts[idx])
	assert.InDelta(t, math.Sqrt(8), dist, 1e-9)
}

func TestNearestNeighbors_MatchesSpecScenario(t *testing.T) {
	pts := []point.Point[int]{
		point.New(0, 0), point.New(10, 10), point.New(5, 1), point.New(1, 5),
	}
	kdtree.Sort[int](pts)

	got, err := kdtree.NearestNeighbors[int](pts, point.New(2, 2), 3)

	require.NoError(t, err)
	require.Len(t, got, 3)

	want := map[string]bool{
		fmt.Sprint(point.Point[int]{0, 0}): true,
		fmt.Sprint(point.Point[int]{1, 5}): true,
		fmt.Sprint(point.Point[int]{5, 1}): true,
	}
	seen := map[string]bool{}
	for _, item := range got {
		seen[fmt.Sprint(pts[item.Index])] = true
	}
	assert.Equal(t, want, seen)
}

func TestNearestNeighbors_InvalidK(t *testing.T) {
	pts := []point.Point[int]{point.New(0, 0)}
	kdtree.Sort[int](pts)

	_, err := kdtree.NearestNeighbors[int](pts, point.New(0, 0), -1)
	require.ErrorIs(t, err, kdtree.ErrInvalidK)
}

func TestNearestNeighbors_ZeroKIsEmptyNotNil(t *testing.T) {
	pts := []point.Point[int]{point.New(0, 0), point.New(1, 1)}
	kdtree.Sort[int](pts)

	got, err := kdtree.NearestNeighbors[int](pts, point.New(0, 0), 0)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestNearestNeighbors_DrainOrderIsFarthestFirst(t *testing.T) {
	pts := []point.Point[int]{
		point.New(0, 0), point.New(1, 0), point.New(3, 0), point.New(6, 0),
	}
	kdtree.Sort[int](pts)

	got, err := kdtree.NearestNeighbors[int](pts, point.New(0, 0), 3)

	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Distance, got[i].Distance)
	}
}

func TestRangeQuery_MatchesSpecScenario(t *testing.T) {
	pts := []point.Point[int]{
		point.New(1, 1), point.New(2, 2), point.New(3, 3), point.New(4, 4), point.New(5, 5),
	}
	kdtree.Sort[int](pts)

	got := kdtree.RangeQuerySlice[int](pts, point.New(2, 2), point.New(5, 5))

	gotPts := make([]point.Point[int], len(got))
	for i, idx := range got {
		gotPts[i] = pts[idx]
	}
	sort.Slice(gotPts, func(i, j int) bool { return gotPts[i][0] < gotPts[j][0] })

	want := []point.Point[int]{point.New(2, 2), point.New(3, 3), point.New(4, 4)}
	assert.Equal(t, want, gotPts)
}

func TestRangeQuery_EmptyRangeIsANoop(t *testing.T) {
	var visited []int
	kdtree.RangeQuery[int](nil, point.New(0, 0), point.New(1, 1), func(idx int) {
		visited = append(visited, idx)
	})
	assert.Empty(t, visited)
}

func TestRangeQuery_MatchesLinearScanOnRandomData(t *testing.T) {
	rng := rand.New(rand.NewSource(int64(42)*1000003+int64(99)))

	for trial := 0; trial < 15; trial++ {
		n := rng.Intn(150) + 1
		pts := make([]point.Point[int], n)
		for i := range pts {
			pts[i] = point.New(rng.Intn(30), rng.Intn(30))
		}
		kdtree.Sort[int](pts)

		lo, hi := point.New(rng.Intn(30), rng.Intn(30)), point.New(rng.Intn(30), rng.Intn(30))
		if lo[0] > hi[0] {
			lo[0], hi[0] = hi[0], lo[0]
		}
		if lo[1] > hi[1] {
			lo[1], hi[1] = hi[1], lo[1]
		}

		wantSet := map[int]bool{}
		for i, p := range pts {
			if geom.Within[int](p, lo, hi) {
				wantSet[i] = true
			}
		}

		gotSet := map[int]bool{}
		kdtree.RangeQuery[int](pts, lo, hi, func(idx int) { gotSet[idx] = true })

		assert.Equal(t, wantSet, gotSet, "trial %d", trial)
	}
}

func TestNearestNeighbor_MatchesLinearScanOnRandomData(t *testing.T) {
	rng := rand.New(rand.NewSource(int64(5)*1000003+int64(6)))

	for trial := 0; trial < 15; trial++ {
		n := rng.Intn(200) + 1
		pts := make([]point.Point[float64], n)
		for i := range pts {
			pts[i] = point.New(rng.Float64()*50, rng.Float64()*50, rng.Float64()*50)
		}
		kdtree.Sort[float64](pts)

		v := point.New(rng.Float64()*50, rng.Float64()*50, rng.Float64()*50)

		wantDist := math.Inf(1)
		for _, p := range pts {
			if d := geom.L2Dist[float64](p, v); d < wantDist {
				wantDist = d
			}
		}

		idx, dist, err := kdtree.NearestNeighbor[float64](pts, v)
		require.NoError(t, err)
		assert.InDelta(t, wantDist, dist, 1e-9, "trial %d", trial)
		assert.InDelta(t, wantDist, geom.L2Dist[float64](pts[idx], v), 1e-9, "trial %d", trial)
	}
}

func TestNearestNeighbors_MatchesLinearScanOnRandomData(t *testing.T) {
	rng := rand.New(rand.NewSource(int64(7)*1000003+int64(8)))

	for trial := 0; trial < 15; trial++ {
		n := rng.Intn(100) + 5
		pts := make([]point.Point[float64], n)
		for i := range pts {
			pts[i] = point.New(rng.Float64()*50, rng.Float64()*50)
		}
		kdtree.Sort[float64](pts)

		v := point.New(rng.Float64()*50, rng.Float64()*50)
		k := rng.Intn(5) + 1

		dists := make([]float64, n)
		for i, p := range pts {
			dists[i] = geom.L2Dist[float64](p, v)
		}
		sorted := append([]float64{}, dists...)
		sort.Float64s(sorted)
		wantKth := sorted[k-1]

		got, err := kdtree.NearestNeighbors[float64](pts, v, k)
		require.NoError(t, err)
		require.Len(t, got, k)

		gotWorst := got[0].Distance
		assert.InDelta(t, wantKth, gotWorst, 1e-9, "trial %d", trial)
	}
}

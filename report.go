package scengo

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/stormscape/scengo/cluster"
	"github.com/stormscape/scengo/grid"
	"github.com/stormscape/scengo/scale"
)

// Metrics summarizes run-level clustering quality.
type Metrics struct {
	// Inertia is the sum of squared distances to assigned centroids in
	// normalized space.
	Inertia float64 `json:"inertia"`

	// Silhouette is the mean silhouette score, 0 when disabled or
	// undefined by convention.
	Silhouette float64 `json:"silhouette"`

	// SilhouetteSampled reports whether Silhouette was approximated from
	// a sample rather than computed exactly.
	SilhouetteSampled bool `json:"silhouetteSampled"`

	// Iterations and Converged describe the clustering termination.
	// Converged false means the iteration bound was hit; the results are
	// usable but of unverified quality.
	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
}

// ClusterSummary describes one scenario: a cluster of spatial objects with
// its ensemble provenance and descriptive statistics.
type ClusterSummary struct {
	ID   int `json:"id"`
	Size int `json:"size"`

	// Members are the indices of the cluster's objects in the pooled
	// object slice.
	Members []int `json:"members"`

	// Ensemble is the sorted set of distinct source grid indices whose
	// objects landed in this cluster.
	Ensemble []int `json:"ensemble"`

	// MeanArea and MeanValue aggregate the member objects.
	MeanArea  float64 `json:"meanArea"`
	MeanValue float64 `json:"meanValue"`

	// Centroid is in normalized space; FeatureCentroid is de-normalized
	// back into original feature space.
	Centroid        []float64 `json:"centroid"`
	FeatureCentroid []float64 `json:"featureCentroid"`
}

// Report is the final output of a clustering run.
type Report struct {
	// K is the cluster count of the run. For k-means it equals the
	// requested k; density strategies discover it from the data.
	K int `json:"k"`

	Clusters []ClusterSummary `json:"clusters"`

	// Noise lists pooled object indices excluded by density strategies;
	// always empty for k-means.
	Noise []int `json:"noise,omitempty"`

	Metrics Metrics `json:"metrics"`

	// Model is the fitted normalization model of the run.
	Model *scale.Model `json:"model"`
}

// buildReport assembles cluster summaries from a strategy result. Ensemble
// membership is accumulated per cluster in a roaring bitmap, which both
// deduplicates and yields the indices in sorted order.
func buildReport(objects []grid.Object, res *cluster.Result, model *scale.Model, metrics Metrics) *Report {
	numClusters := len(res.Centroids)

	summaries := make([]ClusterSummary, numClusters)
	membership := make([]*roaring.Bitmap, numClusters)
	for j := range summaries {
		summaries[j].ID = j
		membership[j] = roaring.New()
	}

	for i, c := range res.Assignments {
		if c < 0 {
			continue
		}
		s := &summaries[c]
		s.Size++
		s.Members = append(s.Members, i)
		s.MeanArea += float64(objects[i].Area)
		s.MeanValue += objects[i].AvgValue
		membership[c].Add(uint32(objects[i].SourceIndex))
	}

	for j := range summaries {
		s := &summaries[j]
		if s.Size > 0 {
			s.MeanArea /= float64(s.Size)
			s.MeanValue /= float64(s.Size)
		}

		s.Ensemble = make([]int, 0, int(membership[j].GetCardinality()))
		membership[j].Iterate(func(v uint32) bool {
			s.Ensemble = append(s.Ensemble, int(v))
			return true
		})

		s.Centroid = res.Centroids[j]
		s.FeatureCentroid = model.Invert(res.Centroids[j])
	}

	return &Report{
		K:        numClusters,
		Clusters: summaries,
		Noise:    res.Noise,
		Metrics:  metrics,
		Model:    model,
	}
}

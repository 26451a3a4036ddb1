// Package bvis decodes the visibility lump: per-cluster offsets into a
// run-length compressed bitstream, expanded into visible and audible sets.
package bvis

type (
	Table struct {
		NumClusters int32 `json:"num_clusters"`
		// ByteOffsets holds, per cluster, the PVS and PAS offsets relative to the lump start.
		ByteOffsets [][2]int32 `json:"byte_offsets"`
		PVS         [][]bool   `json:"pvs"`
		PAS         [][]bool   `json:"pas"`
		// Overruns counts literal bytes whose bits ran past the cluster count.
		Overruns int `json:"overruns"`
	}
)

const (
	SetVisible = 0
	SetAudible = 1
)

// Visible reports the clusters visible from cluster.
func (r Table) Visible(cluster int) []int {
	return indices(r.PVS, cluster)
}

// Audible reports the clusters audible from cluster.
func (r Table) Audible(cluster int) []int {
	return indices(r.PAS, cluster)
}

func indices(sets [][]bool, cluster int) []int {
	if cluster < 0 || cluster >= len(sets) {
		return nil
	}
	result := make([]int, 0)
	for i, set := range sets[cluster] {
		if set {
			result = append(result, i)
		}
	}
	return result
}
